package dashboard

import "testing"

func TestResolvePermissions(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		canCreate bool
		canDelete bool
		allowsAny bool
	}{
		{"Admin", RoleAdmin, true, true, true},
		{"Coach", RoleCoach, true, false, true},
		{"Student", RoleStudent, false, false, true},
		{"UnknownFailsClosed", "Janitor", false, false, false},
		{"EmptyRoleFailsClosed", "", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perms := ResolvePermissions(tt.role)
			if !perms.CanView {
				t.Error("CanView should always be true")
			}
			if perms.CanCreate != tt.canCreate {
				t.Errorf("CanCreate = %v, want %v", perms.CanCreate, tt.canCreate)
			}
			if perms.CanDelete != tt.canDelete {
				t.Errorf("CanDelete = %v, want %v", perms.CanDelete, tt.canDelete)
			}
			if got := len(perms.AllowedWidgetTypes) > 0; got != tt.allowsAny {
				t.Errorf("len(AllowedWidgetTypes) > 0 = %v, want %v", got, tt.allowsAny)
			}
		})
	}
}

func TestUnknownRoleAllowsNoWidgetTypes(t *testing.T) {
	perms := ResolvePermissions("no-such-role")
	for _, typ := range KnownWidgetTypes {
		if perms.Allows(typ) {
			t.Errorf("unknown role should not allow widget type %q", typ)
		}
	}
}

func TestAdminAllowsEveryKnownType(t *testing.T) {
	perms := ResolvePermissions(RoleAdmin)
	for _, typ := range KnownWidgetTypes {
		if !perms.Allows(typ) {
			t.Errorf("admin should allow widget type %q", typ)
		}
	}
	if perms.Allows(WidgetType("sparkline")) {
		t.Error("unknown widget type should not be allowed, even for admin")
	}
}
