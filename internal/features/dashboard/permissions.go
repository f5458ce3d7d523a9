package dashboard

// Permissions is the capability set a role has over dashboards.
type Permissions struct {
	CanView            bool         `json:"can_view"`
	CanEdit            bool         `json:"can_edit"`
	CanCreate          bool         `json:"can_create"`
	CanDelete          bool         `json:"can_delete"`
	CanShare           bool         `json:"can_share"`
	AllowedWidgetTypes []WidgetType `json:"allowed_widget_types"`
}

// The closed role set of the back office.
const (
	RoleAdmin   = "Admin"
	RoleCoach   = "Coach"
	RoleStudent = "Student"
)

var rolePermissions = map[string]Permissions{
	RoleAdmin: {
		CanView:            true,
		CanEdit:            true,
		CanCreate:          true,
		CanDelete:          true,
		CanShare:           true,
		AllowedWidgetTypes: KnownWidgetTypes,
	},
	RoleCoach: {
		CanView:   true,
		CanEdit:   true,
		CanCreate: true,
		CanShare:  true,
		AllowedWidgetTypes: []WidgetType{
			WidgetMetric, WidgetChart, WidgetList,
			WidgetCard, WidgetTable, WidgetCalendar,
		},
	},
	RoleStudent: {
		CanView: true,
		AllowedWidgetTypes: []WidgetType{
			WidgetMetric, WidgetProgress, WidgetCard, WidgetCalendar,
		},
	},
}

// ResolvePermissions maps a role to its capability set. Unknown roles get the
// most restrictive set: view only, no widget types. Fail closed, never open.
func ResolvePermissions(role string) Permissions {
	if perms, ok := rolePermissions[role]; ok {
		return perms
	}
	return Permissions{CanView: true, AllowedWidgetTypes: []WidgetType{}}
}

// Allows reports whether the permission set lets the caller place widgets of
// the given type on a layout.
func (p Permissions) Allows(t WidgetType) bool {
	for _, allowed := range p.AllowedWidgetTypes {
		if t == allowed {
			return true
		}
	}
	return false
}
