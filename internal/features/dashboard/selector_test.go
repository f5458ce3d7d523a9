package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSelectExplicitIDIsAuthoritative(t *testing.T) {
	repo := newFakeLayoutRepo()
	ctx := context.Background()

	explicit := &DashboardLayout{Name: "Shared link"}
	if err := repo.Create(ctx, explicit); err != nil {
		t.Fatal(err)
	}
	// A personal layout exists too; the explicit id must still win.
	userID := primitive.NewObjectID()
	personal := &DashboardLayout{Name: "Mine", UserID: userID}
	if err := repo.Create(ctx, personal); err != nil {
		t.Fatal(err)
	}

	sel := NewSelector(repo)
	got, err := sel.Select(ctx, SelectRequest{
		LayoutID: explicit.ID.Hex(),
		UserID:   userID.Hex(),
		UserRole: RoleCoach,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Shared link" {
		t.Errorf("Select() = %q, want explicit layout", got.Name)
	}
}

func TestSelectExplicitIDMissingIsNotFoundNoFallback(t *testing.T) {
	repo := newFakeLayoutRepo()
	ctx := context.Background()

	// A role default exists, but an explicit id must never fall back to it.
	def := &DashboardLayout{Name: "Coach default", UserRole: RoleCoach, IsDefault: true}
	if err := repo.Create(ctx, def); err != nil {
		t.Fatal(err)
	}

	sel := NewSelector(repo)
	_, err := sel.Select(ctx, SelectRequest{
		LayoutID: primitive.NewObjectID().Hex(),
		UserRole: RoleCoach,
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Select() err = %v, want NotFound", err)
	}
}

func TestSelectPrefersPersonalOverRoleDefault(t *testing.T) {
	repo := newFakeLayoutRepo()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	def := &DashboardLayout{Name: "Coach default", UserRole: RoleCoach, IsDefault: true}
	personal := &DashboardLayout{Name: "My board", UserID: userID}
	for _, l := range []*DashboardLayout{def, personal} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatal(err)
		}
	}

	sel := NewSelector(repo)
	got, err := sel.Select(ctx, SelectRequest{UserID: userID.Hex(), UserRole: RoleCoach})
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "My board" {
		t.Errorf("Select() = %q, want personal layout", got.Name)
	}
}

func TestSelectFallsBackToRoleDefault(t *testing.T) {
	repo := newFakeLayoutRepo()
	ctx := context.Background()

	def := &DashboardLayout{Name: "Coach default", UserRole: RoleCoach, IsDefault: true}
	if err := repo.Create(ctx, def); err != nil {
		t.Fatal(err)
	}

	sel := NewSelector(repo)
	got, err := sel.Select(ctx, SelectRequest{
		UserID:   primitive.NewObjectID().Hex(),
		UserRole: RoleCoach,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Coach default" {
		t.Errorf("Select() = %q, want role default", got.Name)
	}
}

func TestSelectNothingResolvesIsNotFound(t *testing.T) {
	sel := NewSelector(newFakeLayoutRepo())
	_, err := sel.Select(context.Background(), SelectRequest{
		UserID:   primitive.NewObjectID().Hex(),
		UserRole: RoleStudent,
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Select() err = %v, want NotFound", err)
	}
}
