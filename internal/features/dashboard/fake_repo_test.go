package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeLayoutRepo is an in-memory LayoutRepository for service and selector
// tests. Mirrors the mongo impl's contract: nil results for missing personal
// and role-default lookups, NotFound for missing ids.
type fakeLayoutRepo struct {
	mu      sync.Mutex
	layouts map[string]*DashboardLayout
}

func newFakeLayoutRepo() *fakeLayoutRepo {
	return &fakeLayoutRepo{layouts: make(map[string]*DashboardLayout)}
}

func (r *fakeLayoutRepo) clone(l *DashboardLayout) *DashboardLayout {
	cp := *l
	cp.Widgets = append([]Widget(nil), l.Widgets...)
	return &cp
}

func (r *fakeLayoutRepo) Create(_ context.Context, layout *DashboardLayout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if layout.ID.IsZero() {
		layout.ID = primitive.NewObjectID()
	}
	layout.CreatedAt = time.Now()
	layout.UpdatedAt = time.Now()
	r.layouts[layout.ID.Hex()] = r.clone(layout)
	return nil
}

func (r *fakeLayoutRepo) Get(_ context.Context, id string) (*DashboardLayout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	layout, ok := r.layouts[id]
	if !ok {
		return nil, apperr.NotFoundf("layout %s", id)
	}
	return r.clone(layout), nil
}

func (r *fakeLayoutRepo) FindByUser(_ context.Context, userID string) ([]DashboardLayout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []DashboardLayout
	for _, l := range r.layouts {
		if l.UserID.Hex() == userID {
			out = append(out, *r.clone(l))
		}
	}
	return out, nil
}

func (r *fakeLayoutRepo) FindPersonal(_ context.Context, userID string) (*DashboardLayout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var best *DashboardLayout
	for _, l := range r.layouts {
		if l.UserRole != "" || l.UserID.Hex() != userID {
			continue
		}
		if best == nil || (l.IsDefault && !best.IsDefault) || l.UpdatedAt.After(best.UpdatedAt) {
			best = l
		}
	}
	if best == nil {
		return nil, nil
	}
	return r.clone(best), nil
}

func (r *fakeLayoutRepo) GetDefaultByRole(_ context.Context, role string) (*DashboardLayout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.layouts {
		if l.UserRole == role && l.IsDefault {
			return r.clone(l), nil
		}
	}
	return nil, nil
}

func (r *fakeLayoutRepo) Update(_ context.Context, id string, layout *DashboardLayout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.layouts[id]; !ok {
		return apperr.NotFoundf("layout %s", id)
	}
	layout.UpdatedAt = time.Now()
	r.layouts[id] = r.clone(layout)
	return nil
}

func (r *fakeLayoutRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.layouts[id]; !ok {
		return apperr.NotFoundf("layout %s", id)
	}
	delete(r.layouts, id)
	return nil
}

func (r *fakeLayoutRepo) SetDefault(_ context.Context, role string, layoutID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	target, ok := r.layouts[layoutID]
	if !ok {
		return apperr.NotFoundf("layout %s", layoutID)
	}
	for _, l := range r.layouts {
		if l.UserRole == role {
			l.IsDefault = false
		}
	}
	target.IsDefault = true
	target.UserRole = role
	return nil
}

func (r *fakeLayoutRepo) EnsureIndexes(context.Context) error { return nil }
