package dashboard

import (
	"context"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"
)

// SelectRequest identifies which layout to resolve for a caller.
type SelectRequest struct {
	LayoutID string
	UserID   string
	UserRole string
}

// Selector resolves the layout a request should render.
type Selector struct {
	repo LayoutRepository
}

func NewSelector(repo LayoutRepository) *Selector {
	return &Selector{repo: repo}
}

// Select implements the tiered resolution: an explicit id is authoritative
// (a deep link gets exactly that layout or a clear error, never a silently
// different one); otherwise personal layout, then role default. Most users
// never customize, so the common path lands on the role default without a
// personal row existing.
func (s *Selector) Select(ctx context.Context, req SelectRequest) (*DashboardLayout, error) {
	if req.LayoutID != "" {
		return s.repo.Get(ctx, req.LayoutID)
	}

	if req.UserID != "" {
		personal, err := s.repo.FindPersonal(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		if personal != nil {
			return personal, nil
		}
	}

	fallback, err := s.repo.GetDefaultByRole(ctx, req.UserRole)
	if err != nil {
		return nil, err
	}
	if fallback != nil {
		return fallback, nil
	}

	return nil, apperr.NotFoundf("no dashboard layout for role %s", req.UserRole)
}
