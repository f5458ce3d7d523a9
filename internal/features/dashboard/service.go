package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, ident Identity, req DashboardRequest) (*DashboardResponse, error)
	GetLayouts(ctx context.Context, ident Identity) ([]DashboardLayout, error)
	GetDefaultLayout(ctx context.Context, role string) (*DashboardLayout, error)
	CreateLayout(ctx context.Context, ident Identity, input LayoutInput) (*DashboardLayout, error)
	UpdateLayout(ctx context.Context, ident Identity, id string, input LayoutInput) (*DashboardLayout, error)
	DeleteLayout(ctx context.Context, ident Identity, id string) error
	SetDefaultLayout(ctx context.Context, ident Identity, id string) error
	CreateWidget(ctx context.Context, ident Identity, layoutID string, input WidgetInput) (*Widget, error)
	UpdateWidget(ctx context.Context, ident Identity, layoutID, widgetID string, input WidgetInput) (*Widget, error)
	DeleteWidget(ctx context.Context, ident Identity, layoutID, widgetID string) error
}

type DashboardServiceImpl struct {
	LayoutRepo LayoutRepository
	Selector   *Selector
	Dispatcher *Dispatcher
	validate   *validator.Validate
}

func NewDashboardService(layoutRepo LayoutRepository, selector *Selector, dispatcher *Dispatcher) DashboardService {
	return &DashboardServiceImpl{
		LayoutRepo: layoutRepo,
		Selector:   selector,
		Dispatcher: dispatcher,
		validate:   validator.New(),
	}
}

// GetDashboard composes the renderable dashboard: resolve the layout, size
// every widget, then refresh widget data concurrently. A partial dashboard
// with widget-level errors is a valid outcome, never a request failure.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, ident Identity, req DashboardRequest) (*DashboardResponse, error) {
	perms := ResolvePermissions(ident.Role)
	if !perms.CanView {
		return nil, fmt.Errorf("view dashboard: %w", apperr.ErrUnauthorized)
	}

	layout, err := s.Selector.Select(ctx, SelectRequest{
		LayoutID: req.LayoutID,
		UserID:   ident.UserID,
		UserRole: ident.Role,
	})
	if err != nil {
		return nil, err
	}

	widgets := make([]Widget, len(layout.Widgets))
	copy(widgets, layout.Widgets)
	for i := range widgets {
		widgets[i].Size = SizeFor(widgets[i].Type, widgets[i].Position.Width)
	}

	refreshed := s.Dispatcher.Refresh(ctx, widgets, FetchRequest{
		Filters:   req.Filters,
		DateRange: req.DateRange,
	})

	failed := 0
	for i := range refreshed {
		if refreshed[i].Error != "" {
			failed++
		}
	}

	return &DashboardResponse{
		Layout: DashboardMeta{
			LayoutID:    layout.ID.Hex(),
			LayoutName:  layout.Name,
			IsDefault:   layout.IsDefault,
			WidgetCount: len(refreshed),
			FailedCount: failed,
			GeneratedAt: time.Now(),
		},
		Widgets: refreshed,
	}, nil
}

func (s *DashboardServiceImpl) GetLayouts(ctx context.Context, ident Identity) ([]DashboardLayout, error) {
	perms := ResolvePermissions(ident.Role)
	if !perms.CanView {
		return nil, fmt.Errorf("list layouts: %w", apperr.ErrUnauthorized)
	}
	return s.LayoutRepo.FindByUser(ctx, ident.UserID)
}

func (s *DashboardServiceImpl) GetDefaultLayout(ctx context.Context, role string) (*DashboardLayout, error) {
	layout, err := s.LayoutRepo.GetDefaultByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	if layout == nil {
		return nil, apperr.NotFoundf("no default layout for role %s", role)
	}
	return layout, nil
}

func (s *DashboardServiceImpl) CreateLayout(ctx context.Context, ident Identity, input LayoutInput) (*DashboardLayout, error) {
	perms := ResolvePermissions(ident.Role)
	if !perms.CanCreate {
		return nil, fmt.Errorf("create layout: %w", apperr.ErrUnauthorized)
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid layout: %v", err)
	}
	widgets, err := s.buildWidgets(input.Widgets, perms)
	if err != nil {
		return nil, err
	}

	layout := &DashboardLayout{
		Name:        input.Name,
		Description: input.Description,
		Widgets:     widgets,
		IsDefault:   input.IsDefault,
		UserRole:    input.UserRole,
	}
	if input.UserRole == "" {
		// Personal layout: owned by the caller, never a role default.
		oid, err := primitive.ObjectIDFromHex(ident.UserID)
		if err != nil {
			return nil, apperr.Validation("invalid owner id %q", ident.UserID)
		}
		layout.UserID = oid
	}

	if err := s.LayoutRepo.Create(ctx, layout); err != nil {
		return nil, err
	}

	if layout.IsDefault && layout.UserRole != "" {
		// Keep at most one default per role.
		if err := s.LayoutRepo.SetDefault(ctx, layout.UserRole, layout.ID.Hex()); err != nil {
			return nil, err
		}
	}

	return layout, nil
}

func (s *DashboardServiceImpl) UpdateLayout(ctx context.Context, ident Identity, id string, input LayoutInput) (*DashboardLayout, error) {
	perms := ResolvePermissions(ident.Role)
	if !perms.CanEdit {
		return nil, fmt.Errorf("update layout: %w", apperr.ErrUnauthorized)
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid layout: %v", err)
	}

	existing, err := s.LayoutRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	widgets, err := s.buildWidgets(input.Widgets, perms)
	if err != nil {
		return nil, err
	}

	// Full replace, last write wins.
	existing.Name = input.Name
	existing.Description = input.Description
	existing.IsDefault = input.IsDefault
	existing.UserRole = input.UserRole
	existing.Widgets = widgets

	if err := s.LayoutRepo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *DashboardServiceImpl) DeleteLayout(ctx context.Context, ident Identity, id string) error {
	perms := ResolvePermissions(ident.Role)
	if !perms.CanDelete {
		return fmt.Errorf("delete layout: %w", apperr.ErrUnauthorized)
	}
	// Widgets are embedded in the layout document; the delete cascades.
	return s.LayoutRepo.Delete(ctx, id)
}

func (s *DashboardServiceImpl) SetDefaultLayout(ctx context.Context, ident Identity, id string) error {
	perms := ResolvePermissions(ident.Role)
	if !perms.CanShare {
		return fmt.Errorf("set default layout: %w", apperr.ErrUnauthorized)
	}

	layout, err := s.LayoutRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	role := layout.UserRole
	if role == "" {
		role = ident.Role
	}
	return s.LayoutRepo.SetDefault(ctx, role, id)
}

func (s *DashboardServiceImpl) CreateWidget(ctx context.Context, ident Identity, layoutID string, input WidgetInput) (*Widget, error) {
	perms := ResolvePermissions(ident.Role)
	if !perms.CanEdit {
		return nil, fmt.Errorf("create widget: %w", apperr.ErrUnauthorized)
	}
	widget, err := s.buildWidget(input, perms)
	if err != nil {
		return nil, err
	}

	layout, err := s.LayoutRepo.Get(ctx, layoutID)
	if err != nil {
		return nil, err
	}

	layout.Widgets = append(layout.Widgets, *widget)
	if err := s.LayoutRepo.Update(ctx, layoutID, layout); err != nil {
		return nil, err
	}
	return widget, nil
}

func (s *DashboardServiceImpl) UpdateWidget(ctx context.Context, ident Identity, layoutID, widgetID string, input WidgetInput) (*Widget, error) {
	perms := ResolvePermissions(ident.Role)
	if !perms.CanEdit {
		return nil, fmt.Errorf("update widget: %w", apperr.ErrUnauthorized)
	}
	replacement, err := s.buildWidget(input, perms)
	if err != nil {
		return nil, err
	}

	layout, err := s.LayoutRepo.Get(ctx, layoutID)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range layout.Widgets {
		if layout.Widgets[i].ID == widgetID {
			replacement.ID = widgetID
			layout.Widgets[i] = *replacement
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, apperr.NotFoundf("widget %s in layout %s", widgetID, layoutID)
	}

	if err := s.LayoutRepo.Update(ctx, layoutID, layout); err != nil {
		return nil, err
	}
	return replacement, nil
}

func (s *DashboardServiceImpl) DeleteWidget(ctx context.Context, ident Identity, layoutID, widgetID string) error {
	perms := ResolvePermissions(ident.Role)
	if !perms.CanDelete {
		return fmt.Errorf("delete widget: %w", apperr.ErrUnauthorized)
	}

	layout, err := s.LayoutRepo.Get(ctx, layoutID)
	if err != nil {
		return err
	}

	kept := layout.Widgets[:0]
	found := false
	for _, w := range layout.Widgets {
		if w.ID == widgetID {
			found = true
			continue
		}
		kept = append(kept, w)
	}
	if !found {
		return apperr.NotFoundf("widget %s in layout %s", widgetID, layoutID)
	}

	layout.Widgets = kept
	return s.LayoutRepo.Update(ctx, layoutID, layout)
}

func (s *DashboardServiceImpl) buildWidgets(inputs []WidgetInput, perms Permissions) ([]Widget, error) {
	widgets := make([]Widget, 0, len(inputs))
	for _, in := range inputs {
		w, err := s.buildWidget(in, perms)
		if err != nil {
			return nil, err
		}
		widgets = append(widgets, *w)
	}
	return widgets, nil
}

func (s *DashboardServiceImpl) buildWidget(input WidgetInput, perms Permissions) (*Widget, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid widget: %v", err)
	}

	t := WidgetType(input.Type)
	if !t.Known() {
		return nil, apperr.Validation("unknown widget type %q", input.Type)
	}
	if !perms.Allows(t) {
		return nil, fmt.Errorf("widget type %q not allowed for role: %w", input.Type, apperr.ErrUnauthorized)
	}

	return &Widget{
		ID:          uuid.NewString(),
		Type:        t,
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
		Config:      input.Config,
	}, nil
}
