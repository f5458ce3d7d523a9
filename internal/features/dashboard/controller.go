package dashboard

import (
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	DashboardService DashboardService
}

func NewDashboardController(dashboardService DashboardService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
	}
}

func identity(c *fiber.Ctx) (Identity, error) {
	claims := middleware.Claims(c)
	if claims == nil {
		return Identity{}, apperr.ErrUnauthenticated
	}
	return Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

// GetDashboard composes and returns the dashboard for the caller.
// @Summary Get composed dashboard
// @Description Resolve a layout (explicit id, personal, or role default), size its widgets and fetch their data
// @Tags dashboards
// @Produce json
// @Param layout_id query string false "Explicit layout ID"
// @Success 200 {object} DashboardResponse
// @Router /api/dashboards/view [get]
func (ctrl *DashboardController) GetDashboard(c *fiber.Ctx) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}

	req := DashboardRequest{
		LayoutID: c.Query("layout_id"),
		Filters:  map[string]interface{}{},
	}
	if dojaang := c.Query("dojaang_id"); dojaang != "" {
		req.Filters["dojaang_id"] = dojaang
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			req.DateRange.Start = t
		} else {
			return apperr.Validation("invalid from date %q", from)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			req.DateRange.End = t
		} else {
			return apperr.Validation("invalid to date %q", to)
		}
	}

	resp, err := ctrl.DashboardService.GetDashboard(c.Context(), ident, req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListLayouts lists the caller's layouts.
// @Summary List layouts
// @Tags dashboards
// @Produce json
// @Success 200 {array} DashboardLayout
// @Router /api/dashboards [get]
func (ctrl *DashboardController) ListLayouts(c *fiber.Ctx) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}

	layouts, err := ctrl.DashboardService.GetLayouts(c.Context(), ident)
	if err != nil {
		return err
	}
	return c.JSON(layouts)
}

// GetDefaultLayout returns the role-level default layout.
// @Summary Get role default layout
// @Tags dashboards
// @Produce json
// @Param role path string true "Role name"
// @Success 200 {object} DashboardLayout
// @Router /api/dashboards/defaults/{role} [get]
func (ctrl *DashboardController) GetDefaultLayout(c *fiber.Ctx) error {
	layout, err := ctrl.DashboardService.GetDefaultLayout(c.Context(), c.Params("role"))
	if err != nil {
		return err
	}
	return c.JSON(layout)
}

// CreateLayout creates a layout.
// @Summary Create layout
// @Tags dashboards
// @Accept json
// @Produce json
// @Param layout body LayoutInput true "Layout"
// @Success 201 {object} DashboardLayout
// @Router /api/dashboards [post]
func (ctrl *DashboardController) CreateLayout(c *fiber.Ctx) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}

	var input LayoutInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	layout, err := ctrl.DashboardService.CreateLayout(c.Context(), ident, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(layout)
}

// UpdateLayout replaces a layout.
// @Summary Update layout
// @Tags dashboards
// @Accept json
// @Produce json
// @Param id path string true "Layout ID"
// @Param layout body LayoutInput true "Layout"
// @Success 200 {object} DashboardLayout
// @Router /api/dashboards/{id} [put]
func (ctrl *DashboardController) UpdateLayout(c *fiber.Ctx) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}

	var input LayoutInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	layout, err := ctrl.DashboardService.UpdateLayout(c.Context(), ident, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(layout)
}

// DeleteLayout deletes a layout and its widgets.
// @Summary Delete layout
// @Tags dashboards
// @Param id path string true "Layout ID"
// @Success 204
// @Router /api/dashboards/{id} [delete]
func (ctrl *DashboardController) DeleteLayout(c *fiber.Ctx) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}

	if err := ctrl.DashboardService.DeleteLayout(c.Context(), ident, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetDefaultLayout publishes a layout as the role default.
// @Summary Set default layout
// @Tags dashboards
// @Param id path string true "Layout ID"
// @Success 200
// @Router /api/dashboards/{id}/set-default [post]
func (ctrl *DashboardController) SetDefaultLayout(c *fiber.Ctx) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}

	if err := ctrl.DashboardService.SetDefaultLayout(c.Context(), ident, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Default layout set successfully"})
}

// CreateWidget appends a widget to a layout.
// @Summary Create widget
// @Tags dashboards
// @Accept json
// @Produce json
// @Param id path string true "Layout ID"
// @Param widget body WidgetInput true "Widget"
// @Success 201 {object} Widget
// @Router /api/dashboards/{id}/widgets [post]
func (ctrl *DashboardController) CreateWidget(c *fiber.Ctx) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}

	var input WidgetInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	widget, err := ctrl.DashboardService.CreateWidget(c.Context(), ident, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(widget)
}

// UpdateWidget replaces a widget in a layout.
// @Summary Update widget
// @Tags dashboards
// @Accept json
// @Produce json
// @Param id path string true "Layout ID"
// @Param widgetId path string true "Widget ID"
// @Param widget body WidgetInput true "Widget"
// @Success 200 {object} Widget
// @Router /api/dashboards/{id}/widgets/{widgetId} [put]
func (ctrl *DashboardController) UpdateWidget(c *fiber.Ctx) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}

	var input WidgetInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	widget, err := ctrl.DashboardService.UpdateWidget(c.Context(), ident, c.Params("id"), c.Params("widgetId"), input)
	if err != nil {
		return err
	}
	return c.JSON(widget)
}

// DeleteWidget removes a widget from a layout.
// @Summary Delete widget
// @Tags dashboards
// @Param id path string true "Layout ID"
// @Param widgetId path string true "Widget ID"
// @Success 204
// @Router /api/dashboards/{id}/widgets/{widgetId} [delete]
func (ctrl *DashboardController) DeleteWidget(c *fiber.Ctx) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}

	if err := ctrl.DashboardService.DeleteWidget(c.Context(), ident, c.Params("id"), c.Params("widgetId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
