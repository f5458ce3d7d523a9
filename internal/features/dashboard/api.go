package dashboard

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/api"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/config"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardApi struct {
	DashboardController *DashboardController
	Config              *config.Config
}

func NewDashboardApi(dashboardController *DashboardController, cfg *config.Config) api.Route {
	return &DashboardApi{
		DashboardController: dashboardController,
		Config:              cfg,
	}
}

func (a *DashboardApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboards", middleware.AuthMiddleware(a.Config.SkipAuth))

	// Composition
	group.Get("/view", a.DashboardController.GetDashboard)
	group.Get("/defaults/:role", a.DashboardController.GetDefaultLayout)

	// Layout CRUD
	group.Post("/", a.DashboardController.CreateLayout)
	group.Get("/", a.DashboardController.ListLayouts)
	group.Put("/:id", a.DashboardController.UpdateLayout)
	group.Delete("/:id", a.DashboardController.DeleteLayout)
	group.Post("/:id/set-default", a.DashboardController.SetDefaultLayout)

	// Widget CRUD, scoped to a parent layout
	group.Post("/:id/widgets", a.DashboardController.CreateWidget)
	group.Put("/:id/widgets/:widgetId", a.DashboardController.UpdateWidget)
	group.Delete("/:id/widgets/:widgetId", a.DashboardController.DeleteWidget)
}
