package dojaang

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/api"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/config"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DojaangApi struct {
	Controller *DojaangController
	Config     *config.Config
}

func NewDojaangApi(controller *DojaangController, cfg *config.Config) api.Route {
	return &DojaangApi{
		Controller: controller,
		Config:     cfg,
	}
}

func (a *DojaangApi) Setup(app *fiber.App) {
	group := app.Group("/api/dojaangs", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Post("/", a.Controller.CreateDojaang)
	group.Get("/", a.Controller.ListDojaangs)
	group.Get("/:id", a.Controller.GetDojaang)
	group.Put("/:id", a.Controller.UpdateDojaang)
	group.Delete("/:id", a.Controller.DeleteDojaang)
}
