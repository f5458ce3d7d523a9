package coach

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/api"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/config"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CoachApi struct {
	Controller *CoachController
	Config     *config.Config
}

func NewCoachApi(controller *CoachController, cfg *config.Config) api.Route {
	return &CoachApi{
		Controller: controller,
		Config:     cfg,
	}
}

func (a *CoachApi) Setup(app *fiber.App) {
	group := app.Group("/api/coaches", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Post("/", a.Controller.CreateCoach)
	group.Get("/", a.Controller.ListCoaches)
	group.Get("/:id", a.Controller.GetCoach)
	group.Put("/:id", a.Controller.UpdateCoach)
	group.Delete("/:id", a.Controller.DeleteCoach)
}
