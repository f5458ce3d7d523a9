package class

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/api"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/config"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ClassApi struct {
	Controller *ClassController
	Config     *config.Config
}

func NewClassApi(controller *ClassController, cfg *config.Config) api.Route {
	return &ClassApi{
		Controller: controller,
		Config:     cfg,
	}
}

func (a *ClassApi) Setup(app *fiber.App) {
	group := app.Group("/api/classes", middleware.AuthMiddleware(a.Config.SkipAuth))

	// "sessions" before ":id" so the literal route wins
	group.Get("/sessions", a.Controller.Sessions)

	group.Post("/", a.Controller.CreateClass)
	group.Get("/", a.Controller.ListClasses)
	group.Get("/:id", a.Controller.GetClass)
	group.Put("/:id", a.Controller.UpdateClass)
	group.Delete("/:id", a.Controller.DeleteClass)

	group.Post("/:id/students/:studentId", a.Controller.AddStudent)
	group.Delete("/:id/students/:studentId", a.Controller.RemoveStudent)
}
