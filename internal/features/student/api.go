package student

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/api"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/config"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type StudentApi struct {
	Controller *StudentController
	Config     *config.Config
}

func NewStudentApi(controller *StudentController, cfg *config.Config) api.Route {
	return &StudentApi{
		Controller: controller,
		Config:     cfg,
	}
}

func (a *StudentApi) Setup(app *fiber.App) {
	group := app.Group("/api/students", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Post("/", a.Controller.CreateStudent)
	group.Get("/", a.Controller.ListStudents)
	group.Get("/:id", a.Controller.GetStudent)
	group.Put("/:id", a.Controller.UpdateStudent)
	group.Delete("/:id", a.Controller.DeleteStudent)
}
