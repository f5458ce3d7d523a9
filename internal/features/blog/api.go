package blog

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/api"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/config"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type BlogApi struct {
	Controller *PostController
	Config     *config.Config
}

func NewBlogApi(controller *PostController, cfg *config.Config) api.Route {
	return &BlogApi{
		Controller: controller,
		Config:     cfg,
	}
}

func (a *BlogApi) Setup(app *fiber.App) {
	// reads are public, writes require auth
	app.Get("/api/blog", a.Controller.ListPosts)
	app.Get("/api/blog/:id", a.Controller.GetPost)

	group := app.Group("/api/blog", middleware.AuthMiddleware(a.Config.SkipAuth))
	group.Post("/", a.Controller.CreatePost)
	group.Put("/:id", a.Controller.UpdatePost)
	group.Delete("/:id", a.Controller.DeletePost)
}
