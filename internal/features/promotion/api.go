package promotion

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/api"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/config"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PromotionApi struct {
	Controller *PromotionController
	Config     *config.Config
}

func NewPromotionApi(controller *PromotionController, cfg *config.Config) api.Route {
	return &PromotionApi{
		Controller: controller,
		Config:     cfg,
	}
}

func (a *PromotionApi) Setup(app *fiber.App) {
	group := app.Group("/api/promotions", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Post("/", a.Controller.CreatePromotion)
	group.Get("/", a.Controller.ListPromotions)
	group.Get("/:id", a.Controller.GetPromotion)
	group.Put("/:id", a.Controller.UpdatePromotion)
	group.Delete("/:id", a.Controller.DeletePromotion)
}
