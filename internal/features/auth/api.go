package auth

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/api"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/config"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	controller *AuthController
	config     *config.Config
}

func NewAuthApi(controller *AuthController, cfg *config.Config) api.Route {
	return &AuthApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers all auth-related routes
func (h *AuthApi) Setup(app *fiber.App) {
	app.Post("/api/auth/register", h.controller.Register)
	app.Post("/api/auth/login", h.controller.Login)
	app.Get("/api/auth/me", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.Me)
}
