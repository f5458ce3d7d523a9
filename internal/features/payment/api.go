package payment

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/api"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/config"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PaymentApi struct {
	Controller *PaymentController
	Config     *config.Config
}

func NewPaymentApi(controller *PaymentController, cfg *config.Config) api.Route {
	return &PaymentApi{
		Controller: controller,
		Config:     cfg,
	}
}

func (a *PaymentApi) Setup(app *fiber.App) {
	// the provider calls the webhook directly, no session auth
	app.Post("/api/payments/webhook", a.Controller.Webhook)

	group := app.Group("/api/payments", middleware.AuthMiddleware(a.Config.SkipAuth))
	group.Get("/", a.Controller.ListPayments)
	group.Get("/:id", a.Controller.GetPayment)
}
