package payment

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	Service PaymentService
}

func NewPaymentController(service PaymentService) *PaymentController {
	return &PaymentController{Service: service}
}

// Webhook godoc
// @Summary Ingest a provider payment event
// @Tags payments
// @Accept json
// @Produce json
// @Param event body WebhookEvent true "Webhook event"
// @Success 200 {object} Payment
// @Router /api/payments/webhook [post]
func (ctrl *PaymentController) Webhook(c *fiber.Ctx) error {
	var event WebhookEvent
	if err := c.BodyParser(&event); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	p, err := ctrl.Service.Ingest(c.Context(), event)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// ListPayments godoc
// @Summary List payments, optionally by status
// @Tags payments
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Success 200 {array} Payment
// @Router /api/payments [get]
func (ctrl *PaymentController) ListPayments(c *fiber.Ctx) error {
	payments, err := ctrl.Service.List(c.Context(), c.Query("status"))
	if err != nil {
		return err
	}
	return c.JSON(payments)
}

// GetPayment godoc
// @Summary Get payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} Payment
// @Router /api/payments/{id} [get]
func (ctrl *PaymentController) GetPayment(c *fiber.Ctx) error {
	p, err := ctrl.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(p)
}
