package promotion

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
)

type PromotionController struct {
	Service PromotionService
}

func NewPromotionController(service PromotionService) *PromotionController {
	return &PromotionController{Service: service}
}

// CreatePromotion godoc
// @Summary Record a belt promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Param promotion body PromotionInput true "Promotion"
// @Success 201 {object} Promotion
// @Router /api/promotions [post]
func (ctrl *PromotionController) CreatePromotion(c *fiber.Ctx) error {
	var input PromotionInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	p, err := ctrl.Service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// ListPromotions godoc
// @Summary List promotions, optionally by student
// @Tags promotions
// @Produce json
// @Param student_id query string false "Student ID"
// @Success 200 {array} Promotion
// @Router /api/promotions [get]
func (ctrl *PromotionController) ListPromotions(c *fiber.Ctx) error {
	promotions, err := ctrl.Service.List(c.Context(), c.Query("student_id"))
	if err != nil {
		return err
	}
	return c.JSON(promotions)
}

// GetPromotion godoc
// @Summary Get promotion
// @Tags promotions
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 200 {object} Promotion
// @Router /api/promotions/{id} [get]
func (ctrl *PromotionController) GetPromotion(c *fiber.Ctx) error {
	p, err := ctrl.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// UpdatePromotion godoc
// @Summary Update promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Param id path string true "Promotion ID"
// @Param promotion body PromotionInput true "Promotion"
// @Success 200 {object} Promotion
// @Router /api/promotions/{id} [put]
func (ctrl *PromotionController) UpdatePromotion(c *fiber.Ctx) error {
	var input PromotionInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	p, err := ctrl.Service.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// DeletePromotion godoc
// @Summary Delete promotion
// @Tags promotions
// @Param id path string true "Promotion ID"
// @Success 204
// @Router /api/promotions/{id} [delete]
func (ctrl *PromotionController) DeletePromotion(c *fiber.Ctx) error {
	if err := ctrl.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
