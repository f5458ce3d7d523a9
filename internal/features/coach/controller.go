package coach

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
)

type CoachController struct {
	Service CoachService
}

func NewCoachController(service CoachService) *CoachController {
	return &CoachController{Service: service}
}

// CreateCoach godoc
// @Summary Create coach
// @Tags coaches
// @Accept json
// @Produce json
// @Param coach body CoachInput true "Coach"
// @Success 201 {object} Coach
// @Router /api/coaches [post]
func (ctrl *CoachController) CreateCoach(c *fiber.Ctx) error {
	var input CoachInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	coach, err := ctrl.Service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(coach)
}

// ListCoaches godoc
// @Summary List coaches
// @Tags coaches
// @Produce json
// @Success 200 {array} Coach
// @Router /api/coaches [get]
func (ctrl *CoachController) ListCoaches(c *fiber.Ctx) error {
	coaches, err := ctrl.Service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(coaches)
}

// GetCoach godoc
// @Summary Get coach
// @Tags coaches
// @Produce json
// @Param id path string true "Coach ID"
// @Success 200 {object} Coach
// @Router /api/coaches/{id} [get]
func (ctrl *CoachController) GetCoach(c *fiber.Ctx) error {
	coach, err := ctrl.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(coach)
}

// UpdateCoach godoc
// @Summary Update coach
// @Tags coaches
// @Accept json
// @Produce json
// @Param id path string true "Coach ID"
// @Param coach body CoachInput true "Coach"
// @Success 200 {object} Coach
// @Router /api/coaches/{id} [put]
func (ctrl *CoachController) UpdateCoach(c *fiber.Ctx) error {
	var input CoachInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	coach, err := ctrl.Service.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(coach)
}

// DeleteCoach godoc
// @Summary Delete coach
// @Tags coaches
// @Param id path string true "Coach ID"
// @Success 204
// @Router /api/coaches/{id} [delete]
func (ctrl *CoachController) DeleteCoach(c *fiber.Ctx) error {
	if err := ctrl.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
