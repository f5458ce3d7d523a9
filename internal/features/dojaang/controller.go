package dojaang

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
)

type DojaangController struct {
	Service DojaangService
}

func NewDojaangController(service DojaangService) *DojaangController {
	return &DojaangController{Service: service}
}

// CreateDojaang godoc
// @Summary Create dojaang
// @Tags dojaangs
// @Accept json
// @Produce json
// @Param dojaang body DojaangInput true "Dojaang"
// @Success 201 {object} Dojaang
// @Router /api/dojaangs [post]
func (ctrl *DojaangController) CreateDojaang(c *fiber.Ctx) error {
	var input DojaangInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	d, err := ctrl.Service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(d)
}

// ListDojaangs godoc
// @Summary List dojaangs
// @Tags dojaangs
// @Produce json
// @Success 200 {array} Dojaang
// @Router /api/dojaangs [get]
func (ctrl *DojaangController) ListDojaangs(c *fiber.Ctx) error {
	dojaangs, err := ctrl.Service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dojaangs)
}

// GetDojaang godoc
// @Summary Get dojaang
// @Tags dojaangs
// @Produce json
// @Param id path string true "Dojaang ID"
// @Success 200 {object} Dojaang
// @Router /api/dojaangs/{id} [get]
func (ctrl *DojaangController) GetDojaang(c *fiber.Ctx) error {
	d, err := ctrl.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(d)
}

// UpdateDojaang godoc
// @Summary Update dojaang
// @Tags dojaangs
// @Accept json
// @Produce json
// @Param id path string true "Dojaang ID"
// @Param dojaang body DojaangInput true "Dojaang"
// @Success 200 {object} Dojaang
// @Router /api/dojaangs/{id} [put]
func (ctrl *DojaangController) UpdateDojaang(c *fiber.Ctx) error {
	var input DojaangInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	d, err := ctrl.Service.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

// DeleteDojaang godoc
// @Summary Delete dojaang
// @Tags dojaangs
// @Param id path string true "Dojaang ID"
// @Success 204
// @Router /api/dojaangs/{id} [delete]
func (ctrl *DojaangController) DeleteDojaang(c *fiber.Ctx) error {
	if err := ctrl.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
