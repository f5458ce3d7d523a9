package class

import (
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
)

type ClassController struct {
	Service ClassService
}

func NewClassController(service ClassService) *ClassController {
	return &ClassController{Service: service}
}

// CreateClass godoc
// @Summary Create training class
// @Tags classes
// @Accept json
// @Produce json
// @Param class body ClassInput true "Class"
// @Success 201 {object} TrainingClass
// @Router /api/classes [post]
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var input ClassInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	tc, err := ctrl.Service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(tc)
}

// ListClasses godoc
// @Summary List classes, optionally by dojaang
// @Tags classes
// @Produce json
// @Param dojaang_id query string false "Dojaang ID"
// @Success 200 {array} TrainingClass
// @Router /api/classes [get]
func (ctrl *ClassController) ListClasses(c *fiber.Ctx) error {
	classes, err := ctrl.Service.List(c.Context(), c.Query("dojaang_id"))
	if err != nil {
		return err
	}
	return c.JSON(classes)
}

// GetClass godoc
// @Summary Get class
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} TrainingClass
// @Router /api/classes/{id} [get]
func (ctrl *ClassController) GetClass(c *fiber.Ctx) error {
	tc, err := ctrl.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(tc)
}

// UpdateClass godoc
// @Summary Update class
// @Tags classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param class body ClassInput true "Class"
// @Success 200 {object} TrainingClass
// @Router /api/classes/{id} [put]
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	var input ClassInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	tc, err := ctrl.Service.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(tc)
}

// DeleteClass godoc
// @Summary Delete class
// @Tags classes
// @Param id path string true "Class ID"
// @Success 204
// @Router /api/classes/{id} [delete]
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	if err := ctrl.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddStudent godoc
// @Summary Enroll student in class
// @Tags classes
// @Param id path string true "Class ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} TrainingClass
// @Router /api/classes/{id}/students/{studentId} [post]
func (ctrl *ClassController) AddStudent(c *fiber.Ctx) error {
	tc, err := ctrl.Service.AddStudent(c.Context(), c.Params("id"), c.Params("studentId"))
	if err != nil {
		return err
	}
	return c.JSON(tc)
}

// RemoveStudent godoc
// @Summary Remove student from class
// @Tags classes
// @Param id path string true "Class ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} TrainingClass
// @Router /api/classes/{id}/students/{studentId} [delete]
func (ctrl *ClassController) RemoveStudent(c *fiber.Ctx) error {
	tc, err := ctrl.Service.RemoveStudent(c.Context(), c.Params("id"), c.Params("studentId"))
	if err != nil {
		return err
	}
	return c.JSON(tc)
}

// Sessions godoc
// @Summary Upcoming sessions across all classes
// @Tags classes
// @Produce json
// @Param from query string false "RFC3339 start, defaults to now"
// @Param to query string false "RFC3339 end, defaults to one week out"
// @Success 200 {array} Session
// @Router /api/classes/sessions [get]
func (ctrl *ClassController) Sessions(c *fiber.Ctx) error {
	from := time.Now()
	to := from.AddDate(0, 0, 7)

	if q := c.Query("from"); q != "" {
		t, err := time.Parse(time.RFC3339, q)
		if err != nil {
			return apperr.Validation("invalid from date %q", q)
		}
		from = t
	}
	if q := c.Query("to"); q != "" {
		t, err := time.Parse(time.RFC3339, q)
		if err != nil {
			return apperr.Validation("invalid to date %q", q)
		}
		to = t
	}

	sessions, err := ctrl.Service.UpcomingSessions(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(sessions)
}
