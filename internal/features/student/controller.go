package student

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
)

type StudentController struct {
	Service StudentService
}

func NewStudentController(service StudentService) *StudentController {
	return &StudentController{Service: service}
}

// CreateStudent godoc
// @Summary Create student
// @Tags students
// @Accept json
// @Produce json
// @Param student body StudentInput true "Student"
// @Success 201 {object} Student
// @Router /api/students [post]
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var input StudentInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	st, err := ctrl.Service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

// ListStudents godoc
// @Summary List students, optionally by dojaang
// @Tags students
// @Produce json
// @Param dojaang_id query string false "Dojaang ID"
// @Success 200 {array} Student
// @Router /api/students [get]
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	students, err := ctrl.Service.List(c.Context(), c.Query("dojaang_id"))
	if err != nil {
		return err
	}
	return c.JSON(students)
}

// GetStudent godoc
// @Summary Get student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} Student
// @Router /api/students/{id} [get]
func (ctrl *StudentController) GetStudent(c *fiber.Ctx) error {
	st, err := ctrl.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(st)
}

// UpdateStudent godoc
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param student body StudentInput true "Student"
// @Success 200 {object} Student
// @Router /api/students/{id} [put]
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	var input StudentInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	st, err := ctrl.Service.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(st)
}

// DeleteStudent godoc
// @Summary Delete student
// @Tags students
// @Param id path string true "Student ID"
// @Success 204
// @Router /api/students/{id} [delete]
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	if err := ctrl.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
