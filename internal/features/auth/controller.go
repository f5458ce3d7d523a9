package auth

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	AuthService AuthService
}

func NewAuthController(authService AuthService) *AuthController {
	return &AuthController{
		AuthService: authService,
	}
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Register Input"
// @Success      201  {object} User
// @Router       /api/auth/register [post]
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	user, err := ctrl.AuthService.Register(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Input"
// @Success      200  {object} AuthResponse
// @Router       /api/auth/login [post]
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	resp, err := ctrl.AuthService.Login(c.Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object} User
// @Router       /api/auth/me [get]
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return apperr.ErrUnauthenticated
	}

	user, err := ctrl.AuthService.GetUser(c.Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(user)
}
