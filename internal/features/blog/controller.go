package blog

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PostController struct {
	Service PostService
}

func NewPostController(service PostService) *PostController {
	return &PostController{Service: service}
}

// CreatePost godoc
// @Summary Publish a post
// @Tags blog
// @Accept json
// @Produce json
// @Param post body PostInput true "Post"
// @Success 201 {object} Post
// @Router /api/blog [post]
func (ctrl *PostController) CreatePost(c *fiber.Ctx) error {
	var input PostInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	var authorID string
	if claims := middleware.Claims(c); claims != nil {
		authorID = claims.UserID
	}

	p, err := ctrl.Service.Create(c.Context(), authorID, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// ListPosts godoc
// @Summary List posts
// @Tags blog
// @Produce json
// @Param include_inactive query bool false "Include retired posts"
// @Success 200 {array} Post
// @Router /api/blog [get]
func (ctrl *PostController) ListPosts(c *fiber.Ctx) error {
	posts, err := ctrl.Service.List(c.Context(), !c.QueryBool("include_inactive"))
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// GetPost godoc
// @Summary Get post
// @Tags blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} Post
// @Router /api/blog/{id} [get]
func (ctrl *PostController) GetPost(c *fiber.Ctx) error {
	p, err := ctrl.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// UpdatePost godoc
// @Summary Update post
// @Tags blog
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body PostInput true "Post"
// @Success 200 {object} Post
// @Router /api/blog/{id} [put]
func (ctrl *PostController) UpdatePost(c *fiber.Ctx) error {
	var input PostInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}

	p, err := ctrl.Service.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// DeletePost godoc
// @Summary Retire post
// @Tags blog
// @Param id path string true "Post ID"
// @Success 204
// @Router /api/blog/{id} [delete]
func (ctrl *PostController) DeletePost(c *fiber.Ctx) error {
	if err := ctrl.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
