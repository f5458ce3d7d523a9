package blog

import (
	"context"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostService interface {
	Create(ctx context.Context, authorID string, input PostInput) (*Post, error)
	Get(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context, activeOnly bool) ([]Post, error)
	Update(ctx context.Context, id string, input PostInput) (*Post, error)
	Delete(ctx context.Context, id string) error
}

type PostServiceImpl struct {
	Repo     PostRepository
	validate *validator.Validate
}

func NewPostService(repo PostRepository) PostService {
	return &PostServiceImpl{
		Repo:     repo,
		validate: validator.New(),
	}
}

func (s *PostServiceImpl) Create(ctx context.Context, authorID string, input PostInput) (*Post, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid post: %v", err)
	}

	p := &Post{
		Title:    input.Title,
		Content:  input.Content,
		IsActive: true,
	}
	if oid, err := primitive.ObjectIDFromHex(authorID); err == nil {
		p.AuthorID = oid
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostServiceImpl) Get(ctx context.Context, id string) (*Post, error) {
	return s.Repo.Get(ctx, id)
}

func (s *PostServiceImpl) List(ctx context.Context, activeOnly bool) ([]Post, error) {
	return s.Repo.List(ctx, activeOnly)
}

func (s *PostServiceImpl) Update(ctx context.Context, id string, input PostInput) (*Post, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid post: %v", err)
	}

	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Content = input.Content

	if err := s.Repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *PostServiceImpl) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
