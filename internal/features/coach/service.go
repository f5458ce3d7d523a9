package coach

import (
	"context"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CoachService interface {
	Create(ctx context.Context, input CoachInput) (*Coach, error)
	Get(ctx context.Context, id string) (*Coach, error)
	List(ctx context.Context) ([]Coach, error)
	Update(ctx context.Context, id string, input CoachInput) (*Coach, error)
	Delete(ctx context.Context, id string) error
}

type CoachServiceImpl struct {
	Repo     CoachRepository
	validate *validator.Validate
}

func NewCoachService(repo CoachRepository) CoachService {
	return &CoachServiceImpl{
		Repo:     repo,
		validate: validator.New(),
	}
}

func (s *CoachServiceImpl) fromInput(input CoachInput) (*Coach, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid coach: %v", err)
	}

	c := &Coach{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Rank:      input.Rank,
		IsActive:  true,
	}
	for _, id := range input.ManagedDojaangIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, apperr.Validation("invalid dojaang id %q", id)
		}
		c.ManagedDojaangIDs = append(c.ManagedDojaangIDs, oid)
	}
	return c, nil
}

func (s *CoachServiceImpl) Create(ctx context.Context, input CoachInput) (*Coach, error) {
	c, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CoachServiceImpl) Get(ctx context.Context, id string) (*Coach, error) {
	return s.Repo.Get(ctx, id)
}

func (s *CoachServiceImpl) List(ctx context.Context) ([]Coach, error) {
	return s.Repo.List(ctx)
}

func (s *CoachServiceImpl) Update(ctx context.Context, id string, input CoachInput) (*Coach, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	c.ID = existing.ID
	c.IsActive = existing.IsActive
	c.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, id, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CoachServiceImpl) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
