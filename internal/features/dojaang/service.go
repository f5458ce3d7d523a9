package dojaang

import (
	"context"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DojaangService interface {
	Create(ctx context.Context, input DojaangInput) (*Dojaang, error)
	Get(ctx context.Context, id string) (*Dojaang, error)
	List(ctx context.Context) ([]Dojaang, error)
	Update(ctx context.Context, id string, input DojaangInput) (*Dojaang, error)
	Delete(ctx context.Context, id string) error
}

type DojaangServiceImpl struct {
	Repo     DojaangRepository
	validate *validator.Validate
}

func NewDojaangService(repo DojaangRepository) DojaangService {
	return &DojaangServiceImpl{
		Repo:     repo,
		validate: validator.New(),
	}
}

func (s *DojaangServiceImpl) fromInput(input DojaangInput) (*Dojaang, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid dojaang: %v", err)
	}

	d := &Dojaang{
		Name:       input.Name,
		KoreanName: input.KoreanName,
		Address:    input.Address,
		Phone:      input.Phone,
		Email:      input.Email,
		IsActive:   true,
	}
	if input.CoachID != "" {
		oid, err := primitive.ObjectIDFromHex(input.CoachID)
		if err != nil {
			return nil, apperr.Validation("invalid coach id %q", input.CoachID)
		}
		d.CoachID = oid
	}
	return d, nil
}

func (s *DojaangServiceImpl) Create(ctx context.Context, input DojaangInput) (*Dojaang, error) {
	d, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DojaangServiceImpl) Get(ctx context.Context, id string) (*Dojaang, error) {
	return s.Repo.Get(ctx, id)
}

func (s *DojaangServiceImpl) List(ctx context.Context) ([]Dojaang, error) {
	return s.Repo.List(ctx)
}

func (s *DojaangServiceImpl) Update(ctx context.Context, id string, input DojaangInput) (*Dojaang, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	d, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	d.ID = existing.ID
	d.IsActive = existing.IsActive
	d.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, id, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DojaangServiceImpl) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
