package student

import (
	"context"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StudentService interface {
	Create(ctx context.Context, input StudentInput) (*Student, error)
	Get(ctx context.Context, id string) (*Student, error)
	List(ctx context.Context, dojaangID string) ([]Student, error)
	Update(ctx context.Context, id string, input StudentInput) (*Student, error)
	Delete(ctx context.Context, id string) error
}

type StudentServiceImpl struct {
	Repo     StudentRepository
	validate *validator.Validate
}

func NewStudentService(repo StudentRepository) StudentService {
	return &StudentServiceImpl{
		Repo:     repo,
		validate: validator.New(),
	}
}

func (s *StudentServiceImpl) fromInput(input StudentInput) (*Student, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid student: %v", err)
	}
	if RankOrder(input.Rank) < 0 {
		return nil, apperr.Validation("unknown rank %q", input.Rank)
	}

	st := &Student{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Phone:       input.Phone,
		DateOfBirth: input.DateOfBirth,
		Rank:        input.Rank,
		IsActive:    true,
	}
	if input.DojaangID != "" {
		oid, err := primitive.ObjectIDFromHex(input.DojaangID)
		if err != nil {
			return nil, apperr.Validation("invalid dojaang id %q", input.DojaangID)
		}
		st.DojaangID = oid
	}
	return st, nil
}

func (s *StudentServiceImpl) Create(ctx context.Context, input StudentInput) (*Student, error) {
	st, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StudentServiceImpl) Get(ctx context.Context, id string) (*Student, error) {
	return s.Repo.Get(ctx, id)
}

func (s *StudentServiceImpl) List(ctx context.Context, dojaangID string) ([]Student, error) {
	return s.Repo.List(ctx, dojaangID)
}

func (s *StudentServiceImpl) Update(ctx context.Context, id string, input StudentInput) (*Student, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	st, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	st.ID = existing.ID
	st.IsActive = existing.IsActive
	st.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, id, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StudentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
