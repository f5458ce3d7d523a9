package promotion

import (
	"context"
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/student"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PromotionService interface {
	Create(ctx context.Context, input PromotionInput) (*Promotion, error)
	Get(ctx context.Context, id string) (*Promotion, error)
	List(ctx context.Context, studentID string) ([]Promotion, error)
	Update(ctx context.Context, id string, input PromotionInput) (*Promotion, error)
	Delete(ctx context.Context, id string) error
}

type PromotionServiceImpl struct {
	Repo     PromotionRepository
	Students student.StudentRepository
	validate *validator.Validate
}

func NewPromotionService(repo PromotionRepository, students student.StudentRepository) PromotionService {
	return &PromotionServiceImpl{
		Repo:     repo,
		Students: students,
		validate: validator.New(),
	}
}

func (s *PromotionServiceImpl) fromInput(input PromotionInput) (*Promotion, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid promotion: %v", err)
	}
	if student.RankOrder(input.FromRank) < 0 {
		return nil, apperr.Validation("unknown rank %q", input.FromRank)
	}
	if student.RankOrder(input.ToRank) < 0 {
		return nil, apperr.Validation("unknown rank %q", input.ToRank)
	}
	if student.RankOrder(input.ToRank) <= student.RankOrder(input.FromRank) {
		return nil, apperr.Validation("promotion must move up the ladder, %q does not outrank %q",
			input.ToRank, input.FromRank)
	}

	studentID, err := primitive.ObjectIDFromHex(input.StudentID)
	if err != nil {
		return nil, apperr.Validation("invalid student id %q", input.StudentID)
	}

	p := &Promotion{
		StudentID:     studentID,
		FromRank:      input.FromRank,
		ToRank:        input.ToRank,
		PromotionDate: input.PromotionDate,
		Notes:         input.Notes,
	}
	if p.PromotionDate.IsZero() {
		p.PromotionDate = time.Now()
	}
	if input.CoachID != "" {
		oid, err := primitive.ObjectIDFromHex(input.CoachID)
		if err != nil {
			return nil, apperr.Validation("invalid coach id %q", input.CoachID)
		}
		p.CoachID = oid
	}
	if input.DojaangID != "" {
		oid, err := primitive.ObjectIDFromHex(input.DojaangID)
		if err != nil {
			return nil, apperr.Validation("invalid dojaang id %q", input.DojaangID)
		}
		p.DojaangID = oid
	}
	return p, nil
}

// Create records the promotion and moves the student to the new rank.
func (s *PromotionServiceImpl) Create(ctx context.Context, input PromotionInput) (*Promotion, error) {
	st, err := s.Students.Get(ctx, input.StudentID)
	if err != nil {
		return nil, err
	}
	if input.FromRank == "" {
		input.FromRank = st.Rank
	}

	p, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}

	st.Rank = p.ToRank
	if err := s.Students.Update(ctx, input.StudentID, st); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PromotionServiceImpl) Get(ctx context.Context, id string) (*Promotion, error) {
	return s.Repo.Get(ctx, id)
}

func (s *PromotionServiceImpl) List(ctx context.Context, studentID string) ([]Promotion, error) {
	return s.Repo.List(ctx, studentID)
}

func (s *PromotionServiceImpl) Update(ctx context.Context, id string, input PromotionInput) (*Promotion, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, id, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PromotionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
