package class

import (
	"context"
	"sort"
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassService interface {
	Create(ctx context.Context, input ClassInput) (*TrainingClass, error)
	Get(ctx context.Context, id string) (*TrainingClass, error)
	List(ctx context.Context, dojaangID string) ([]TrainingClass, error)
	Update(ctx context.Context, id string, input ClassInput) (*TrainingClass, error)
	Delete(ctx context.Context, id string) error
	AddStudent(ctx context.Context, classID, studentID string) (*TrainingClass, error)
	RemoveStudent(ctx context.Context, classID, studentID string) (*TrainingClass, error)
	UpcomingSessions(ctx context.Context, from, to time.Time) ([]Session, error)
}

type ClassServiceImpl struct {
	Repo     ClassRepository
	validate *validator.Validate
}

func NewClassService(repo ClassRepository) ClassService {
	return &ClassServiceImpl{
		Repo:     repo,
		validate: validator.New(),
	}
}

func (s *ClassServiceImpl) fromInput(input ClassInput) (*TrainingClass, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid class: %v", err)
	}

	c := &TrainingClass{Name: input.Name}
	if input.DojaangID != "" {
		oid, err := primitive.ObjectIDFromHex(input.DojaangID)
		if err != nil {
			return nil, apperr.Validation("invalid dojaang id %q", input.DojaangID)
		}
		c.DojaangID = oid
	}
	if input.CoachID != "" {
		oid, err := primitive.ObjectIDFromHex(input.CoachID)
		if err != nil {
			return nil, apperr.Validation("invalid coach id %q", input.CoachID)
		}
		c.CoachID = oid
	}
	for _, slot := range input.Schedule {
		if _, _, ok := parseClock(slot.StartTime); !ok {
			return nil, apperr.Validation("invalid start time %q", slot.StartTime)
		}
		if _, _, ok := parseClock(slot.EndTime); !ok {
			return nil, apperr.Validation("invalid end time %q", slot.EndTime)
		}
		c.Schedule = append(c.Schedule, ScheduleSlot{
			Day:       time.Weekday(slot.Day),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}
	return c, nil
}

func (s *ClassServiceImpl) Create(ctx context.Context, input ClassInput) (*TrainingClass, error) {
	c, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClassServiceImpl) Get(ctx context.Context, id string) (*TrainingClass, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ClassServiceImpl) List(ctx context.Context, dojaangID string) ([]TrainingClass, error) {
	return s.Repo.List(ctx, dojaangID)
}

func (s *ClassServiceImpl) Update(ctx context.Context, id string, input ClassInput) (*TrainingClass, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	c.ID = existing.ID
	c.StudentIDs = existing.StudentIDs
	c.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, id, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClassServiceImpl) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *ClassServiceImpl) AddStudent(ctx context.Context, classID, studentID string) (*TrainingClass, error) {
	c, err := s.Repo.Get(ctx, classID)
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, apperr.Validation("invalid student id %q", studentID)
	}

	for _, existing := range c.StudentIDs {
		if existing == oid {
			return c, nil // already enrolled
		}
	}

	c.StudentIDs = append(c.StudentIDs, oid)
	if err := s.Repo.Update(ctx, classID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClassServiceImpl) RemoveStudent(ctx context.Context, classID, studentID string) (*TrainingClass, error) {
	c, err := s.Repo.Get(ctx, classID)
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, apperr.Validation("invalid student id %q", studentID)
	}

	kept := c.StudentIDs[:0]
	found := false
	for _, existing := range c.StudentIDs {
		if existing == oid {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return nil, apperr.NotFoundf("student %s in class %s", studentID, classID)
	}

	c.StudentIDs = kept
	if err := s.Repo.Update(ctx, classID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpcomingSessions expands every class's weekly schedule into concrete
// sessions inside the window, sorted by start time.
func (s *ClassServiceImpl) UpcomingSessions(ctx context.Context, from, to time.Time) ([]Session, error) {
	classes, err := s.Repo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	var sessions []Session
	for i := range classes {
		sessions = append(sessions, ExpandSessions(&classes[i], from, to)...)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Start.Before(sessions[j].Start)
	})
	return sessions, nil
}
