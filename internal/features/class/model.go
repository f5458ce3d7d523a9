package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleSlot is a weekly recurring training slot.
type ScheduleSlot struct {
	Day       time.Weekday `json:"day" bson:"day"`
	StartTime string       `json:"start_time" bson:"start_time"` // "18:30"
	EndTime   string       `json:"end_time" bson:"end_time"`
}

// TrainingClass is a recurring class at a dojaang with an enrolled roster.
type TrainingClass struct {
	ID         primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name       string               `json:"name" bson:"name"`
	DojaangID  primitive.ObjectID   `json:"dojaang_id,omitempty" bson:"dojaang_id,omitempty"`
	CoachID    primitive.ObjectID   `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	Schedule   []ScheduleSlot       `json:"schedule" bson:"schedule"`
	StudentIDs []primitive.ObjectID `json:"student_ids,omitempty" bson:"student_ids,omitempty"`
	CreatedAt  time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at" bson:"updated_at"`
}

type ClassInput struct {
	Name      string         `json:"name" validate:"required,max=120"`
	DojaangID string         `json:"dojaang_id"`
	CoachID   string         `json:"coach_id"`
	Schedule  []ScheduleInput `json:"schedule" validate:"dive"`
}

type ScheduleInput struct {
	Day       int    `json:"day" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required,len=5"`
	EndTime   string `json:"end_time" validate:"required,len=5"`
}

// Session is one concrete occurrence of a class, used by calendar widgets.
type Session struct {
	ClassID   string    `json:"class_id"`
	ClassName string    `json:"class_name"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// ExpandSessions materializes the weekly schedule of a class into concrete
// sessions inside [from, to). Slots with malformed times are skipped.
func ExpandSessions(c *TrainingClass, from, to time.Time) []Session {
	var sessions []Session
	if !from.Before(to) {
		return sessions
	}

	for _, slot := range c.Schedule {
		startH, startM, ok := parseClock(slot.StartTime)
		if !ok {
			continue
		}
		endH, endM, ok := parseClock(slot.EndTime)
		if !ok {
			continue
		}

		// First occurrence of the slot's weekday at or after from.
		day := from
		for day.Weekday() != slot.Day {
			day = day.AddDate(0, 0, 1)
		}

		for ; day.Before(to); day = day.AddDate(0, 0, 7) {
			start := time.Date(day.Year(), day.Month(), day.Day(), startH, startM, 0, 0, day.Location())
			if start.Before(from) || !start.Before(to) {
				continue
			}
			end := time.Date(day.Year(), day.Month(), day.Day(), endH, endM, 0, 0, day.Location())
			sessions = append(sessions, Session{
				ClassID:   c.ID.Hex(),
				ClassName: c.Name,
				Start:     start,
				End:       end,
			})
		}
	}
	return sessions
}

func parseClock(s string) (hour, minute int, ok bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}
