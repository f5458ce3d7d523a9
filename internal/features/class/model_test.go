package class

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExpandSessions(t *testing.T) {
	c := &TrainingClass{
		ID:   primitive.NewObjectID(),
		Name: "Evening sparring",
		Schedule: []ScheduleSlot{
			{Day: time.Monday, StartTime: "18:30", EndTime: "20:00"},
			{Day: time.Wednesday, StartTime: "18:30", EndTime: "20:00"},
		},
	}

	// Two full weeks starting on a Monday.
	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC) // Monday
	to := from.AddDate(0, 0, 14)

	sessions := ExpandSessions(c, from, to)
	if len(sessions) != 4 {
		t.Fatalf("got %d sessions, want 4 (2 slots x 2 weeks)", len(sessions))
	}

	first := sessions[0]
	if first.Start.Weekday() != time.Monday || first.Start.Hour() != 18 || first.Start.Minute() != 30 {
		t.Errorf("first session start = %v", first.Start)
	}
	if first.End.Hour() != 20 {
		t.Errorf("first session end = %v", first.End)
	}
}

func TestExpandSessionsRespectsWindow(t *testing.T) {
	c := &TrainingClass{
		ID:       primitive.NewObjectID(),
		Name:     "Poomsae",
		Schedule: []ScheduleSlot{{Day: time.Friday, StartTime: "10:00", EndTime: "11:00"}},
	}

	// Window starts Friday noon: that day's 10:00 session is already past.
	from := time.Date(2025, 9, 5, 12, 0, 0, 0, time.UTC) // Friday
	to := from.AddDate(0, 0, 7)

	sessions := ExpandSessions(c, from, to)
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].Start.Day() != 12 {
		t.Errorf("session should fall on the next Friday, got %v", sessions[0].Start)
	}
}

func TestExpandSessionsSkipsMalformedSlots(t *testing.T) {
	c := &TrainingClass{
		ID:   primitive.NewObjectID(),
		Name: "Broken",
		Schedule: []ScheduleSlot{
			{Day: time.Monday, StartTime: "whenever", EndTime: "20:00"},
		},
	}

	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	if got := ExpandSessions(c, from, from.AddDate(0, 0, 7)); len(got) != 0 {
		t.Errorf("malformed slot should produce no sessions, got %d", len(got))
	}
}

func TestExpandSessionsEmptyWindow(t *testing.T) {
	c := &TrainingClass{
		Schedule: []ScheduleSlot{{Day: time.Monday, StartTime: "18:00", EndTime: "19:00"}},
	}
	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	if got := ExpandSessions(c, from, from); len(got) != 0 {
		t.Errorf("empty window should produce no sessions, got %d", len(got))
	}
}
