package validation

import (
	"testing"

	"github.com/imfreehq/imfree/internal/models"
)

func validEvent() models.Event {
	return models.Event{
		ID:        "evt-1",
		Title:     "Team Planning",
		Creator:   "Alice Johnson",
		StartDate: "2025-01-06",
		EndDate:   "2025-01-08",
		StartTime: "09:00",
		EndTime:   "17:00",
	}
}

func conflictTypes(r Result) []ConflictType {
	types := make([]ConflictType, 0, len(r.Conflicts))
	for _, c := range r.Conflicts {
		types = append(types, c.Type)
	}
	return types
}

func hasConflict(r Result, want ConflictType) bool {
	for _, c := range r.Conflicts {
		if c.Type == want {
			return true
		}
	}
	return false
}

func TestValidateEventClean(t *testing.T) {
	res := New().ValidateEvent(validEvent())
	if !res.Valid() {
		t.Errorf("ValidateEvent() conflicts = %v, want none", res.Conflicts)
	}
}

func TestValidateEventConflicts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Event)
		want   ConflictType
	}{
		{"missing title", func(e *models.Event) { e.Title = "" }, ConflictMissingField},
		{"missing creator", func(e *models.Event) { e.Creator = "" }, ConflictMissingField},
		{"bad start date", func(e *models.Event) { e.StartDate = "not-a-date" }, ConflictInvalidDate},
		{"bad end date", func(e *models.Event) { e.EndDate = "2025/01/08" }, ConflictInvalidDate},
		{"inverted dates", func(e *models.Event) {
			e.StartDate, e.EndDate = "2025-01-08", "2025-01-06"
		}, ConflictInvertedDateRange},
		{"bad start time", func(e *models.Event) { e.StartTime = "9am" }, ConflictInvalidTime},
		{"inverted times", func(e *models.Event) {
			e.StartTime, e.EndTime = "17:00", "09:00"
		}, ConflictInvertedTimeRange},
		{"duplicate participant", func(e *models.Event) {
			e.Participants = []models.Participant{{Name: "Bob"}, {Name: "Bob"}}
		}, ConflictDuplicateParticipant},
		{"malformed slot key", func(e *models.Event) {
			e.Participants = []models.Participant{{
				Name:         "Bob",
				Availability: models.Availability{"monday-morning": true},
			}}
		}, ConflictMalformedSlotKey},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(&e)
			res := v.ValidateEvent(e)
			if res.Valid() {
				t.Fatal("ValidateEvent() found no conflicts")
			}
			if !hasConflict(res, tt.want) {
				t.Errorf("conflicts %v missing %s", conflictTypes(res), tt.want)
			}
		})
	}
}

func TestValidateEventAccumulates(t *testing.T) {
	e := validEvent()
	e.Title = ""
	e.StartDate = "bogus"
	e.StartTime = "bogus"

	res := New().ValidateEvent(e)
	if len(res.Conflicts) < 3 {
		t.Errorf("conflicts = %v, want all three problems reported", conflictTypes(res))
	}
}

func TestValidSlotKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"2025-01-06_09:00", true},
		{"2025-01-06_23:30", true},
		{"2025-01-06 09:00", false}, // wrong separator
		{"2025-01-06_9:00", false},  // unpadded hour
		{"2025-13-06_09:00", false}, // impossible month
		{"2025-01-06", false},
		{"09:00", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidSlotKey(tt.key); got != tt.want {
			t.Errorf("ValidSlotKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
