package validation

import (
	"fmt"
	"time"

	"github.com/imfreehq/imfree/internal/constants"
	"github.com/imfreehq/imfree/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictMissingField         ConflictType = "missing_field"
	ConflictInvalidDate          ConflictType = "invalid_date"
	ConflictInvalidTime          ConflictType = "invalid_time"
	ConflictInvertedDateRange    ConflictType = "inverted_date_range"
	ConflictInvertedTimeRange    ConflictType = "inverted_time_range"
	ConflictDuplicateParticipant ConflictType = "duplicate_participant"
	ConflictMalformedSlotKey     ConflictType = "malformed_slot_key"
)

// Conflict describes a single validation problem on an event record.
type Conflict struct {
	Type    ConflictType
	Message string
}

// Result collects the conflicts found in one validation pass.
type Result struct {
	Conflicts []Conflict
}

// Valid reports whether no conflicts were found.
func (r Result) Valid() bool {
	return len(r.Conflicts) == 0
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateEvent checks an event record's fields, range ordering, participant
// uniqueness and the shape of every stored slot key. Storage decoders run
// this so malformed blobs surface as decode errors instead of silently wrong
// grids.
func (v *Validator) ValidateEvent(event models.Event) Result {
	var result Result

	if event.Title == "" {
		result.add(ConflictMissingField, "event title is required")
	}
	if event.Creator == "" {
		result.add(ConflictMissingField, "event creator is required")
	}

	start, startErr := time.Parse(constants.DateFormat, event.StartDate)
	if startErr != nil {
		result.add(ConflictInvalidDate, fmt.Sprintf("start date %q is not YYYY-MM-DD", event.StartDate))
	}
	end, endErr := time.Parse(constants.DateFormat, event.EndDate)
	if endErr != nil {
		result.add(ConflictInvalidDate, fmt.Sprintf("end date %q is not YYYY-MM-DD", event.EndDate))
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		result.add(ConflictInvertedDateRange,
			fmt.Sprintf("end date %s is before start date %s", event.EndDate, event.StartDate))
	}

	st, stErr := time.Parse(constants.TimeFormat, event.StartTime)
	if stErr != nil {
		result.add(ConflictInvalidTime, fmt.Sprintf("start time %q is not HH:MM", event.StartTime))
	}
	et, etErr := time.Parse(constants.TimeFormat, event.EndTime)
	if etErr != nil {
		result.add(ConflictInvalidTime, fmt.Sprintf("end time %q is not HH:MM", event.EndTime))
	}
	if stErr == nil && etErr == nil && !st.Before(et) {
		result.add(ConflictInvertedTimeRange,
			fmt.Sprintf("start time %s must be before end time %s", event.StartTime, event.EndTime))
	}

	seen := make(map[string]bool, len(event.Participants))
	for _, p := range event.Participants {
		if p.Name == "" {
			result.add(ConflictMissingField, "participant name is required")
			continue
		}
		if seen[p.Name] {
			result.add(ConflictDuplicateParticipant,
				fmt.Sprintf("duplicate participant name: %s", p.Name))
		}
		seen[p.Name] = true

		for key := range p.Availability {
			if !ValidSlotKey(key) {
				result.add(ConflictMalformedSlotKey,
					fmt.Sprintf("participant %s has malformed slot key %q", p.Name, key))
			}
		}
	}

	return result
}

// ValidSlotKey reports whether a key has the exact "YYYY-MM-DD_HH:MM" shape.
func ValidSlotKey(key string) bool {
	const layout = constants.DateFormat + constants.SlotKeySeparator + constants.TimeFormat
	_, err := time.Parse(layout, key)
	return err == nil
}

func (r *Result) add(t ConflictType, msg string) {
	r.Conflicts = append(r.Conflicts, Conflict{Type: t, Message: msg})
}
