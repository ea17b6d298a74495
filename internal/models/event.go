package models

import (
	"fmt"
	"time"

	"github.com/imfreehq/imfree/internal/constants"
)

// Availability maps slot keys ("2025-01-06_09:00") to whether the
// participant is free then. A missing key and an explicit false are
// equivalent; only true entries are meaningful.
type Availability map[string]bool

// SelectedCount returns the number of slots marked available.
func (a Availability) SelectedCount() int {
	n := 0
	for _, ok := range a {
		if ok {
			n++
		}
	}
	return n
}

// SlotKey builds the composite key for a (date, time) cell. The format is
// shared with every stored availability map and must stay bit-exact.
func SlotKey(date, timeOfDay string) string {
	return date + constants.SlotKeySeparator + timeOfDay
}

type Participant struct {
	Name         string       `json:"name"`
	Email        string       `json:"email,omitempty"`
	Availability Availability `json:"availability"`
}

type Meeting struct {
	Date        string `json:"date"`         // YYYY-MM-DD
	Time        string `json:"time"`         // HH:MM
	ConfirmedAt string `json:"confirmed_at"` // RFC3339 timestamp
	ConfirmedBy string `json:"confirmed_by,omitempty"`
}

type Event struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Creator      string        `json:"creator"`
	CoverImage   string        `json:"cover_image,omitempty"`
	StartDate    string        `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate      string        `json:"end_date"`   // YYYY-MM-DD, inclusive
	StartTime    string        `json:"start_time"` // HH:MM
	EndTime      string        `json:"end_time"`   // HH:MM, exclusive slot bound
	Participants []Participant `json:"participants"`
	Meetings     []Meeting     `json:"meetings,omitempty"`
	CreatedAt    string        `json:"created_at"` // RFC3339 timestamp
}

// Validate checks the structural invariants of an event record. It is called
// at event creation and again when decoding stored records, so malformed
// blobs fail loudly instead of producing silently wrong grids.
func (e *Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("event title is required")
	}
	if e.Creator == "" {
		return fmt.Errorf("event creator is required")
	}

	start, err := time.Parse(constants.DateFormat, e.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q (expected YYYY-MM-DD): %w", e.StartDate, err)
	}
	end, err := time.Parse(constants.DateFormat, e.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q (expected YYYY-MM-DD): %w", e.EndDate, err)
	}
	if end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s", e.EndDate, e.StartDate)
	}

	st, err := time.Parse(constants.TimeFormat, e.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start time %q (expected HH:MM): %w", e.StartTime, err)
	}
	et, err := time.Parse(constants.TimeFormat, e.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end time %q (expected HH:MM): %w", e.EndTime, err)
	}
	if !st.Before(et) {
		return fmt.Errorf("start time %s must be before end time %s", e.StartTime, e.EndTime)
	}

	seen := make(map[string]bool, len(e.Participants))
	for _, p := range e.Participants {
		if p.Name == "" {
			return fmt.Errorf("participant name is required")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate participant name: %s", p.Name)
		}
		seen[p.Name] = true
	}

	return nil
}

// Participant returns the participant with the given name, if present.
// Names are the identity key within an event.
func (e *Event) Participant(name string) (Participant, bool) {
	for _, p := range e.Participants {
		if p.Name == name {
			return p, true
		}
	}
	return Participant{}, false
}

// Join appends a new participant. The name must be unique within the event.
func (e *Event) Join(name, email string, availability Availability) error {
	if name == "" {
		return fmt.Errorf("participant name is required")
	}
	if _, ok := e.Participant(name); ok {
		return fmt.Errorf("participant %q has already joined", name)
	}
	if availability == nil {
		availability = Availability{}
	}
	e.Participants = append(e.Participants, Participant{
		Name:         name,
		Email:        email,
		Availability: availability,
	})
	return nil
}

// SetAvailability replaces a participant's availability wholesale. Edits are
// full replacements, not incremental diffs.
func (e *Event) SetAvailability(name string, availability Availability) error {
	if availability == nil {
		availability = Availability{}
	}
	for i := range e.Participants {
		if e.Participants[i].Name == name {
			e.Participants[i].Availability = availability
			return nil
		}
	}
	return fmt.Errorf("participant not found: %s", name)
}

// CanEditAvailability reports whether actor may replace the availability of
// the named participant: the creator may edit anyone, everyone else only
// themselves.
func (e *Event) CanEditAvailability(actor, name string) bool {
	return actor == e.Creator || actor == name
}

// ConfirmMeeting appends a confirmed meeting for the given slot. Confirming
// the same (date, time) again is a no-op that returns the existing meeting.
// The returned bool reports whether a new meeting was appended.
func (e *Event) ConfirmMeeting(date, timeOfDay, confirmedBy string, now time.Time) (Meeting, bool, error) {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return Meeting{}, false, fmt.Errorf("invalid meeting date %q (expected YYYY-MM-DD): %w", date, err)
	}
	if _, err := time.Parse(constants.TimeFormat, timeOfDay); err != nil {
		return Meeting{}, false, fmt.Errorf("invalid meeting time %q (expected HH:MM): %w", timeOfDay, err)
	}

	for _, m := range e.Meetings {
		if m.Date == date && m.Time == timeOfDay {
			return m, false, nil
		}
	}

	meeting := Meeting{
		Date:        date,
		Time:        timeOfDay,
		ConfirmedAt: now.UTC().Format(time.RFC3339),
		ConfirmedBy: confirmedBy,
	}
	e.Meetings = append(e.Meetings, meeting)
	return meeting, true, nil
}
