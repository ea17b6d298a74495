package notifier

import (
	"testing"

	"github.com/imfreehq/imfree/internal/models"
)

func TestMeetingConfirmationCountsOnlyEmailed(t *testing.T) {
	event := models.Event{
		ID:    "evt-1",
		Title: "Team Planning",
		Participants: []models.Participant{
			{Name: "alice", Email: "alice@example.com"},
			{Name: "bob"},
			{Name: "carol", Email: "carol@example.com"},
		},
	}
	meeting := models.Meeting{Date: "2025-01-06", Time: "09:00", ConfirmedBy: "alice"}

	sent := New().MeetingConfirmation(event, meeting)
	if sent != 2 {
		t.Errorf("MeetingConfirmation() = %d, want 2 (bob has no email)", sent)
	}
}

func TestMeetingConfirmationNoParticipants(t *testing.T) {
	event := models.Event{ID: "evt-2", Title: "Empty"}
	meeting := models.Meeting{Date: "2025-01-06", Time: "09:00"}

	if sent := New().MeetingConfirmation(event, meeting); sent != 0 {
		t.Errorf("MeetingConfirmation() = %d, want 0", sent)
	}
}
