// Package notifier announces confirmed meetings to participants. There is no
// mail server in the picture: delivery is a structured log line per recipient,
// which keeps confirmation flows observable without any network I/O.
package notifier

import (
	"fmt"

	"github.com/imfreehq/imfree/internal/logger"
	"github.com/imfreehq/imfree/internal/models"
	"github.com/imfreehq/imfree/internal/utils"
)

type Notifier struct{}

func New() *Notifier {
	return &Notifier{}
}

// MeetingConfirmation notifies every participant with an email address that a
// meeting was confirmed. Participants without an email are counted but not
// notified. Returns the number of notifications "sent".
func (n *Notifier) MeetingConfirmation(event models.Event, meeting models.Meeting) int {
	subject := fmt.Sprintf("Meeting confirmed: %s", event.Title)
	when := utils.FormatDateTime(meeting.Date, meeting.Time)

	sent := 0
	for _, p := range event.Participants {
		if p.Email == "" {
			logger.Debug("Skipping participant without email", "event", event.ID, "participant", p.Name)
			continue
		}
		logger.Info("Meeting confirmation email",
			"to", p.Email,
			"subject", subject,
			"event", event.ID,
			"when", when,
			"confirmedBy", meeting.ConfirmedBy,
		)
		sent++
	}

	return sent
}
