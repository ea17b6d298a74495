package meetings

import (
	"fmt"
	"time"

	"github.com/imfreehq/imfree/internal/cli"
	"github.com/imfreehq/imfree/internal/grid"
	"github.com/imfreehq/imfree/internal/heatmap"
	"github.com/imfreehq/imfree/internal/logger"
	"github.com/imfreehq/imfree/internal/utils"
)

type ConfirmCmd struct {
	ID   string `arg:"" help:"Event ID."`
	Date string `arg:"" help:"Meeting date (YYYY-MM-DD)."`
	Time string `arg:"" help:"Meeting start time (HH:MM)."`
}

func (c *ConfirmCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	event, err := ctx.Store.GetEvent(c.ID)
	if err != nil {
		return err
	}

	g, err := grid.Generate(event.StartDate, event.EndDate, event.StartTime, event.EndTime)
	if err != nil {
		return err
	}
	if !g.Contains(c.Date, c.Time) {
		return fmt.Errorf("%s %s is not a slot of this event", c.Date, c.Time)
	}

	meeting, added, err := event.ConfirmMeeting(c.Date, c.Time, user.Name, time.Now())
	if err != nil {
		return err
	}
	if !added {
		logger.Debug("duplicate confirmation ignored",
			"event", event.ID, "date", meeting.Date, "time", meeting.Time)
		fmt.Printf("Meeting at %s was already confirmed by %s\n",
			utils.FormatDateTime(meeting.Date, meeting.Time), meeting.ConfirmedBy)
		return nil
	}

	if err := ctx.Store.SaveEvent(event); err != nil {
		return err
	}

	fmt.Printf("Confirmed meeting: %s\n", utils.FormatDateTime(meeting.Date, meeting.Time))

	res := heatmap.Aggregate(g, event.Participants)
	count := res.Count(c.Date, c.Time)
	if res.IsFullMatch(c.Date, c.Time) {
		fmt.Printf("  All %d participants are available\n", res.TotalParticipants)
	} else {
		fmt.Printf("  Note: only %d of %d participants are available for this slot\n",
			count, res.TotalParticipants)
	}

	sent := ctx.Notifier.MeetingConfirmation(event, meeting)
	fmt.Printf("  Notified %d participants\n", sent)
	return nil
}
