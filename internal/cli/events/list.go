package events

import (
	"fmt"

	"github.com/imfreehq/imfree/internal/cli"
)

type ListCmd struct {
	Mine bool `help:"Show only events you created or joined."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	events, err := ctx.Store.GetAllEvents()
	if err != nil {
		return fmt.Errorf("failed to get events: %w", err)
	}

	var mine string
	if c.Mine {
		user, err := ctx.CurrentUser()
		if err != nil {
			return err
		}
		mine = user.Name
	}

	shown := 0
	for _, event := range events {
		if c.Mine {
			_, joined := event.Participant(mine)
			if event.Creator != mine && !joined {
				continue
			}
		}
		if shown == 0 {
			fmt.Println("Events:")
		}
		shown++

		meetings := ""
		if len(event.Meetings) > 0 {
			meetings = fmt.Sprintf(", %d confirmed", len(event.Meetings))
		}
		fmt.Printf("  %s - %s\n", event.ID, event.Title)
		fmt.Printf("      %s to %s by %s (%d participants%s)\n",
			event.StartDate, event.EndDate, event.Creator, len(event.Participants), meetings)
	}

	if shown == 0 {
		fmt.Println("No events found")
	}
	return nil
}
