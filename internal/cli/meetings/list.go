package meetings

import (
	"fmt"

	"github.com/imfreehq/imfree/internal/cli"
	"github.com/imfreehq/imfree/internal/utils"
)

type ListCmd struct {
	ID string `arg:"" help:"Event ID."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	event, err := ctx.Store.GetEvent(c.ID)
	if err != nil {
		return err
	}

	if len(event.Meetings) == 0 {
		fmt.Printf("No confirmed meetings for %s\n", event.Title)
		return nil
	}

	fmt.Printf("Confirmed meetings for %s (%d):\n", event.Title, len(event.Meetings))
	for _, m := range event.Meetings {
		fmt.Printf("  %s (confirmed by %s at %s)\n",
			utils.FormatDateTime(m.Date, m.Time), m.ConfirmedBy, m.ConfirmedAt)
	}
	return nil
}
