package events

import (
	"fmt"
	"strings"

	"github.com/imfreehq/imfree/internal/cli"
	"github.com/imfreehq/imfree/internal/grid"
	"github.com/imfreehq/imfree/internal/heatmap"
	"github.com/imfreehq/imfree/internal/models"
	"github.com/imfreehq/imfree/internal/tui/components/heatgrid"
	"github.com/imfreehq/imfree/internal/utils"
)

type ShowCmd struct {
	ID string `arg:"" help:"Event ID."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	event, err := ctx.Store.GetEvent(c.ID)
	if err != nil {
		return err
	}

	g, err := grid.Generate(event.StartDate, event.EndDate, event.StartTime, event.EndTime)
	if err != nil {
		return err
	}
	res := heatmap.Aggregate(g, event.Participants)

	fmt.Printf("%s (ID: %s)\n", event.Title, event.ID)
	fmt.Printf("  Created by %s\n", event.Creator)
	if event.CoverImage != "" {
		fmt.Printf("  Cover: %s\n", event.CoverImage)
	}
	fmt.Printf("  %s to %s, %s - %s\n",
		utils.FormatDateLong(event.StartDate), utils.FormatDateLong(event.EndDate),
		utils.FormatTime12(event.StartTime), utils.FormatTime12(event.EndTime))

	fmt.Printf("\nParticipants (%d):\n", len(event.Participants))
	for _, p := range event.Participants {
		role := ""
		if p.Name == event.Creator {
			role = " (creator)"
		}
		fmt.Printf("  %s%s - %d slots selected\n", p.Name, role, p.Availability.SelectedCount())
	}

	confirmed := make(map[string]bool, len(event.Meetings))
	for _, m := range event.Meetings {
		confirmed[models.SlotKey(m.Date, m.Time)] = true
	}

	fmt.Println()
	fmt.Println(heatgrid.Render(g, res, heatgrid.Options{Confirmed: confirmed}))
	fmt.Println(heatgrid.Legend(res.TotalParticipants))

	if len(res.FullMatches) > 0 {
		fmt.Printf("\nPerfect matches (%d):\n", len(res.FullMatches))
		for _, m := range res.FullMatches {
			fmt.Printf("  %s\n", cli.FormatMatch(m, res.TotalParticipants))
		}
	} else if len(res.PartialMatches) > 0 {
		fmt.Printf("\nBest partial matches:\n")
		for _, m := range res.PartialMatches {
			names := res.AvailableNames(m.Date, m.Time)
			fmt.Printf("  %s: %s\n", cli.FormatMatch(m, res.TotalParticipants), strings.Join(names, ", "))
		}
	} else {
		fmt.Println("\nNo overlapping availability yet.")
	}

	if len(event.Meetings) > 0 {
		fmt.Printf("\nConfirmed meetings (%d):\n", len(event.Meetings))
		for _, m := range event.Meetings {
			fmt.Printf("  %s (confirmed by %s)\n", utils.FormatDateTime(m.Date, m.Time), m.ConfirmedBy)
		}
	}

	return nil
}
