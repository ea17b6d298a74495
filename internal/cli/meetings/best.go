package meetings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/imfreehq/imfree/internal/cli"
	"github.com/imfreehq/imfree/internal/grid"
	"github.com/imfreehq/imfree/internal/heatmap"
	"github.com/imfreehq/imfree/internal/models"
)

type BestCmd struct {
	ID  string `arg:"" help:"Event ID."`
	All bool   `help:"List every partial match instead of the top 10."`
}

func (c *BestCmd) Run(ctx *cli.Context) error {
	event, err := ctx.Store.GetEvent(c.ID)
	if err != nil {
		return err
	}

	g, err := grid.Generate(event.StartDate, event.EndDate, event.StartTime, event.EndTime)
	if err != nil {
		return err
	}
	res := heatmap.Aggregate(g, event.Participants)

	if res.TotalParticipants == 0 {
		fmt.Println("No participants yet")
		return nil
	}

	if len(res.FullMatches) > 0 {
		fmt.Printf("Perfect matches - everyone is available (%d):\n", len(res.FullMatches))
		for _, m := range res.FullMatches {
			fmt.Printf("  %s\n", cli.FormatMatch(m, res.TotalParticipants))
		}
	} else {
		fmt.Println("No slot works for everyone yet.")
	}

	partials := res.PartialMatches
	if c.All {
		partials = allPartialMatches(g, res)
	}
	if len(partials) > 0 {
		header := "Top partial matches"
		if c.All {
			header = "All partial matches"
		}
		fmt.Printf("\n%s (%d):\n", header, len(partials))
		for _, m := range partials {
			names := res.AvailableNames(m.Date, m.Time)
			fmt.Printf("  %s: %s\n", cli.FormatMatch(m, res.TotalParticipants), strings.Join(names, ", "))
		}
	}

	return nil
}

// allPartialMatches rebuilds the partial-match ranking without the top-10
// cut, walking the grid in chronological order so ties keep that order.
func allPartialMatches(g grid.Grid, res heatmap.Result) []heatmap.Match {
	var partials []heatmap.Match
	for _, date := range g.Dates {
		for _, t := range g.Times {
			count := res.Counts[models.SlotKey(date, t)]
			if count > 0 && count < res.TotalParticipants {
				partials = append(partials, heatmap.Match{Date: date, Time: t, Count: count})
			}
		}
	}
	sort.SliceStable(partials, func(i, j int) bool {
		return partials[i].Count > partials[j].Count
	})
	return partials
}
