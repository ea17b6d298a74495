package events

import (
	"fmt"

	"github.com/imfreehq/imfree/internal/cli"
	"github.com/imfreehq/imfree/internal/grid"
)

type JoinCmd struct {
	ID    string   `arg:"" help:"Event ID to join."`
	Name  string   `help:"Participant name. Defaults to your display name."`
	Email string   `help:"Email address. Defaults to your account email."`
	Slots []string `help:"Initial availability as slot keys (YYYY-MM-DD_HH:MM)."`
}

func (c *JoinCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		name = user.Name
	}
	email := c.Email
	if email == "" {
		email = user.Email
	}

	event, err := ctx.Store.GetEvent(c.ID)
	if err != nil {
		return err
	}

	g, err := grid.Generate(event.StartDate, event.EndDate, event.StartTime, event.EndTime)
	if err != nil {
		return err
	}

	availability, err := cli.ParseSlots(c.Slots)
	if err != nil {
		return err
	}
	for key := range availability {
		if !keyInGrid(g, key) {
			return fmt.Errorf("slot %s is outside the event's date/time window", key)
		}
	}

	if err := event.Join(name, email, availability); err != nil {
		return err
	}
	if err := ctx.Store.SaveEvent(event); err != nil {
		return err
	}

	fmt.Printf("Joined %s as %s with %d slots selected\n",
		event.Title, name, availability.SelectedCount())
	return nil
}
