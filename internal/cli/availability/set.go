package availability

import (
	"fmt"

	"github.com/imfreehq/imfree/internal/cli"
	"github.com/imfreehq/imfree/internal/grid"
	"github.com/imfreehq/imfree/internal/models"
)

type SetCmd struct {
	ID    string   `arg:"" help:"Event ID."`
	Name  string   `help:"Participant whose availability to replace. Defaults to yourself; only the event creator may edit others."`
	Slots []string `help:"Slot keys to mark available (YYYY-MM-DD_HH:MM). Replaces the previous selection."`
	Clear bool     `help:"Clear the participant's availability instead of setting slots."`
}

func (c *SetCmd) Validate() error {
	if !c.Clear && len(c.Slots) == 0 {
		return fmt.Errorf("provide --slots or --clear")
	}
	if c.Clear && len(c.Slots) > 0 {
		return fmt.Errorf("--clear and --slots are mutually exclusive")
	}
	return nil
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		name = user.Name
	}

	event, err := ctx.Store.GetEvent(c.ID)
	if err != nil {
		return err
	}

	if !event.CanEditAvailability(user.Name, name) {
		return fmt.Errorf("only the event creator may edit another participant's availability")
	}
	if _, ok := event.Participant(name); !ok {
		return fmt.Errorf("%s has not joined this event", name)
	}

	availability := models.Availability{}
	if !c.Clear {
		g, err := grid.Generate(event.StartDate, event.EndDate, event.StartTime, event.EndTime)
		if err != nil {
			return err
		}
		availability, err = cli.ParseSlots(c.Slots)
		if err != nil {
			return err
		}
		for key := range availability {
			if !g.Contains(splitKey(key)) {
				return fmt.Errorf("slot %s is outside the event's date/time window", key)
			}
		}
	}

	if err := event.SetAvailability(name, availability); err != nil {
		return err
	}
	if err := ctx.Store.SaveEvent(event); err != nil {
		return err
	}

	if c.Clear {
		fmt.Printf("Cleared availability for %s\n", name)
	} else {
		fmt.Printf("Set %d slots for %s\n", availability.SelectedCount(), name)
	}
	return nil
}

func splitKey(key string) (date, timeOfDay string) {
	// Keys are validated before this point, the separator is always present.
	for i := 0; i < len(key); i++ {
		if key[i] == '_' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}
