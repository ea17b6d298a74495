package events

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/imfreehq/imfree/internal/cli"
	"github.com/imfreehq/imfree/internal/constants"
	"github.com/imfreehq/imfree/internal/grid"
	"github.com/imfreehq/imfree/internal/models"
	"github.com/imfreehq/imfree/internal/utils"
)

type CreateCmd struct {
	Title       string   `arg:"" optional:"" help:"Event title."`
	StartDate   string   `help:"First candidate date (YYYY-MM-DD)."`
	EndDate     string   `help:"Last candidate date (YYYY-MM-DD), inclusive."`
	StartTime   string   `help:"Daily window start (HH:MM)." default:"09:00"`
	EndTime     string   `help:"Daily window end (HH:MM), exclusive." default:"17:00"`
	Cover       string   `help:"Cover image URL or path."`
	Slots       []string `help:"Your own availability as slot keys (YYYY-MM-DD_HH:MM)."`
	Interactive bool     `short:"i" help:"Fill in the event details through a form."`
}

func (c *CreateCmd) Validate() error {
	if c.Interactive {
		return nil
	}
	if c.Title == "" {
		return fmt.Errorf("title is required (or use --interactive)")
	}
	if c.StartDate == "" || c.EndDate == "" {
		return fmt.Errorf("--start-date and --end-date are required (or use --interactive)")
	}
	return nil
}

func (c *CreateCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	if c.Interactive {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	event := models.Event{
		ID:         uuid.New().String(),
		Title:      c.Title,
		Creator:    user.Name,
		CoverImage: c.Cover,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
		StartTime:  c.StartTime,
		EndTime:    c.EndTime,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := event.Validate(); err != nil {
		return fmt.Errorf("invalid event: %w", err)
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

	// The creator is the first participant.
	if err := event.Join(user.Name, user.Email, availability); err != nil {
		return err
	}

	if err := ctx.Store.SaveEvent(event); err != nil {
		return err
	}

	fmt.Printf("Created event: %s (ID: %s)\n", event.Title, event.ID)
	fmt.Printf("  %s to %s, %s - %s (%d dates x %d slots)\n",
		event.StartDate, event.EndDate,
		utils.FormatTime12(event.StartTime), utils.FormatTime12(event.EndTime),
		len(g.Dates), len(g.Times))
	return nil
}

func (c *CreateCmd) promptForm() error {
	if c.StartTime == "" {
		c.StartTime = constants.DefaultStartTime
	}
	if c.EndTime == "" {
		c.EndTime = constants.DefaultEndTime
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&c.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Value(&c.StartDate).
				Validate(validateDate),
			huh.NewInput().
				Title("End date (YYYY-MM-DD)").
				Value(&c.EndDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Daily window start (HH:MM)").
				Value(&c.StartTime).
				Validate(validateTime),
			huh.NewInput().
				Title("Daily window end (HH:MM)").
				Value(&c.EndTime).
				Validate(validateTime),
			huh.NewInput().
				Title("Cover image (optional)").
				Value(&c.Cover),
		),
	)
	return form.Run()
}

func validateDate(s string) error {
	if !utils.ValidateDateFormat(s) {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateTime(s string) error {
	if !utils.ValidateTimeFormat(s) {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

func keyInGrid(g grid.Grid, key string) bool {
	for _, date := range g.Dates {
		for _, t := range g.Times {
			if models.SlotKey(date, t) == key {
				return true
			}
		}
	}
	return false
}
