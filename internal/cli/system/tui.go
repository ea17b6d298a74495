package system

import (
	"fmt"
	"os"

	"github.com/imfreehq/imfree/internal/cli"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/imfreehq/imfree/internal/tui"
)

type TuiCmd struct {
	ID string `arg:"" optional:"" help:"Event ID to open directly in the heat map view."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, c.ID), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
