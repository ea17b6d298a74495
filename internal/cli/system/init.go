package system

import (
	"fmt"
	"os"

	"github.com/imfreehq/imfree/internal/cli"
)

type InitCmd struct {
	Seed  bool `help:"Seed demo users and sample events after initialization."`
	Force bool `help:"Force reset by deleting existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	// If force flag is provided, delete the existing storage file
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if path == "postgresql" {
			return fmt.Errorf("--force only applies to file-backed storage; drop the PostgreSQL schema manually")
		}
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized imfree storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Seed {
		users, events, err := Seed(ctx.Store)
		if err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		fmt.Printf("Seeded %d demo users and %d sample events\n", users, events)
		fmt.Println("Try: imfree login alice  (password: demo123)")
	}

	return nil
}
