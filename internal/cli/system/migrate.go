package system

import (
	"fmt"

	"github.com/imfreehq/imfree/internal/cli"
	"github.com/imfreehq/imfree/internal/migration"
	"github.com/imfreehq/imfree/internal/storage"
)

type MigrateCmd struct {
	To      string `arg:"" help:"Destination: storage path (.db or .json) or PostgreSQL connection string."`
	Verbose bool   `help:"Print each migrated record."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	dst, err := storage.NewProvider(c.To)
	if err != nil {
		return err
	}
	if !storage.IsPostgresConfig(c.To) && dst.GetConfigPath() == ctx.Store.GetConfigPath() {
		return fmt.Errorf("source and destination storage are the same")
	}

	// A fresh destination needs initializing first
	if err := dst.Load(); err != nil {
		if err := dst.Init(); err != nil {
			return fmt.Errorf("failed to initialize destination storage: %w", err)
		}
		if err := dst.Load(); err != nil {
			return fmt.Errorf("failed to load destination storage: %w", err)
		}
	}
	defer dst.Close()

	logFn := func(string) {}
	if c.Verbose {
		logFn = func(msg string) { fmt.Println("  " + msg) }
	}

	sum, err := migration.Run(ctx.Store, dst, logFn)
	if err != nil {
		return err
	}
	if err := migration.Verify(ctx.Store, dst); err != nil {
		return fmt.Errorf("migration verification failed: %w", err)
	}

	fmt.Printf("Migrated %d users and %d events (%d confirmed meetings) to %s\n",
		sum.Users, sum.Events, sum.Meetings, dst.GetConfigPath())
	fmt.Printf("Point imfree at it with: imfree --config %q <command>\n", c.To)
	return nil
}
