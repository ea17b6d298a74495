package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/imfreehq/imfree/internal/cli"
	"github.com/imfreehq/imfree/internal/cli/availability"
	"github.com/imfreehq/imfree/internal/cli/events"
	"github.com/imfreehq/imfree/internal/cli/meetings"
	"github.com/imfreehq/imfree/internal/cli/system"
	"github.com/imfreehq/imfree/internal/cli/users"
	"github.com/imfreehq/imfree/internal/constants"
	apperrors "github.com/imfreehq/imfree/internal/errors"
	"github.com/imfreehq/imfree/internal/keyring"
	"github.com/imfreehq/imfree/internal/logger"
	"github.com/imfreehq/imfree/internal/notifier"
	"github.com/imfreehq/imfree/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (.db for SQLite, .json for JSON) or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use the OS keyring, environment variables or .pgpass instead." type:"string" default:"~/.config/imfree/imfree.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   system.InitCmd `cmd:"" help:"Initialize imfree storage."`
	Signup users.SignupCmd `cmd:"" help:"Create an account and log in."`
	Login  users.LoginCmd  `cmd:"" help:"Log in to an existing account."`
	Logout users.LogoutCmd `cmd:"" help:"Log out of the current session."`
	Whoami users.WhoamiCmd `cmd:"" help:"Show the logged-in account."`
	Event  struct {
		Create events.CreateCmd `cmd:"" help:"Create a scheduling event."`
		List   events.ListCmd   `cmd:"" help:"List events."`
		Show   events.ShowCmd   `cmd:"" help:"Show an event with its availability heat map."`
		Join   events.JoinCmd   `cmd:"" help:"Join an event as a participant."`
	} `cmd:"" help:"Manage scheduling events."`
	Availability struct {
		Set availability.SetCmd `cmd:"" help:"Replace a participant's availability."`
	} `cmd:"" help:"Manage availability."`
	Best     meetings.BestCmd    `cmd:"" help:"Show the best meeting slots for an event."`
	Confirm  meetings.ConfirmCmd `cmd:"" help:"Confirm a meeting for a slot."`
	Meetings meetings.ListCmd    `cmd:"" help:"List confirmed meetings for an event."`
	Migrate  system.MigrateCmd   `cmd:"" help:"Copy all data to another storage backend."`
	Keyring  struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
	Tui system.TuiCmd `cmd:"" help:"Launch the interactive TUI." default:"1"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("imfree"),
		kong.Description("Find a time when everyone's free - local-first meeting scheduler"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := expandHome(CLI.Config)

	// The default config can be overridden by a connection string stored in
	// the OS keyring, so PostgreSQL users never type it per invocation.
	if config == expandHome(constants.DefaultConfigPath) {
		if connStr, err := keyring.GetConnectionString(); err == nil {
			config = connStr
		}
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir(config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Select the storage backend from the config format
	store, err := storage.NewProvider(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: PostgreSQL connection strings with embedded credentials are NOT allowed.\n")
		fmt.Fprintf(os.Stderr, "       Use one of these secure alternatives:\n")
		fmt.Fprintf(os.Stderr, "       1. OS keyring:    imfree keyring set \"postgresql://user@host:5432/imfree\"\n")
		fmt.Fprintf(os.Stderr, "       2. Environment:   export PGPASSWORD=...\n")
		fmt.Fprintf(os.Stderr, "       3. .pgpass file:  Use a connection string without a password\n")
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Store:    store,
		Notifier: notifier.New(),
	}

	// Load the store before running the command (init handles its own setup,
	// keyring commands never touch storage)
	if sel := ctx.Selected(); sel != nil {
		name := sel.Name
		if name != "init" && !strings.HasPrefix(ctx.Command(), "keyring") {
			if err := store.Load(); err != nil {
				apperrors.Fatal(err)
			}
			defer store.Close()
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// configDir returns the directory logs live in. Connection strings have no
// directory, so those fall back to the default config location.
func configDir(config string) string {
	if storage.IsPostgresConfig(config) {
		return filepath.Dir(expandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(config)
}
