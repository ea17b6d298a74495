package users

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/imfreehq/imfree/internal/cli"
	"github.com/imfreehq/imfree/internal/models"
)

type SignupCmd struct {
	Username string `arg:"" help:"Login name for the new account."`
	Name     string `help:"Display name, used as your participant identity in events." required:""`
	Email    string `help:"Email address for meeting confirmations."`
	Password string `help:"Password for the account. Prompted for if omitted."`
}

func (c *SignupCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.GetUser(c.Username); err == nil {
		return fmt.Errorf("username %q is already taken", c.Username)
	}

	password := c.Password
	if password == "" {
		if err := promptPassword(&password); err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	user := models.User{
		Username: c.Username,
		Password: password,
		Name:     c.Name,
		Email:    c.Email,
	}
	if err := ctx.Store.SaveUser(user); err != nil {
		return err
	}
	if err := ctx.Store.SetCurrentUser(c.Username); err != nil {
		return err
	}

	fmt.Printf("Created account %s (%s) and logged in\n", c.Username, c.Name)
	return nil
}

type LoginCmd struct {
	Username string `arg:"" help:"Login name."`
	Password string `help:"Password. Prompted for if omitted."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	user, err := ctx.Store.GetUser(c.Username)
	if err != nil {
		return fmt.Errorf("invalid username or password")
	}

	password := c.Password
	if password == "" {
		if err := promptPassword(&password); err != nil {
			return err
		}
	}
	if password != user.Password {
		return fmt.Errorf("invalid username or password")
	}

	if err := ctx.Store.SetCurrentUser(c.Username); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Name)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	username, err := ctx.Store.GetCurrentUser()
	if err != nil {
		return err
	}
	if username == "" {
		fmt.Println("Not logged in")
		return nil
	}

	if err := ctx.Store.SetCurrentUser(""); err != nil {
		return err
	}
	fmt.Printf("Logged out %s\n", username)
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", user.Username, user.Name)
	if user.Email != "" {
		fmt.Printf("  email: %s\n", user.Email)
	}
	return nil
}

func promptPassword(password *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password),
		),
	)
	return form.Run()
}
