package cli

import (
	"fmt"
	"strings"

	"github.com/imfreehq/imfree/internal/heatmap"
	"github.com/imfreehq/imfree/internal/models"
	"github.com/imfreehq/imfree/internal/notifier"
	"github.com/imfreehq/imfree/internal/storage"
	"github.com/imfreehq/imfree/internal/utils"
	"github.com/imfreehq/imfree/internal/validation"
)

type Context struct {
	Store    storage.Provider
	Notifier *notifier.Notifier
}

// CurrentUser returns the logged-in account, or an error telling the user to
// log in. Participant identity within events is the account's display name.
func (c *Context) CurrentUser() (models.User, error) {
	username, err := c.Store.GetCurrentUser()
	if err != nil {
		return models.User{}, err
	}
	if username == "" {
		return models.User{}, fmt.Errorf("not logged in, run 'imfree login <username>' first")
	}
	return c.Store.GetUser(username)
}

// ParseSlots turns slot-key arguments into an availability map. Each argument
// is a "YYYY-MM-DD_HH:MM" key; comma-separated lists are accepted too.
func ParseSlots(args []string) (models.Availability, error) {
	availability := models.Availability{}
	for _, arg := range args {
		for _, key := range strings.Split(arg, ",") {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			if !validation.ValidSlotKey(key) {
				return nil, fmt.Errorf("invalid slot %q (expected YYYY-MM-DD_HH:MM)", key)
			}
			availability[key] = true
		}
	}
	return availability, nil
}

// FormatMatch renders a ranked match line for terminal output.
func FormatMatch(m heatmap.Match, total int) string {
	return fmt.Sprintf("%s at %s (%d/%d available)",
		utils.FormatDateShort(m.Date), utils.FormatTime12(m.Time), m.Count, total)
}
