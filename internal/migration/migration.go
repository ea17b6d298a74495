// Package migration copies a complete imfree dataset between storage
// backends, so users can move from the JSON file to SQLite, or from a local
// database to PostgreSQL, without losing events or accounts.
package migration

import (
	"fmt"

	"github.com/imfreehq/imfree/internal/logger"
	"github.com/imfreehq/imfree/internal/storage"
)

// Summary reports what one migration run copied.
type Summary struct {
	Events   int
	Users    int
	Meetings int
}

// Run copies every user and event from src into dst. Both stores must already
// be loaded. Records are upserted, so re-running against a partially migrated
// target is safe; the session (current user) is deliberately not copied.
func Run(src, dst storage.Provider, logFn func(string)) (Summary, error) {
	if logFn == nil {
		logFn = func(string) {}
	}

	var sum Summary

	users, err := src.GetAllUsers()
	if err != nil {
		return sum, fmt.Errorf("failed to read users from source: %w", err)
	}
	for _, user := range users {
		if err := dst.SaveUser(user); err != nil {
			return sum, fmt.Errorf("failed to migrate user %s: %w", user.Username, err)
		}
		sum.Users++
	}
	logFn(fmt.Sprintf("migrated %d users", sum.Users))

	events, err := src.GetAllEvents()
	if err != nil {
		return sum, fmt.Errorf("failed to read events from source: %w", err)
	}
	for _, event := range events {
		if err := dst.SaveEvent(event); err != nil {
			return sum, fmt.Errorf("failed to migrate event %s (%s): %w", event.Title, event.ID, err)
		}
		sum.Events++
		sum.Meetings += len(event.Meetings)
		logFn(fmt.Sprintf("migrated event %q (%d participants, %d meetings)",
			event.Title, len(event.Participants), len(event.Meetings)))
	}

	logger.Info("migration complete",
		"users", sum.Users, "events", sum.Events, "meetings", sum.Meetings)
	return sum, nil
}

// Verify re-reads the destination and checks every source record arrived.
func Verify(src, dst storage.Provider) error {
	srcEvents, err := src.GetAllEvents()
	if err != nil {
		return fmt.Errorf("failed to re-read source events: %w", err)
	}
	for _, event := range srcEvents {
		got, err := dst.GetEvent(event.ID)
		if err != nil {
			return fmt.Errorf("event %s missing from destination: %w", event.ID, err)
		}
		if len(got.Participants) != len(event.Participants) {
			return fmt.Errorf("event %s: destination has %d participants, source has %d",
				event.ID, len(got.Participants), len(event.Participants))
		}
		if len(got.Meetings) != len(event.Meetings) {
			return fmt.Errorf("event %s: destination has %d meetings, source has %d",
				event.ID, len(got.Meetings), len(event.Meetings))
		}
	}

	srcUsers, err := src.GetAllUsers()
	if err != nil {
		return fmt.Errorf("failed to re-read source users: %w", err)
	}
	for _, user := range srcUsers {
		if _, err := dst.GetUser(user.Username); err != nil {
			return fmt.Errorf("user %s missing from destination: %w", user.Username, err)
		}
	}

	return nil
}
