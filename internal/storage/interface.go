package storage

import "github.com/imfreehq/imfree/internal/models"

// Provider is the persistence contract every backend implements. All state is
// local: events with their embedded participants and meetings, the user
// accounts, and the currently logged-in username.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Events
	SaveEvent(models.Event) error
	GetEvent(id string) (models.Event, error)
	GetAllEvents() ([]models.Event, error)
	DeleteEvent(id string) error

	// Users
	SaveUser(models.User) error
	GetUser(username string) (models.User, error)
	GetAllUsers() ([]models.User, error)

	// Session
	GetCurrentUser() (string, error)
	SetCurrentUser(username string) error

	// Utils
	GetConfigPath() string
}
