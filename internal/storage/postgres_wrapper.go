package storage

import (
	"github.com/imfreehq/imfree/internal/models"
	"github.com/imfreehq/imfree/internal/storage/postgres"
)

// PostgresStore adapts postgres.Store to the Provider interface.
type PostgresStore struct {
	store *postgres.Store
}

// NewPostgresStore creates a new PostgreSQL store
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		store: postgres.New(connStr),
	}
}

// Lifecycle methods
func (s *PostgresStore) Init() error  { return s.store.Init() }
func (s *PostgresStore) Load() error  { return s.store.Load() }
func (s *PostgresStore) Close() error { return s.store.Close() }

func (s *PostgresStore) GetConfigPath() string { return s.store.GetConfigPath() }

// Event methods
func (s *PostgresStore) SaveEvent(event models.Event) error       { return s.store.SaveEvent(event) }
func (s *PostgresStore) GetEvent(id string) (models.Event, error) { return s.store.GetEvent(id) }
func (s *PostgresStore) GetAllEvents() ([]models.Event, error)    { return s.store.GetAllEvents() }
func (s *PostgresStore) DeleteEvent(id string) error              { return s.store.DeleteEvent(id) }

// User methods
func (s *PostgresStore) SaveUser(user models.User) error { return s.store.SaveUser(user) }
func (s *PostgresStore) GetUser(username string) (models.User, error) {
	return s.store.GetUser(username)
}
func (s *PostgresStore) GetAllUsers() ([]models.User, error) { return s.store.GetAllUsers() }

// Session methods
func (s *PostgresStore) GetCurrentUser() (string, error) { return s.store.GetCurrentUser() }
func (s *PostgresStore) SetCurrentUser(username string) error {
	return s.store.SetCurrentUser(username)
}
