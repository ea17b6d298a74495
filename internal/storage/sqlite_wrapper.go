package storage

import (
	"database/sql"

	"github.com/imfreehq/imfree/internal/models"
	"github.com/imfreehq/imfree/internal/storage/sqlite"
)

// SQLiteStore adapts sqlite.Store to the Provider interface.
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		store: sqlite.NewStore(path),
	}
}

// Lifecycle methods
func (s *SQLiteStore) Init() error  { return s.store.Init() }
func (s *SQLiteStore) Load() error  { return s.store.Load() }
func (s *SQLiteStore) Close() error { return s.store.Close() }

func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }
func (s *SQLiteStore) GetDB() *sql.DB        { return s.store.GetDB() }

// Event methods
func (s *SQLiteStore) SaveEvent(event models.Event) error       { return s.store.SaveEvent(event) }
func (s *SQLiteStore) GetEvent(id string) (models.Event, error) { return s.store.GetEvent(id) }
func (s *SQLiteStore) GetAllEvents() ([]models.Event, error)    { return s.store.GetAllEvents() }
func (s *SQLiteStore) DeleteEvent(id string) error              { return s.store.DeleteEvent(id) }

// User methods
func (s *SQLiteStore) SaveUser(user models.User) error              { return s.store.SaveUser(user) }
func (s *SQLiteStore) GetUser(username string) (models.User, error) { return s.store.GetUser(username) }
func (s *SQLiteStore) GetAllUsers() ([]models.User, error)          { return s.store.GetAllUsers() }

// Session methods
func (s *SQLiteStore) GetCurrentUser() (string, error)      { return s.store.GetCurrentUser() }
func (s *SQLiteStore) SetCurrentUser(username string) error { return s.store.SetCurrentUser(username) }
