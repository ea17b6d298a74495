package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/imfreehq/imfree/internal/models"
	"github.com/imfreehq/imfree/internal/validation"
)

// Store is the on-disk JSON document. One file holds everything.
type Store struct {
	Version     int                     `json:"version"`
	Events      map[string]models.Event `json:"events"`
	Users       map[string]models.User  `json:"users"`
	CurrentUser string                  `json:"current_user"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Events:  make(map[string]models.Event),
		Users:   make(map[string]models.User),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'imfree init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Events == nil {
		s.store.Events = make(map[string]models.Event)
	}
	if s.store.Users == nil {
		s.store.Users = make(map[string]models.User)
	}

	// Reject blobs that decode but describe impossible events, so corruption
	// surfaces here instead of as a wrong grid later.
	v := validation.New()
	for id, event := range s.store.Events {
		if result := v.ValidateEvent(event); !result.Valid() {
			return fmt.Errorf("failed to parse storage: event %s: %s", id, result.Conflicts[0].Message)
		}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) SaveEvent(event models.Event) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if event.ID == "" {
		return fmt.Errorf("event id is required")
	}

	s.store.Events[event.ID] = event
	return s.save()
}

func (s *JSONStore) GetEvent(id string) (models.Event, error) {
	if s.store == nil {
		return models.Event{}, fmt.Errorf("storage not loaded")
	}

	event, ok := s.store.Events[id]
	if !ok {
		return models.Event{}, fmt.Errorf("event not found: %s", id)
	}

	return event, nil
}

func (s *JSONStore) GetAllEvents() ([]models.Event, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	events := make([]models.Event, 0, len(s.store.Events))
	for _, event := range s.store.Events {
		events = append(events, event)
	}

	// Map order is random; newest first is what listings want.
	sort.Slice(events, func(i, j int) bool {
		if events[i].CreatedAt != events[j].CreatedAt {
			return events[i].CreatedAt > events[j].CreatedAt
		}
		return events[i].ID < events[j].ID
	})

	return events, nil
}

func (s *JSONStore) DeleteEvent(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Events[id]; !ok {
		return fmt.Errorf("event not found: %s", id)
	}

	delete(s.store.Events, id)
	return s.save()
}

func (s *JSONStore) SaveUser(user models.User) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if user.Username == "" {
		return fmt.Errorf("username is required")
	}

	s.store.Users[user.Username] = user
	return s.save()
}

func (s *JSONStore) GetUser(username string) (models.User, error) {
	if s.store == nil {
		return models.User{}, fmt.Errorf("storage not loaded")
	}

	user, ok := s.store.Users[username]
	if !ok {
		return models.User{}, fmt.Errorf("user not found: %s", username)
	}

	return user, nil
}

func (s *JSONStore) GetAllUsers() ([]models.User, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	users := make([]models.User, 0, len(s.store.Users))
	for _, user := range s.store.Users {
		users = append(users, user)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})

	return users, nil
}

func (s *JSONStore) GetCurrentUser() (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("storage not loaded")
	}
	return s.store.CurrentUser, nil
}

func (s *JSONStore) SetCurrentUser(username string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if username != "" {
		if _, ok := s.store.Users[username]; !ok {
			return fmt.Errorf("user not found: %s", username)
		}
	}

	s.store.CurrentUser = username
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
