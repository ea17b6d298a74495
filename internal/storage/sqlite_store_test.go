package storage

import (
	"path/filepath"
	"testing"

	"github.com/imfreehq/imfree/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "imfree.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreSaveAndGetEvent(t *testing.T) {
	store := newTestSQLiteStore(t)

	event := sampleEvent()
	if err := store.SaveEvent(event); err != nil {
		t.Fatalf("SaveEvent() failed: %v", err)
	}

	got, err := store.GetEvent(event.ID)
	if err != nil {
		t.Fatalf("GetEvent() failed: %v", err)
	}
	if got.Title != event.Title || got.Creator != event.Creator {
		t.Errorf("GetEvent() = %+v, want title %q creator %q", got, event.Title, event.Creator)
	}
	if len(got.Participants) != 1 {
		t.Fatalf("GetEvent() participants = %d, want 1", len(got.Participants))
	}
	if !got.Participants[0].Availability["2025-01-06_09:30"] {
		t.Error("availability for 2025-01-06_09:30 not preserved")
	}
}

func TestSQLiteStoreSaveEventReplacesParticipants(t *testing.T) {
	store := newTestSQLiteStore(t)

	event := sampleEvent()
	if err := store.SaveEvent(event); err != nil {
		t.Fatalf("SaveEvent() failed: %v", err)
	}

	// Saving again with a different participant set must not leave stale rows
	event.Participants = []models.Participant{
		{Name: "bob", Email: "bob@example.com", Availability: models.Availability{"2025-01-07_10:00": true}},
	}
	if err := store.SaveEvent(event); err != nil {
		t.Fatalf("second SaveEvent() failed: %v", err)
	}

	got, err := store.GetEvent(event.ID)
	if err != nil {
		t.Fatalf("GetEvent() failed: %v", err)
	}
	if len(got.Participants) != 1 || got.Participants[0].Name != "bob" {
		t.Errorf("participants after replace = %+v, want only bob", got.Participants)
	}
}

func TestSQLiteStoreParticipantOrder(t *testing.T) {
	store := newTestSQLiteStore(t)

	event := sampleEvent()
	event.Participants = []models.Participant{
		{Name: "carol", Availability: models.Availability{}},
		{Name: "alice", Availability: models.Availability{}},
		{Name: "bob", Availability: models.Availability{}},
	}
	if err := store.SaveEvent(event); err != nil {
		t.Fatalf("SaveEvent() failed: %v", err)
	}

	got, err := store.GetEvent(event.ID)
	if err != nil {
		t.Fatalf("GetEvent() failed: %v", err)
	}
	want := []string{"carol", "alice", "bob"}
	for i, name := range want {
		if got.Participants[i].Name != name {
			t.Errorf("participant[%d] = %s, want %s (join order must be preserved)", i, got.Participants[i].Name, name)
		}
	}
}

func TestSQLiteStoreMeetings(t *testing.T) {
	store := newTestSQLiteStore(t)

	event := sampleEvent()
	event.Meetings = []models.Meeting{
		{Date: "2025-01-06", Time: "09:00", ConfirmedAt: "2025-01-02T00:00:00Z", ConfirmedBy: "alice"},
		{Date: "2025-01-07", Time: "14:30", ConfirmedAt: "2025-01-03T00:00:00Z", ConfirmedBy: "bob"},
	}
	if err := store.SaveEvent(event); err != nil {
		t.Fatalf("SaveEvent() failed: %v", err)
	}

	got, err := store.GetEvent(event.ID)
	if err != nil {
		t.Fatalf("GetEvent() failed: %v", err)
	}
	if len(got.Meetings) != 2 {
		t.Fatalf("GetEvent() meetings = %d, want 2", len(got.Meetings))
	}
	if got.Meetings[1].Time != "14:30" || got.Meetings[1].ConfirmedBy != "bob" {
		t.Errorf("meetings[1] = %+v, want 14:30 confirmed by bob", got.Meetings[1])
	}
}

func TestSQLiteStoreDeleteEvent(t *testing.T) {
	store := newTestSQLiteStore(t)

	event := sampleEvent()
	if err := store.SaveEvent(event); err != nil {
		t.Fatalf("SaveEvent() failed: %v", err)
	}
	if err := store.DeleteEvent(event.ID); err != nil {
		t.Fatalf("DeleteEvent() failed: %v", err)
	}
	if _, err := store.GetEvent(event.ID); err == nil {
		t.Error("GetEvent() should fail after DeleteEvent()")
	}
	if err := store.DeleteEvent(event.ID); err == nil {
		t.Error("DeleteEvent() should fail for an already-deleted event")
	}
}

func TestSQLiteStoreUsersAndSession(t *testing.T) {
	store := newTestSQLiteStore(t)

	users := []models.User{
		{Username: "bob", Password: "demo123", Name: "Bob Smith"},
		{Username: "alice", Password: "demo123", Name: "Alice Johnson"},
	}
	for _, u := range users {
		if err := store.SaveUser(u); err != nil {
			t.Fatalf("SaveUser(%s) failed: %v", u.Username, err)
		}
	}

	all, err := store.GetAllUsers()
	if err != nil {
		t.Fatalf("GetAllUsers() failed: %v", err)
	}
	if len(all) != 2 || all[0].Username != "alice" {
		t.Errorf("GetAllUsers() = %+v, want alice first", all)
	}

	current, err := store.GetCurrentUser()
	if err != nil {
		t.Fatalf("GetCurrentUser() failed: %v", err)
	}
	if current != "" {
		t.Errorf("GetCurrentUser() on fresh store = %q, want empty", current)
	}

	if err := store.SetCurrentUser("alice"); err != nil {
		t.Fatalf("SetCurrentUser() failed: %v", err)
	}
	current, err = store.GetCurrentUser()
	if err != nil {
		t.Fatalf("GetCurrentUser() failed: %v", err)
	}
	if current != "alice" {
		t.Errorf("GetCurrentUser() = %q, want alice", current)
	}
}

func TestSQLiteStoreLoadExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imfree.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	event := sampleEvent()
	if err := store.SaveEvent(event); err != nil {
		t.Fatalf("SaveEvent() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	reloaded := NewSQLiteStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer reloaded.Close()

	if _, err := reloaded.GetEvent(event.ID); err != nil {
		t.Fatalf("GetEvent() after reload failed: %v", err)
	}
}
