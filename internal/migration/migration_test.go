package migration

import (
	"path/filepath"
	"testing"

	"github.com/imfreehq/imfree/internal/models"
	"github.com/imfreehq/imfree/internal/storage"
)

func newStore(t *testing.T, name string) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), name))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return store
}

func TestRunCopiesEverything(t *testing.T) {
	src := newStore(t, "src.json")
	dst := newStore(t, "dst.json")

	if err := src.SaveUser(models.User{Username: "alice", Password: "pw", Name: "Alice Johnson"}); err != nil {
		t.Fatalf("SaveUser() failed: %v", err)
	}
	event := models.Event{
		ID:        "evt-1",
		Title:     "Team Planning",
		Creator:   "Alice Johnson",
		StartDate: "2025-01-06",
		EndDate:   "2025-01-07",
		StartTime: "09:00",
		EndTime:   "12:00",
		CreatedAt: "2025-01-01T10:00:00Z",
		Participants: []models.Participant{
			{Name: "Alice Johnson", Availability: models.Availability{"2025-01-06_09:00": true}},
			{Name: "Bob Smith", Availability: models.Availability{}},
		},
		Meetings: []models.Meeting{
			{Date: "2025-01-06", Time: "09:00", ConfirmedAt: "2025-01-05T12:00:00Z", ConfirmedBy: "Alice Johnson"},
		},
	}
	if err := src.SaveEvent(event); err != nil {
		t.Fatalf("SaveEvent() failed: %v", err)
	}

	sum, err := Run(src, dst, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if sum.Users != 1 || sum.Events != 1 || sum.Meetings != 1 {
		t.Errorf("Summary = %+v, want 1/1/1", sum)
	}

	got, err := dst.GetEvent("evt-1")
	if err != nil {
		t.Fatalf("destination GetEvent() failed: %v", err)
	}
	if len(got.Participants) != 2 || len(got.Meetings) != 1 {
		t.Errorf("migrated event = %d participants, %d meetings", len(got.Participants), len(got.Meetings))
	}
	if !got.Participants[0].Availability["2025-01-06_09:00"] {
		t.Error("availability was not carried over")
	}
	if _, err := dst.GetUser("alice"); err != nil {
		t.Errorf("destination GetUser() failed: %v", err)
	}

	if err := Verify(src, dst); err != nil {
		t.Errorf("Verify() failed: %v", err)
	}
}

func TestRunIsRepeatable(t *testing.T) {
	src := newStore(t, "src.json")
	dst := newStore(t, "dst.json")

	if err := src.SaveUser(models.User{Username: "bob", Password: "pw", Name: "Bob Smith"}); err != nil {
		t.Fatalf("SaveUser() failed: %v", err)
	}

	if _, err := Run(src, dst, nil); err != nil {
		t.Fatalf("first Run() failed: %v", err)
	}
	if _, err := Run(src, dst, nil); err != nil {
		t.Fatalf("second Run() failed: %v", err)
	}

	users, err := dst.GetAllUsers()
	if err != nil {
		t.Fatalf("GetAllUsers() failed: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("re-running migration duplicated users: %d", len(users))
	}
}

func TestVerifyDetectsMissingData(t *testing.T) {
	src := newStore(t, "src.json")
	dst := newStore(t, "dst.json")

	if err := src.SaveUser(models.User{Username: "carol", Password: "pw", Name: "Carol Davis"}); err != nil {
		t.Fatalf("SaveUser() failed: %v", err)
	}

	if err := Verify(src, dst); err == nil {
		t.Error("Verify() should fail when the destination is missing records")
	}
}

func TestSessionNotMigrated(t *testing.T) {
	src := newStore(t, "src.json")
	dst := newStore(t, "dst.json")

	if err := src.SaveUser(models.User{Username: "alice", Password: "pw", Name: "Alice Johnson"}); err != nil {
		t.Fatalf("SaveUser() failed: %v", err)
	}
	if err := src.SetCurrentUser("alice"); err != nil {
		t.Fatalf("SetCurrentUser() failed: %v", err)
	}

	if _, err := Run(src, dst, nil); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	current, err := dst.GetCurrentUser()
	if err != nil {
		t.Fatalf("GetCurrentUser() failed: %v", err)
	}
	if current != "" {
		t.Errorf("destination current user = %q, want no session", current)
	}
}
