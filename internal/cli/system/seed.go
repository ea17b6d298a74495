package system

import (
	"time"

	"github.com/google/uuid"

	"github.com/imfreehq/imfree/internal/grid"
	"github.com/imfreehq/imfree/internal/models"
	"github.com/imfreehq/imfree/internal/storage"
)

var demoUsers = []models.User{
	{Username: "alice", Password: "demo123", Name: "Alice Johnson", Email: "alice@example.com"},
	{Username: "bob", Password: "demo123", Name: "Bob Smith", Email: "bob@example.com"},
	{Username: "carol", Password: "demo123", Name: "Carol Davis", Email: "carol@example.com"},
	{Username: "david", Password: "demo123", Name: "David Wilson", Email: "david@example.com"},
}

// slots marks every 30-minute slot of [startTime, endTime) on the given date.
func slots(availability models.Availability, date, startTime, endTime string) models.Availability {
	times, err := grid.TimeSlots(startTime, endTime)
	if err != nil {
		return availability
	}
	for _, t := range times {
		availability[models.SlotKey(date, t)] = true
	}
	return availability
}

func demoEvents(now time.Time) []models.Event {
	createdAt := now.UTC().Format(time.RFC3339)

	return []models.Event{
		{
			ID:        uuid.New().String(),
			Title:     "Team Planning Meeting",
			Creator:   "Alice Johnson",
			StartDate: "2025-01-06",
			EndDate:   "2025-01-08",
			StartTime: "09:00",
			EndTime:   "17:00",
			CreatedAt: createdAt,
			Participants: []models.Participant{
				{
					Name:  "Alice Johnson",
					Email: "alice@example.com",
					Availability: slots(slots(models.Availability{},
						"2025-01-06", "09:00", "12:00"),
						"2025-01-07", "14:00", "17:00"),
				},
				{
					Name:  "Bob Smith",
					Email: "bob@example.com",
					Availability: slots(slots(models.Availability{},
						"2025-01-06", "10:00", "12:00"),
						"2025-01-07", "14:00", "16:00"),
				},
				{
					Name:  "Carol Davis",
					Email: "carol@example.com",
					Availability: slots(models.Availability{},
						"2025-01-06", "09:00", "11:00"),
				},
			},
		},
		{
			ID:        uuid.New().String(),
			Title:     "Coffee Chat & Brainstorm",
			Creator:   "Bob Smith",
			StartDate: "2025-01-10",
			EndDate:   "2025-01-10",
			StartTime: "14:00",
			EndTime:   "18:00",
			CreatedAt: createdAt,
			Participants: []models.Participant{
				{
					Name:  "Bob Smith",
					Email: "bob@example.com",
					Availability: slots(models.Availability{},
						"2025-01-10", "14:00", "16:00"),
				},
				{
					Name:  "David Wilson",
					Email: "david@example.com",
					Availability: slots(models.Availability{},
						"2025-01-10", "15:00", "18:00"),
				},
			},
		},
		{
			ID:        uuid.New().String(),
			Title:     "Project Review Session",
			Creator:   "Carol Davis",
			StartDate: "2025-01-13",
			EndDate:   "2025-01-15",
			StartTime: "10:00",
			EndTime:   "16:00",
			CreatedAt: createdAt,
			Participants: []models.Participant{
				{
					Name:  "Carol Davis",
					Email: "carol@example.com",
					Availability: slots(models.Availability{},
						"2025-01-14", "10:00", "13:00"),
				},
			},
		},
	}
}

// Seed populates a freshly initialized store with the demo accounts and
// sample events. Returns the counts of users and events written.
func Seed(store storage.Provider) (int, int, error) {
	for _, u := range demoUsers {
		if err := store.SaveUser(u); err != nil {
			return 0, 0, err
		}
	}

	events := demoEvents(time.Now())
	for _, e := range events {
		if err := store.SaveEvent(e); err != nil {
			return 0, 0, err
		}
	}

	return len(demoUsers), len(events), nil
}
