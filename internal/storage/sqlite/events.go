package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/imfreehq/imfree/internal/models"
)

// SaveEvent upserts the event row and rewrites its participant and meeting
// rows wholesale. Availability maps are stored as JSON text; participant and
// meeting order is preserved through the pos column.
func (s *Store) SaveEvent(event models.Event) error {
	if event.ID == "" {
		return fmt.Errorf("event id is required")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO events (id, title, creator, cover_image, start_date, end_date, start_time, end_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			creator = excluded.creator,
			cover_image = excluded.cover_image,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			created_at = excluded.created_at`,
		event.ID, event.Title, event.Creator, event.CoverImage,
		event.StartDate, event.EndDate, event.StartTime, event.EndTime, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM participants WHERE event_id = ?", event.ID); err != nil {
		return fmt.Errorf("failed to clear participants: %w", err)
	}
	for i, p := range event.Participants {
		availability, err := json.Marshal(p.Availability)
		if err != nil {
			return fmt.Errorf("failed to marshal availability for %s: %w", p.Name, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO participants (event_id, pos, name, email, availability) VALUES (?, ?, ?, ?, ?)",
			event.ID, i, p.Name, p.Email, string(availability),
		); err != nil {
			return fmt.Errorf("failed to save participant %s: %w", p.Name, err)
		}
	}

	if _, err := tx.Exec("DELETE FROM meetings WHERE event_id = ?", event.ID); err != nil {
		return fmt.Errorf("failed to clear meetings: %w", err)
	}
	for i, m := range event.Meetings {
		if _, err := tx.Exec(
			"INSERT INTO meetings (event_id, pos, date, time, confirmed_at, confirmed_by) VALUES (?, ?, ?, ?, ?, ?)",
			event.ID, i, m.Date, m.Time, m.ConfirmedAt, m.ConfirmedBy,
		); err != nil {
			return fmt.Errorf("failed to save meeting %s %s: %w", m.Date, m.Time, err)
		}
	}

	return tx.Commit()
}

func (s *Store) GetEvent(id string) (models.Event, error) {
	row := s.db.QueryRow(`
		SELECT id, title, creator, cover_image, start_date, end_date, start_time, end_time, created_at
		FROM events WHERE id = ?`, id)

	var e models.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Creator, &e.CoverImage,
		&e.StartDate, &e.EndDate, &e.StartTime, &e.EndTime, &e.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Event{}, fmt.Errorf("event not found: %s", id)
		}
		return models.Event{}, err
	}

	if e.Participants, err = s.getParticipants(id); err != nil {
		return models.Event{}, err
	}
	if e.Meetings, err = s.getMeetings(id); err != nil {
		return models.Event{}, err
	}

	return e, nil
}

func (s *Store) GetAllEvents() ([]models.Event, error) {
	rows, err := s.db.Query(`
		SELECT id, title, creator, cover_image, start_date, end_date, start_time, end_time, created_at
		FROM events ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		err := rows.Scan(
			&e.ID, &e.Title, &e.Creator, &e.CoverImage,
			&e.StartDate, &e.EndDate, &e.StartTime, &e.EndTime, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range events {
		if events[i].Participants, err = s.getParticipants(events[i].ID); err != nil {
			return nil, err
		}
		if events[i].Meetings, err = s.getMeetings(events[i].ID); err != nil {
			return nil, err
		}
	}

	return events, nil
}

func (s *Store) DeleteEvent(id string) error {
	res, err := s.db.Exec("DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("event not found: %s", id)
	}
	return nil
}

func (s *Store) getParticipants(eventID string) ([]models.Participant, error) {
	rows, err := s.db.Query(
		"SELECT name, email, availability FROM participants WHERE event_id = ? ORDER BY pos", eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		var availability string
		if err := rows.Scan(&p.Name, &p.Email, &availability); err != nil {
			return nil, err
		}
		if availability != "" {
			if err := json.Unmarshal([]byte(availability), &p.Availability); err != nil {
				return nil, fmt.Errorf("failed to parse availability for %s: %w", p.Name, err)
			}
		}
		if p.Availability == nil {
			p.Availability = make(models.Availability)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (s *Store) getMeetings(eventID string) ([]models.Meeting, error) {
	rows, err := s.db.Query(
		"SELECT date, time, confirmed_at, confirmed_by FROM meetings WHERE event_id = ? ORDER BY pos", eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []models.Meeting
	for rows.Next() {
		var m models.Meeting
		if err := rows.Scan(&m.Date, &m.Time, &m.ConfirmedAt, &m.ConfirmedBy); err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}
