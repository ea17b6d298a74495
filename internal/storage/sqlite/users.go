package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/imfreehq/imfree/internal/models"
)

func (s *Store) SaveUser(user models.User) error {
	if user.Username == "" {
		return fmt.Errorf("username is required")
	}

	_, err := s.db.Exec(`
		INSERT INTO users (username, password, name, email)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (username) DO UPDATE SET
			password = excluded.password,
			name = excluded.name,
			email = excluded.email`,
		user.Username, user.Password, user.Name, user.Email,
	)
	return err
}

func (s *Store) GetUser(username string) (models.User, error) {
	row := s.db.QueryRow(
		"SELECT username, password, name, email FROM users WHERE username = ?", username)

	var u models.User
	err := row.Scan(&u.Username, &u.Password, &u.Name, &u.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user not found: %s", username)
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetAllUsers() ([]models.User, error) {
	rows, err := s.db.Query("SELECT username, password, name, email FROM users ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Username, &u.Password, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) GetCurrentUser() (string, error) {
	var username string
	err := s.db.QueryRow("SELECT value FROM app_state WHERE key = 'current_user'").Scan(&username)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return username, nil
}

func (s *Store) SetCurrentUser(username string) error {
	if username != "" {
		if _, err := s.GetUser(username); err != nil {
			return err
		}
	}

	_, err := s.db.Exec(`
		INSERT INTO app_state (key, value) VALUES ('current_user', ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`, username)
	return err
}
