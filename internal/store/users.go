package store

import (
	"database/sql"
	"fmt"
)

// FindUser returns the user whose email and password both match exactly,
// or nil when none does.
func (s *Store) FindUser(email, password string) (*User, error) {
	u := &User{}
	err := s.db.QueryRow(
		`SELECT id, name, email, password, role FROM users WHERE email = ? AND password = ?`,
		email, password,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}
