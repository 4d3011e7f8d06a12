package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mehraj28/Payroll-Mangement/app/models"

	"github.com/google/uuid"
)

// normalizeEmail implements the case-insensitive email policy: addresses
// are lower-cased once at the store boundary, on write and on lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser persists a new user. The password must already be hashed by
// the caller. Role defaults to employee when empty.
func (s *Store) CreateUser(email, passwordHash, fullName string, role models.Role) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if role == "" {
		role = models.RoleEmployee
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	var exists int
	err := s.db.QueryRow(`SELECT 1 FROM users WHERE email = $1`, email).Scan(&exists)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		FullName:  fullName,
		Password:  passwordHash,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.Exec(
		`INSERT INTO users (id, email, full_name, hashed_password, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.FullName, user.Password, user.Role, user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail looks a user up by exact (normalized) email match.
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	return s.scanUser(s.db.QueryRow(
		`SELECT id, email, full_name, hashed_password, role, created_at
		 FROM users WHERE email = $1`, normalizeEmail(email)))
}

// GetUserByID returns the user with the given id.
func (s *Store) GetUserByID(id string) (*models.User, error) {
	return s.scanUser(s.db.QueryRow(
		`SELECT id, email, full_name, hashed_password, role, created_at
		 FROM users WHERE id = $1`, id))
}

// ListUsers returns all users, oldest first.
func (s *Store) ListUsers() ([]*models.User, error) {
	rows, err := s.db.Query(
		`SELECT id, email, full_name, hashed_password, role, created_at
		 FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.Password, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (s *Store) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.Password, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
