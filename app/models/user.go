package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns the name used on documents, falling back to the
// email address when no full name was provided.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}
