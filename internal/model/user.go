package model

import (
	"time"

	"github.com/google/uuid"
)

// Role enumerates the account roles.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User represents an account. PasswordHash and PasswordChangedAt are never
// serialized into API responses.
type User struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	Role              Role       `json:"role"`
	PasswordHash      string     `json:"-"`
	StudentNumber     *string    `json:"student_number,omitempty"`
	GPA               *float64   `json:"gpa,omitempty"`
	Major             *string    `json:"major,omitempty"`
	Level             *int       `json:"level,omitempty"`
	Photo             *string    `json:"photo,omitempty"`
	PasswordChangedAt *time.Time `json:"-"`
	DateJoined        time.Time  `json:"date_joined"`
}

// UserSummary is the trimmed author/instructor representation embedded in
// other resources.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Summary returns the embeddable representation of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// SignupRequest is the payload for account registration.
type SignupRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
	Name            string `json:"name" binding:"required,min=3,max=50"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is the admin payload for updating an account.
type UpdateUserRequest struct {
	Email         string   `json:"email" binding:"omitempty,email"`
	Name          string   `json:"name" binding:"omitempty,min=3,max=50"`
	Role          string   `json:"role" binding:"omitempty,oneof=student instructor admin"`
	StudentNumber *string  `json:"student_number" binding:"omitempty,min=3,max=50"`
	GPA           *float64 `json:"gpa" binding:"omitempty,min=0,max=4"`
	Major         *string  `json:"major" binding:"omitempty,min=3,max=50"`
	Level         *int     `json:"level" binding:"omitempty,min=0,max=7"`
	Photo         *string  `json:"photo" binding:"omitempty"`
}
