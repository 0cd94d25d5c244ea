// Package models defines the database entities for the solobooks service
package models

import (
	"fmt"
	"net/mail"

	"gorm.io/gorm"
)

// UserRole represents the role of a user in the system
type UserRole int

// User role constants
const (
	// UserRoleUser represents a standard user
	UserRoleUser UserRole = iota
	// UserRoleAdmin represents an administrator user
	UserRoleAdmin
)

// User represents an account that owns clients, projects, tasks and invoices
type User struct {
	gorm.Model
	Username string   `json:"username" gorm:"not null;unique"`
	Email    string   `json:"email" gorm:""`
	Role     UserRole `json:"role" gorm:"index"`
}

func (r UserRole) String() string {
	return []string{
		"user",
		"admin",
	}[r]
}

// ParseUserRole converts a string representation of a user role to UserRole type
func ParseUserRole(str string) (UserRole, error) {
	for i, role := range []string{"user", "admin"} {
		if role == str {
			return UserRole(i), nil
		}
	}
	return UserRoleUser, fmt.Errorf("invalid user role: %s", str)
}

// Validate ensures that the user data is valid
func (u *User) Validate() error {
	if u.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if u.Email != "" {
		if _, err := mail.ParseAddress(u.Email); err != nil {
			return fmt.Errorf("invalid email format: %w", err)
		}
	}
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new user
func (u *User) BeforeCreate(_ *gorm.DB) error {
	return u.Validate()
}
