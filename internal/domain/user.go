package domain

import "time"

// Role determines complaint visibility and whether status mutation is allowed.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User is the domain model for registered accounts. Records are immutable after
// creation; admin accounts are provisioned out of band (cmd/seed).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
