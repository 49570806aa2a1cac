package dto

import (
	"time"
)

// UserCreate represents the data needed to create a new user. Password is
// already hashed.
type UserCreate struct {
	Username    string
	Password    string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber *string
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	PhoneNumber    *string   `json:"phoneNumber"`
	CreatedAt      time.Time `json:"createdAt"`
}
