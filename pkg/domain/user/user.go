package user

import (
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/globalremit/pkg/utils"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// User represents a registered sender.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"-"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewUser creates a new User with a hashed password. The ID is assigned by
// the repository on insert.
func NewUser(username, password, firstName, lastName, email string, phone *string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errors.New("username cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, errors.New("email cannot be empty")
	}
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if phone != nil && strings.TrimSpace(*phone) == "" {
		phone = nil
	}
	return &User{
		Username:    username,
		Password:    hashedPassword,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		PhoneNumber: phone,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
