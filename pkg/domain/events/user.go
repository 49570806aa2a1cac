package events

// UserRegistered is emitted after a user record is created.
type UserRegistered struct {
	Meta
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Type implements Event.
func (e UserRegistered) Type() string { return EventTypeUserRegistered.String() }

// NewUserRegistered builds a UserRegistered event with fresh metadata.
func NewUserRegistered(userID int64, username, email string, opts ...Option) *UserRegistered {
	return &UserRegistered{
		Meta:     buildMeta(opts),
		UserID:   userID,
		Username: username,
		Email:    email,
	}
}
