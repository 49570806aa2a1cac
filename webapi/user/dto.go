package user

// NewUser represents the request body for creating a new user.
type NewUser struct {
	Username    string  `json:"username" validate:"required,max=50,min=3"`
	Email       string  `json:"email" validate:"required,email,max=50"`
	Password    string  `json:"password" validate:"required,min=6,max=72"`
	FirstName   string  `json:"firstName" validate:"required,max=100"`
	LastName    string  `json:"lastName" validate:"required,max=100"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,min=6,max=20"`
}
