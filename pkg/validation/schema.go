package validation

import "github.com/shopspring/decimal"

// DetailsInput is the data entered on the Details step.
type DetailsInput struct {
	FromCountry   string          `json:"fromCountry" validate:"required,country"`
	ToCountry     string          `json:"toCountry" validate:"required,country"`
	SendAmount    decimal.Decimal `json:"sendAmount" validate:"gt=0"`
	FirstName     string          `json:"firstName" validate:"required"`
	LastName      string          `json:"lastName" validate:"required"`
	Email         string          `json:"email" validate:"required,email"`
	Phone         string          `json:"phone" validate:"required,min=6"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,paymentmethod"`
}

// PaymentInput is the card data entered on the Payment step. It is
// validated and discarded, never stored.
type PaymentInput struct {
	CardNumber string `json:"cardNumber" validate:"required,cardnumber"`
	ExpiryDate string `json:"expiryDate" validate:"required,expiry"`
	CVV        string `json:"cvv" validate:"required,cvv"`
	NameOnCard string `json:"nameOnCard" validate:"required,min=3"`
}

// ReceiverInput is the account a recipient registers to receive transfers.
type ReceiverInput struct {
	ReceivingCountry string `json:"receivingCountry" validate:"required,country"`
	AccountNumber    string `json:"accountNumber" validate:"required,min=8"`
	AccountName      string `json:"accountName" validate:"required,min=3"`
	PhoneNumber      string `json:"phoneNumber" validate:"required,min=6"`
	Email            string `json:"email" validate:"required,email"`
}

// ValidateDetails checks the Details step schema.
func ValidateDetails(in DetailsInput) error {
	return Validate(in)
}

// ValidatePayment checks the Payment step schema.
func ValidatePayment(in PaymentInput) error {
	return Validate(in)
}

// ValidateReceiver checks a receiving account.
func ValidateReceiver(in ReceiverInput) error {
	return Validate(in)
}
