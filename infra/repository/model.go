package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a user record in the database.
type User struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Username    string  `gorm:"uniqueIndex;not null;size:50"`
	Password    string  `gorm:"not null"`
	FirstName   string  `gorm:"not null;size:100"`
	LastName    string  `gorm:"not null;size:100"`
	Email       string  `gorm:"uniqueIndex;not null;size:255"`
	PhoneNumber *string `gorm:"size:32"`
	CreatedAt   time.Time
}

// Transfer represents a completed transfer record in the database.
type Transfer struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement"`
	UserID             *int64          `gorm:"index"`
	TransactionID      string          `gorm:"uniqueIndex;not null;size:16"`
	FromCountry        string          `gorm:"not null;size:2"`
	ToCountry          string          `gorm:"not null;size:2"`
	SendAmount         decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	ReceiveAmount      decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Fee                decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	ExchangeRate       decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	Status             string          `gorm:"not null;size:20;default:completed"`
	PaymentMethod      string          `gorm:"not null;size:32"`
	RecipientFirstName string          `gorm:"not null;size:100"`
	RecipientLastName  string          `gorm:"not null;size:100"`
	RecipientEmail     string          `gorm:"not null;size:255"`
	RecipientPhone     string          `gorm:"not null;size:32"`
	CreatedAt          time.Time
}

// ExchangeRate represents a stored corridor rate.
type ExchangeRate struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	FromCurrency string          `gorm:"not null;size:2;uniqueIndex:idx_exchange_rates_pair"`
	ToCurrency   string          `gorm:"not null;size:2;uniqueIndex:idx_exchange_rates_pair"`
	Rate         decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	UpdatedAt    time.Time
}

// Models lists the tables to auto-migrate.
func Models() []any {
	return []any{&User{}, &Transfer{}, &ExchangeRate{}}
}
