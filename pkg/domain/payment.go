package domain

// Payment method identifiers accepted by the transfer wizard.
const (
	PaymentBankTransfer = "bank-transfer"
	PaymentDebitCard    = "debit-card"
	PaymentMobileMoney  = "mobile-money"
)

// PaymentMethod is a selectable way of funding a transfer.
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaymentMethods lists the supported methods in display order.
var PaymentMethods = []PaymentMethod{
	{ID: PaymentBankTransfer, Name: "Bank Transfer"},
	{ID: PaymentDebitCard, Name: "Debit Card"},
	{ID: PaymentMobileMoney, Name: "Mobile Money"},
}

// IsPaymentMethod reports whether id names a supported payment method.
func IsPaymentMethod(id string) bool {
	for _, m := range PaymentMethods {
		if m.ID == id {
			return true
		}
	}
	return false
}

// PaymentMethodName returns the display name of a method, or the id itself
// when it is unknown.
func PaymentMethodName(id string) string {
	for _, m := range PaymentMethods {
		if m.ID == id {
			return m.Name
		}
	}
	return id
}
