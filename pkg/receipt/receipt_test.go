package receipt

import (
	"bytes"
	"testing"

	"github.com/amirasaad/globalremit/pkg/workflow"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	ft := workflow.FinalizedTransfer{
		TransactionID:   "TR-4F7K2Q9Z",
		TransactionDate: "March 4, 2025 at 02:07 PM UTC",
		Transfer: workflow.TransferDraft{
			FromCountry:   "GH",
			ToCountry:     "US",
			SendAmount:    decimal.NewFromInt(1000),
			ReceiveAmount: decimal.RequireFromString("83.25"),
			Fee:           decimal.NewFromInt(15),
			ExchangeRate:  decimal.RequireFromString("0.08325"),
			PaymentMethod: "bank-transfer",
		},
		Recipient: workflow.RecipientDraft{
			FirstName: "Ama",
			LastName:  "Mensah",
			Email:     "ama@example.com",
			Phone:     "0244123456",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FromFinalized(ft), nil))
	out := buf.String()

	for _, want := range []string{
		"GlobalRemit - Transaction Receipt\n",
		"Transaction ID: TR-4F7K2Q9Z\n",
		"Date & Time: March 4, 2025 at 02:07 PM UTC\n",
		"From: Ghana Cedi (GHS)\n",
		"To: US Dollar (USD)\n",
		"Amount Sent: ₵1,000.00\n",
		"Fee: ₵15.00\n",
		"Total Paid: ₵1,015.00\n",
		"Amount Received: $83.25\n",
		"Exchange Rate: 1 ₵ = 0.08325 $\n",
		"Recipient: Ama Mensah\n",
		"Email: ama@example.com\n",
		"Phone: 0244123456\n",
		"Payment Method: Bank Transfer\n",
		"Status: Complete\n",
		"Thank you for using GlobalRemit!\n",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_UnknownCountryFallsBackToCode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Receipt{FromCountry: "ZZ", ToCountry: "US", PaymentMethod: "cash"}, nil))
	assert.Contains(t, buf.String(), "From: ZZ (ZZ)")
	assert.Contains(t, buf.String(), "Payment Method: cash")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "GlobalRemit-Receipt-TR-4F7K2Q9Z.txt", FileName("TR-4F7K2Q9Z"))
}
