package transfer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecipient_FullName(t *testing.T) {
	assert.Equal(t, "Ama Mensah", Recipient{FirstName: "Ama", LastName: "Mensah"}.FullName())
	assert.Equal(t, "Ama", Recipient{FirstName: "Ama"}.FullName())
	assert.Equal(t, "Mensah", Recipient{LastName: "Mensah"}.FullName())
}

func TestTransfer_TotalCharged(t *testing.T) {
	tr := Transfer{SendAmount: decimal.NewFromInt(1000), Fee: decimal.NewFromInt(15)}
	assert.True(t, tr.TotalCharged().Equal(decimal.NewFromInt(1015)))
}
