// Package receipt renders the plain-text receipt offered after a transfer
// completes.
package receipt

import (
	"io"
	"text/template"

	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/domain"
	"github.com/amirasaad/globalremit/pkg/workflow"
	"github.com/shopspring/decimal"
)

// ContentType is the MIME type of a rendered receipt.
const ContentType = "text/plain; charset=utf-8"

// Receipt holds the fields printed on a receipt.
type Receipt struct {
	TransactionID   string
	TransactionDate string
	FromCountry     string
	ToCountry       string
	SendAmount      decimal.Decimal
	Fee             decimal.Decimal
	ReceiveAmount   decimal.Decimal
	ExchangeRate    decimal.Decimal
	RecipientFirst  string
	RecipientLast   string
	RecipientEmail  string
	RecipientPhone  string
	PaymentMethod   string
}

// FromFinalized builds a receipt from a wizard's finalized transfer.
func FromFinalized(ft workflow.FinalizedTransfer) Receipt {
	return Receipt{
		TransactionID:   ft.TransactionID,
		TransactionDate: ft.TransactionDate,
		FromCountry:     ft.Transfer.FromCountry,
		ToCountry:       ft.Transfer.ToCountry,
		SendAmount:      ft.Transfer.SendAmount,
		Fee:             ft.Transfer.Fee,
		ReceiveAmount:   ft.Transfer.ReceiveAmount,
		ExchangeRate:    ft.Transfer.ExchangeRate,
		RecipientFirst:  ft.Recipient.FirstName,
		RecipientLast:   ft.Recipient.LastName,
		RecipientEmail:  ft.Recipient.Email,
		RecipientPhone:  ft.Recipient.Phone,
		PaymentMethod:   ft.Transfer.PaymentMethod,
	}
}

// FileName is the download name of a receipt.
func FileName(transactionID string) string {
	return "GlobalRemit-Receipt-" + transactionID + ".txt"
}

var tmpl = template.Must(template.New("receipt").Parse(`GlobalRemit - Transaction Receipt
---------------------------------
Transaction ID: {{.TransactionID}}
Date & Time: {{.TransactionDate}}

From: {{.From.Name}} ({{.From.Code}})
To: {{.To.Name}} ({{.To.Code}})

Amount Sent: {{.AmountSent}}
Fee: {{.Fee}}
Total Paid: {{.TotalPaid}}

Amount Received: {{.AmountReceived}}
Exchange Rate: 1 {{.From.Symbol}} = {{.Rate}} {{.To.Symbol}}

Recipient: {{.RecipientName}}
Email: {{.RecipientEmail}}
Phone: {{.RecipientPhone}}

Payment Method: {{.PaymentMethod}}
Status: Complete

Thank you for using GlobalRemit!
`))

type view struct {
	TransactionID   string
	TransactionDate string
	From, To        currency.Profile
	AmountSent      string
	Fee             string
	TotalPaid       string
	AmountReceived  string
	Rate            string
	RecipientName   string
	RecipientEmail  string
	RecipientPhone  string
	PaymentMethod   string
}

// Render writes r to w. A nil registry uses the default currencies.
func Render(w io.Writer, r Receipt, reg *currency.Registry) error {
	if reg == nil {
		reg = currency.Default()
	}
	return tmpl.Execute(w, view{
		TransactionID:   r.TransactionID,
		TransactionDate: r.TransactionDate,
		From:            profile(reg, r.FromCountry),
		To:              profile(reg, r.ToCountry),
		AmountSent:      reg.Format(r.SendAmount, r.FromCountry),
		Fee:             reg.Format(r.Fee, r.FromCountry),
		TotalPaid:       reg.Format(r.SendAmount.Add(r.Fee), r.FromCountry),
		AmountReceived:  reg.Format(r.ReceiveAmount, r.ToCountry),
		Rate:            r.ExchangeRate.StringFixed(5),
		RecipientName:   r.RecipientFirst + " " + r.RecipientLast,
		RecipientEmail:  r.RecipientEmail,
		RecipientPhone:  r.RecipientPhone,
		PaymentMethod:   domain.PaymentMethodName(r.PaymentMethod),
	})
}

func profile(reg *currency.Registry, country string) currency.Profile {
	p, err := reg.Get(country)
	if err != nil {
		return currency.Profile{Country: country, Code: country, Symbol: country, Name: country}
	}
	return p
}
