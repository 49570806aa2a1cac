package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/globalremit/pkg/app"
	"github.com/amirasaad/globalremit/pkg/domain"
	"github.com/amirasaad/globalremit/pkg/exchange"
	"github.com/amirasaad/globalremit/pkg/quote"
	"github.com/amirasaad/globalremit/pkg/receipt"
	"github.com/amirasaad/globalremit/pkg/session"
	"github.com/amirasaad/globalremit/pkg/validation"
	"github.com/amirasaad/globalremit/pkg/workflow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// send drives one wizard session from Details to Confirmation.
func (c *cli) send(ctx context.Context, save bool) error {
	a, closeApp, err := c.newApp()
	if err != nil {
		return err
	}
	defer closeApp()

	svc := a.WizardService
	rec, err := svc.Start(ctx, nil)
	if err != nil {
		return err
	}
	id := rec.ID
	defer func() { _ = svc.Delete(context.Background(), id) }()

	for {
		var err error
		switch rec.State.Step {
		case workflow.StepDetails:
			rec, err = c.details(ctx, a, id, rec.State)
		case workflow.StepReview:
			rec, err = c.review(ctx, a, id, rec.State)
		case workflow.StepPayment:
			rec, err = c.payment(ctx, a, id)
		case workflow.StepConfirmation:
			return c.confirmation(ctx, a, id, save)
		}
		if err != nil {
			return err
		}
	}
}

func (c *cli) details(ctx context.Context, a *app.App, id uuid.UUID, st workflow.State) (*session.Record, error) {
	title.Fprintln(c.out, "\nStep 1 of 4: Transfer details")
	t := st.Transfer
	in := validation.DetailsInput{}
	var err error
	ask := func(dst *string, label, def string) {
		if err == nil {
			*dst, err = c.prompt(label, def)
		}
	}
	ask(&in.FromCountry, "Send from (GH, US, EU)", t.FromCountry)
	ask(&in.ToCountry, "Send to (GH, US, EU)", t.ToCountry)
	var amount string
	ask(&amount, "Amount to send", t.SendAmount.String())
	ask(&in.FirstName, "Recipient first name", st.Recipient.FirstName)
	ask(&in.LastName, "Recipient last name", st.Recipient.LastName)
	ask(&in.Email, "Recipient email", st.Recipient.Email)
	ask(&in.Phone, "Recipient phone", st.Recipient.Phone)
	var method string
	ask(&method, c.methodMenu(), strconv.Itoa(methodIndex(t.PaymentMethod)+1))
	if err != nil {
		return nil, err
	}
	in.FromCountry = strings.ToUpper(in.FromCountry)
	in.ToCountry = strings.ToUpper(in.ToCountry)
	in.SendAmount, _ = decimal.NewFromString(amount)
	in.PaymentMethod = methodByChoice(method)

	rec, err := a.WizardService.SubmitDetails(ctx, id, in)
	if err == nil {
		return rec, nil
	}
	if c.reportInputError(err) {
		return a.WizardService.Get(ctx, id)
	}
	return nil, err
}

func (c *cli) review(ctx context.Context, a *app.App, id uuid.UUID, st workflow.State) (*session.Record, error) {
	title.Fprintln(c.out, "\nStep 2 of 4: Review")
	t := st.Transfer
	c.printQuote(quote.Quote{
		From:          t.FromCountry,
		To:            t.ToCountry,
		SendAmount:    t.SendAmount,
		ExchangeRate:  t.ExchangeRate,
		Fee:           t.Fee,
		ReceiveAmount: t.ReceiveAmount,
		DeliveryTime:  t.DeliveryTime,
	})
	fmt.Fprintf(c.out, "Recipient:      %s %s <%s> %s\n", st.Recipient.FirstName, st.Recipient.LastName, st.Recipient.Email, st.Recipient.Phone)
	fmt.Fprintf(c.out, "Payment method: %s\n", domain.PaymentMethodName(t.PaymentMethod))

	answer, err := c.prompt("Continue to payment? (y = yes, b = back)", "y")
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(answer, "b") {
		return a.WizardService.Back(ctx, id)
	}
	rec, err := a.WizardService.Confirm(ctx, id)
	if err != nil && c.reportInputError(err) {
		return a.WizardService.Back(ctx, id)
	}
	return rec, err
}

func (c *cli) payment(ctx context.Context, a *app.App, id uuid.UUID) (*session.Record, error) {
	title.Fprintln(c.out, "\nStep 3 of 4: Payment")
	var in validation.PaymentInput
	var err error
	if in.CardNumber, err = c.prompt("Card number (b = back)", ""); err != nil {
		return nil, err
	}
	if strings.EqualFold(in.CardNumber, "b") {
		return a.WizardService.Back(ctx, id)
	}
	if in.ExpiryDate, err = c.prompt("Expiry (MM/YY)", ""); err != nil {
		return nil, err
	}
	fmt.Fprint(c.out, "CVV: ")
	if in.CVV, err = c.secret(); err != nil {
		return nil, err
	}
	if in.NameOnCard, err = c.prompt("Name on card", ""); err != nil {
		return nil, err
	}

	muted.Fprintln(c.out, "Processing payment...")
	rec, err := a.WizardService.Pay(ctx, id, in)
	if err == nil {
		return rec, nil
	}
	if c.reportInputError(err) {
		return a.WizardService.Get(ctx, id)
	}
	return nil, err
}

func (c *cli) confirmation(ctx context.Context, a *app.App, id uuid.UUID, save bool) error {
	r, err := a.WizardService.Receipt(ctx, id)
	if err != nil {
		return err
	}
	success.Fprintf(c.out, "\nStep 4 of 4: Transfer complete! Transaction %s\n\n", r.TransactionID)
	if err := receipt.Render(c.out, r, a.Deps.Currencies); err != nil {
		return err
	}
	if !save {
		return nil
	}
	name := receipt.FileName(r.TransactionID)
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("save receipt: %w", err)
	}
	defer f.Close() //nolint: errcheck
	if err := receipt.Render(f, r, a.Deps.Currencies); err != nil {
		return fmt.Errorf("save receipt: %w", err)
	}
	muted.Fprintf(c.out, "Receipt saved to %s\n", name)
	return nil
}

// reportInputError prints field errors and stale quote errors and reports
// whether the user can correct them.
func (c *cli) reportInputError(err error) bool {
	var fields validation.Errors
	switch {
	case errors.As(err, &fields):
		for _, f := range fields.Fields() {
			failure.Fprintf(c.out, "  %s: %s\n", f, fields[f])
		}
		return true
	case errors.Is(err, workflow.ErrStaleQuote), errors.Is(err, exchange.ErrRateNotFound):
		failure.Fprintln(c.out, "  This corridor cannot be quoted right now, please change it.")
		return true
	}
	return false
}

func (c *cli) methodMenu() string {
	var b strings.Builder
	b.WriteString("Payment method")
	for i, m := range domain.PaymentMethods {
		fmt.Fprintf(&b, " %d) %s", i+1, m.Name)
	}
	return b.String()
}

func methodIndex(id string) int {
	for i, m := range domain.PaymentMethods {
		if m.ID == id {
			return i
		}
	}
	return 0
}

func methodByChoice(choice string) string {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(domain.PaymentMethods) {
		return choice
	}
	return domain.PaymentMethods[n-1].ID
}
