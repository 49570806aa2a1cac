package wizard_test

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/amirasaad/globalremit/pkg/domain/events"
	"github.com/amirasaad/globalremit/pkg/workflow"
	"github.com/amirasaad/globalremit/webapi/testutils"
	wizardweb "github.com/amirasaad/globalremit/webapi/wizard"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const detailsBody = `{
	"fromCountry": "EU",
	"toCountry": "GH",
	"sendAmount": "250",
	"firstName": "Ama",
	"lastName": "Mensah",
	"email": "ama@example.com",
	"phone": "+233201234567",
	"paymentMethod": "debit-card"
}`

const paymentBody = `{
	"cardNumber": "4111 1111 1111 1111",
	"expiryDate": "12/30",
	"cvv": "123",
	"nameOnCard": "Jane Doe"
}`

type WizardTestSuite struct {
	testutils.APITestSuite
}

func TestWizardTestSuite(t *testing.T) {
	suite.Run(t, new(WizardTestSuite))
}

func (s *WizardTestSuite) start() wizardweb.SessionView {
	resp := s.MakeRequest(fiber.MethodPost, "/api/wizard", "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var view wizardweb.SessionView
	s.DecodeData(resp, &view)
	return view
}

func (s *WizardTestSuite) TestStartForUnknownUser() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/wizard", `{"userId": 99}`)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())

	resp = s.MakeRequest(fiber.MethodPost, "/api/users", `{
		"username": "ama",
		"email": "ama@example.com",
		"password": "secret123",
		"firstName": "Ama",
		"lastName": "Mensah"
	}`)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())

	resp = s.MakeRequest(fiber.MethodPost, "/api/wizard", `{"userId": 1}`)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var view wizardweb.SessionView
	s.DecodeData(resp, &view)
	s.Require().NotNil(view.UserID)
	s.Equal(int64(1), *view.UserID)
}

func (s *WizardTestSuite) do(method, id, action, body string) *http.Response {
	path := "/api/wizard/" + id
	if action != "" {
		path += "/" + action
	}
	return s.MakeRequest(method, path, body)
}

func (s *WizardTestSuite) expectStep(resp *http.Response, want workflow.Step) wizardweb.SessionView {
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var view wizardweb.SessionView
	s.DecodeData(resp, &view)
	s.Require().Equal(want, view.Step)
	s.Equal(want.String(), view.StepName)
	return view
}

func (s *WizardTestSuite) TestStartUsesDefaultQuote() {
	view := s.start()
	s.Equal(workflow.StepDetails, view.Step)
	s.Equal("GH", view.Transfer.FromCountry)
	s.Equal("US", view.Transfer.ToCountry)
	s.True(view.Transfer.ReceiveAmount.Equal(decimal.RequireFromString("83.25")))
	s.True(view.TotalCharged.Equal(decimal.NewFromInt(1015)))
}

func (s *WizardTestSuite) TestFullFlowProducesTransferAndReceipt() {
	id := s.start().ID.String()

	review := s.expectStep(s.do(fiber.MethodPut, id, "details", detailsBody), workflow.StepReview)
	s.True(review.Transfer.ReceiveAmount.Equal(decimal.RequireFromString("3277.42")))
	s.True(review.Transfer.Fee.Equal(decimal.RequireFromString("4.50")))
	s.Equal("Ama", review.Recipient.FirstName)

	s.expectStep(s.do(fiber.MethodPost, id, "confirm", ""), workflow.StepPayment)
	done := s.expectStep(s.do(fiber.MethodPost, id, "pay", paymentBody), workflow.StepConfirmation)
	s.Require().NotNil(done.Finalized)
	s.Regexp(`^TR-[0-9A-Z]{8}$`, done.Finalized.TransactionID)

	published := s.Bus.Published()
	s.Require().Len(published, 1)
	completed, ok := published[0].(*events.TransferCompleted)
	s.Require().True(ok)
	s.Equal(done.Finalized.TransactionID, completed.TransactionID)

	resp := s.MakeRequest(fiber.MethodGet, "/api/transfers/transaction/"+done.Finalized.TransactionID, "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())

	resp = s.do(fiber.MethodGet, id, "receipt", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get(fiber.HeaderContentDisposition), "GlobalRemit-Receipt-"+done.Finalized.TransactionID+".txt")
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().NoError(resp.Body.Close())
	s.Contains(string(body), "Total Paid: €254.50")
	s.Contains(string(body), "Amount Received: ₵3,277.42")
	s.Contains(string(body), "Payment Method: Debit Card")
	s.NotContains(string(body), "4111")
}

func (s *WizardTestSuite) TestInvalidDetailsReportFieldErrors() {
	id := s.start().ID.String()
	body := strings.Replace(detailsBody, `"ama@example.com"`, `"not-an-email"`, 1)
	body = strings.Replace(body, `"Ama"`, `""`, 1)

	resp := s.do(fiber.MethodPut, id, "details", body)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	env := s.Decode(resp)
	s.Equal("Invalid email address", env.Errors["email"])
	s.Equal("First name is required", env.Errors["firstName"])

	s.expectStep(s.do(fiber.MethodGet, id, "", ""), workflow.StepDetails)
}

func (s *WizardTestSuite) TestInvalidCardStaysOnPayment() {
	id := s.start().ID.String()
	s.expectStep(s.do(fiber.MethodPut, id, "details", detailsBody), workflow.StepReview)
	s.expectStep(s.do(fiber.MethodPost, id, "confirm", ""), workflow.StepPayment)

	resp := s.do(fiber.MethodPost, id, "pay", `{"cardNumber":"1234","expiryDate":"13/30","cvv":"1","nameOnCard":""}`)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	env := s.Decode(resp)
	s.Equal("Card number must be at least 16 digits", env.Errors["cardNumber"])
	s.Equal("Expiry date must be in MM/YY format", env.Errors["expiryDate"])
	s.Equal("CVV must be at least 3 digits", env.Errors["cvv"])
	s.Equal("Name on card is required", env.Errors["nameOnCard"])

	s.expectStep(s.do(fiber.MethodGet, id, "", ""), workflow.StepPayment)
	s.Empty(s.Bus.Published())
}

func (s *WizardTestSuite) TestDraftQuoteErrorIsReported() {
	id := s.start().ID.String()

	resp := s.do(fiber.MethodPatch, id, "draft", `{"toCountry":"NG"}`)
	view := s.expectStep(resp, workflow.StepDetails)
	s.NotEmpty(view.QuoteError)
	s.True(view.Transfer.ReceiveAmount.IsZero())

	view = s.expectStep(s.do(fiber.MethodPatch, id, "draft", `{"toCountry":"EU","sendAmount":"100"}`), workflow.StepDetails)
	s.Empty(view.QuoteError)
	s.True(view.Transfer.ReceiveAmount.Equal(decimal.RequireFromString("7.63")))
}

func (s *WizardTestSuite) TestOutOfOrderTransitionsConflict() {
	id := s.start().ID.String()

	for _, action := range []string{"confirm", "back"} {
		resp := s.do(fiber.MethodPost, id, action, "")
		s.Equal(fiber.StatusConflict, resp.StatusCode, action)
		s.Require().NoError(resp.Body.Close())
	}
	resp := s.do(fiber.MethodPost, id, "pay", paymentBody)
	s.Equal(fiber.StatusConflict, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())

	resp = s.do(fiber.MethodGet, id, "receipt", "")
	s.Equal(fiber.StatusConflict, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())
}

func (s *WizardTestSuite) TestBackAndReset() {
	id := s.start().ID.String()
	s.expectStep(s.do(fiber.MethodPut, id, "details", detailsBody), workflow.StepReview)
	s.expectStep(s.do(fiber.MethodPost, id, "confirm", ""), workflow.StepPayment)
	s.expectStep(s.do(fiber.MethodPost, id, "back", ""), workflow.StepReview)
	back := s.expectStep(s.do(fiber.MethodPost, id, "back", ""), workflow.StepDetails)
	s.Equal("Ama", back.Recipient.FirstName)

	reset := s.expectStep(s.do(fiber.MethodPost, id, "reset", ""), workflow.StepDetails)
	s.Empty(reset.Recipient.FirstName)
	s.Nil(reset.Finalized)
}

func (s *WizardTestSuite) TestUnknownAndMalformedSessions() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/wizard/not-a-uuid", "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())

	resp = s.MakeRequest(fiber.MethodGet, "/api/wizard/6f1c2a52-9b4e-4a7e-9d61-1d1f1c1b1a10", "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Equal("application/problem+json", resp.Header.Get(fiber.HeaderContentType))
	s.Require().NoError(resp.Body.Close())
}

func (s *WizardTestSuite) TestDeleteDiscardsSession() {
	id := s.start().ID.String()
	resp := s.do(fiber.MethodDelete, id, "", "")
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())

	resp = s.do(fiber.MethodGet, id, "", "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())
}

func (s *WizardTestSuite) TestConcurrentPaysFinalizeOnce() {
	id := s.start().ID.String()
	s.expectStep(s.do(fiber.MethodPut, id, "details", detailsBody), workflow.StepReview)
	s.expectStep(s.do(fiber.MethodPost, id, "confirm", ""), workflow.StepPayment)

	const workers = 4
	codes := make([]int, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, _ := http.NewRequest(fiber.MethodPost, fmt.Sprintf("/api/wizard/%s/pay", id), strings.NewReader(paymentBody))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := s.Fiber.Test(req, -1)
			if err != nil {
				return
			}
			codes[i] = resp.StatusCode
			_ = resp.Body.Close()
		}()
	}
	wg.Wait()

	ok := 0
	for _, c := range codes {
		if c == fiber.StatusOK {
			ok++
		} else {
			s.Equal(fiber.StatusConflict, c)
		}
	}
	s.Equal(1, ok)
	s.Len(s.Bus.Published(), 1)
}
