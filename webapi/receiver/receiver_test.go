package receiver_test

import (
	"testing"

	"github.com/amirasaad/globalremit/webapi/receiver"
	"github.com/amirasaad/globalremit/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type ReceiverTestSuite struct {
	testutils.APITestSuite
}

func TestReceiverTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiverTestSuite))
}

func (s *ReceiverTestSuite) TestRegister() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/receivers", `{
		"receivingCountry": "GH",
		"accountNumber": "0241234567",
		"accountName": "Kofi Boateng",
		"phoneNumber": "+233241234567",
		"email": "kofi@example.com"
	}`)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var view receiver.AccountView
	s.DecodeData(resp, &view)
	s.Equal("GHS", view.Currency)
	s.Equal("******4567", view.AccountNumber)
	s.Equal("Kofi Boateng", view.AccountName)
}

func (s *ReceiverTestSuite) TestRegisterFieldErrors() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/receivers", `{
		"receivingCountry": "",
		"accountNumber": "123",
		"accountName": "Ko",
		"phoneNumber": "12",
		"email": "kofi"
	}`)
	s.Require().Equal(fiber.StatusBadRequest, resp.StatusCode)
	env := s.Decode(resp)
	s.Equal("Please select a receiving country", env.Errors["receivingCountry"])
	s.Equal("Account number must be at least 8 characters", env.Errors["accountNumber"])
	s.Equal("Account name is required", env.Errors["accountName"])
	s.Equal("Phone number is required", env.Errors["phoneNumber"])
	s.Equal("Invalid email address", env.Errors["email"])
}
