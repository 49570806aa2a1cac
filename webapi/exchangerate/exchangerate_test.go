package exchangerate_test

import (
	"context"
	"testing"

	"github.com/amirasaad/globalremit/pkg/domain/events"
	"github.com/amirasaad/globalremit/pkg/dto"
	"github.com/amirasaad/globalremit/webapi/exchangerate"
	"github.com/amirasaad/globalremit/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExchangeRateTestSuite struct {
	testutils.APITestSuite
}

func TestExchangeRateTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateTestSuite))
}

func (s *ExchangeRateTestSuite) TestListSeededRates() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/exchange-rates", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var rates []dto.ExchangeRateRead
	s.DecodeData(resp, &rates)
	s.Len(rates, 6)
}

func (s *ExchangeRateTestSuite) TestGetRate() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/exchange-rates/gh/us", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var rate dto.ExchangeRateRead
	s.DecodeData(resp, &rate)
	s.True(rate.Rate.Equal(decimal.RequireFromString("0.08325")))

	resp = s.MakeRequest(fiber.MethodGet, "/api/exchange-rates/GH/GH", "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())
}

func (s *ExchangeRateTestSuite) TestUpdateRate() {
	resp := s.MakeRequest(fiber.MethodPut, "/api/exchange-rates/1", `{"rate":"0.09"}`)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var rate dto.ExchangeRateRead
	s.DecodeData(resp, &rate)
	s.True(rate.Rate.Equal(decimal.RequireFromString("0.09")))

	published := s.Bus.Published()
	s.Require().Len(published, 1)
	s.Equal(events.EventTypeExchangeRateUpdated.String(), published[0].Type())

	resp = s.MakeRequest(fiber.MethodPut, "/api/exchange-rates/1", `{"rate":"-1"}`)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())

	resp = s.MakeRequest(fiber.MethodPut, "/api/exchange-rates/999", `{"rate":"1"}`)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())
}

func (s *ExchangeRateTestSuite) TestUpdatedRatePricesQuotesAndWizard() {
	resp := s.MakeRequest(fiber.MethodPut, "/api/exchange-rates/1", `{"rate":"0.1"}`)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())

	resp = s.MakeRequest(fiber.MethodGet, "/api/quote?from=GH&to=US&amount=1000", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var q exchangerate.QuoteResponse
	s.DecodeData(resp, &q)
	s.True(q.ExchangeRate.Equal(decimal.RequireFromString("0.1")))
	s.True(q.ReceiveAmount.Equal(decimal.NewFromInt(100)))

	rec, err := s.App.WizardService.Start(context.Background(), nil)
	s.Require().NoError(err)
	s.True(rec.State.Transfer.ReceiveAmount.Equal(decimal.NewFromInt(100)))
}

func (s *ExchangeRateTestSuite) TestQuote() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/quote?from=US&to=EU&amount=100", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var q exchangerate.QuoteResponse
	s.DecodeData(resp, &q)
	s.True(q.ReceiveAmount.Equal(decimal.RequireFromString("91.69")))
	s.True(q.Fee.Equal(decimal.NewFromInt(5)))
	s.True(q.TotalCharged.Equal(decimal.NewFromInt(105)))
	s.Equal("Same Day", q.DeliveryTime)
}

func (s *ExchangeRateTestSuite) TestQuoteErrors() {
	cases := []struct {
		query string
		want  int
	}{
		{"from=US&to=EU&amount=abc", fiber.StatusBadRequest},
		{"from=US&to=EU&amount=0", fiber.StatusUnprocessableEntity},
		{"from=US&to=NG&amount=10", fiber.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		resp := s.MakeRequest(fiber.MethodGet, "/api/quote?"+tc.query, "")
		s.Equal(tc.want, resp.StatusCode, tc.query)
		s.Require().NoError(resp.Body.Close())
	}
}
