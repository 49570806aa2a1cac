package currency_test

import (
	"testing"

	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/domain"
	"github.com/amirasaad/globalremit/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type CatalogTestSuite struct {
	testutils.APITestSuite
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestListCurrencies() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/currencies", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var profiles []currency.Profile
	s.DecodeData(resp, &profiles)
	s.Require().Len(profiles, 3)
	s.Equal("GHS", profiles[0].Code)
	s.Equal("€", profiles[2].Symbol)
}

func (s *CatalogTestSuite) TestGetCurrency() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/currencies/US", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var p currency.Profile
	s.DecodeData(resp, &p)
	s.Equal("USD", p.Code)

	resp = s.MakeRequest(fiber.MethodGet, "/api/currencies/NG", "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())
}

func (s *CatalogTestSuite) TestCorridorsAndPaymentMethods() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/corridors", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var corridors []domain.Corridor
	s.DecodeData(resp, &corridors)
	s.Equal(domain.Corridors, corridors)

	resp = s.MakeRequest(fiber.MethodGet, "/api/payment-methods", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var methods []domain.PaymentMethod
	s.DecodeData(resp, &methods)
	s.Equal(domain.PaymentMethods, methods)
}
