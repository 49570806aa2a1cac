package currency

import (
	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/domain"
	"github.com/gofiber/fiber/v2"

	"github.com/amirasaad/globalremit/webapi/common"
)

// Routes registers the read-only catalog endpoints: currencies, featured
// corridors and payment methods.
func Routes(app *fiber.App, reg *currency.Registry) {
	app.Get("/api/currencies", ListCurrencies(reg))
	app.Get("/api/currencies/:country", GetCurrency(reg))
	app.Get("/api/corridors", ListCorridors())
	app.Get("/api/payment-methods", ListPaymentMethods())
}

// ListCurrencies returns the supported currency profiles.
// @Summary List supported currencies
// @Tags catalog
// @Produce json
// @Success 200 {object} common.Response
// @Router /api/currencies [get]
func ListCurrencies(reg *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currencies fetched successfully", reg.List())
	}
}

// GetCurrency returns the profile of one country.
// @Summary Get currency by country code
// @Tags catalog
// @Produce json
// @Param country path string true "Country code"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /api/currencies/{country} [get]
func GetCurrency(reg *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := reg.Get(c.Params("country"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Currency not found", err, fiber.StatusNotFound)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currency fetched successfully", p)
	}
}

// ListCorridors returns the featured sending routes.
// @Summary List featured corridors
// @Tags catalog
// @Produce json
// @Success 200 {object} common.Response
// @Router /api/corridors [get]
func ListCorridors() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Corridors fetched successfully", domain.Corridors)
	}
}

// ListPaymentMethods returns the selectable payment methods.
// @Summary List payment methods
// @Tags catalog
// @Produce json
// @Success 200 {object} common.Response
// @Router /api/payment-methods [get]
func ListPaymentMethods() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment methods fetched successfully", domain.PaymentMethods)
	}
}
