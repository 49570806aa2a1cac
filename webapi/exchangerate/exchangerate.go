package exchangerate

import (
	"strings"

	"github.com/amirasaad/globalremit/pkg/quote"
	exchangesvc "github.com/amirasaad/globalremit/pkg/service/exchange"
	"github.com/amirasaad/globalremit/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// UpdateRateRequest is the body of an administrative rate change.
type UpdateRateRequest struct {
	Rate decimal.Decimal `json:"rate" validate:"gt=0"`
}

// Routes registers the exchange rate and quote endpoints.
func Routes(app *fiber.App, svc *exchangesvc.Service) {
	app.Get("/api/exchange-rates", ListRates(svc))
	app.Get("/api/exchange-rates/:from/:to", GetRate(svc))
	app.Put("/api/exchange-rates/:id", UpdateRate(svc))
	app.Get("/api/quote", GetQuote(svc))
}

// ListRates returns all stored exchange rates.
// @Summary List exchange rates
// @Tags exchange-rates
// @Produce json
// @Success 200 {object} common.Response
// @Router /api/exchange-rates [get]
func ListRates(svc *exchangesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rates, err := svc.ListRates(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch exchange rates", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Exchange rates fetched", rates)
	}
}

// GetRate returns the stored rate of an ordered country pair.
// @Summary Get exchange rate
// @Tags exchange-rates
// @Produce json
// @Param from path string true "Source country code"
// @Param to path string true "Destination country code"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /api/exchange-rates/{from}/{to} [get]
func GetRate(svc *exchangesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from := strings.ToUpper(c.Params("from"))
		to := strings.ToUpper(c.Params("to"))
		rate, err := svc.GetRate(c.Context(), from, to)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Exchange rate not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Exchange rate fetched", rate)
	}
}

// UpdateRate replaces a stored rate.
// @Summary Update exchange rate
// @Tags exchange-rates
// @Accept json
// @Produce json
// @Param id path int true "Rate ID"
// @Param request body UpdateRateRequest true "New rate"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /api/exchange-rates/{id} [put]
func UpdateRate(svc *exchangesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid rate ID", err)
		}
		input, err := common.BindAndValidate[UpdateRateRequest](c)
		if input == nil {
			return err
		}
		rate, err := svc.UpdateRate(c.Context(), id, input.Rate)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update exchange rate", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Exchange rate updated", rate)
	}
}

// QuoteResponse is a priced transfer.
type QuoteResponse struct {
	quote.Quote
	TotalCharged decimal.Decimal `json:"totalCharged"`
}

// GetQuote prices a transfer without starting a wizard.
// @Summary Quote a transfer
// @Tags exchange-rates
// @Produce json
// @Param from query string true "Source country code"
// @Param to query string true "Destination country code"
// @Param amount query string true "Send amount"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /api/quote [get]
func GetQuote(svc *exchangesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from := strings.ToUpper(c.Query("from"))
		to := strings.ToUpper(c.Query("to"))
		amount, err := decimal.NewFromString(c.Query("amount"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid amount", err, "amount must be a decimal number", fiber.StatusBadRequest)
		}
		q, err := svc.Quote(from, to, amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Quote unavailable", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Quote computed", QuoteResponse{
			Quote:        q,
			TotalCharged: q.TotalCharged(),
		})
	}
}
