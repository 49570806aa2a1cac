// Package receiver lets a recipient register the account transfers are paid
// into.
package receiver

import (
	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/validation"
	"github.com/amirasaad/globalremit/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// AccountView is the registered account with the account number masked.
type AccountView struct {
	ReceivingCountry string `json:"receivingCountry"`
	Currency         string `json:"currency"`
	AccountNumber    string `json:"accountNumber"`
	AccountName      string `json:"accountName"`
	PhoneNumber      string `json:"phoneNumber"`
	Email            string `json:"email"`
}

// Routes registers receiver routes.
func Routes(app *fiber.App, currencies *currency.Registry) {
	app.Post("/api/receivers", Register(currencies))
}

// Register validates a receiving account. Accounts are not stored.
// @Summary Register a receiving account
// @Tags receivers
// @Accept json
// @Produce json
// @Param request body validation.ReceiverInput true "Receiving account"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /api/receivers [post]
func Register(currencies *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[validation.ReceiverInput](c)
		if input == nil {
			return err
		}
		profile, err := currencies.Get(input.ReceivingCountry)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unsupported country", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Receiver setup complete", AccountView{
			ReceivingCountry: input.ReceivingCountry,
			Currency:         profile.Code,
			AccountNumber:    validation.MaskCardNumber(input.AccountNumber),
			AccountName:      input.AccountName,
			PhoneNumber:      input.PhoneNumber,
			Email:            input.Email,
		})
	}
}
