package transfer

import (
	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/dto"
	"github.com/amirasaad/globalremit/pkg/receipt"
	transfersvc "github.com/amirasaad/globalremit/pkg/service/transfer"
	"github.com/amirasaad/globalremit/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest is the body of POST /api/transfers. An empty
// transactionId lets the server allocate one.
type CreateTransferRequest struct {
	UserID             *int64          `json:"userId"`
	TransactionID      string          `json:"transactionId" validate:"omitempty,startswith=TR-,len=11"`
	FromCountry        string          `json:"fromCountry" validate:"required,country"`
	ToCountry          string          `json:"toCountry" validate:"required,country"`
	SendAmount         decimal.Decimal `json:"sendAmount" validate:"gt=0"`
	ReceiveAmount      decimal.Decimal `json:"receiveAmount" validate:"gt=0"`
	Fee                decimal.Decimal `json:"fee" validate:"gte=0"`
	ExchangeRate       decimal.Decimal `json:"exchangeRate" validate:"gt=0"`
	Status             string          `json:"status" validate:"omitempty,oneof=completed"`
	PaymentMethod      string          `json:"paymentMethod" validate:"required,paymentmethod"`
	RecipientFirstName string          `json:"recipientFirstName" validate:"required"`
	RecipientLastName  string          `json:"recipientLastName" validate:"required"`
	RecipientEmail     string          `json:"recipientEmail" validate:"required,email"`
	RecipientPhone     string          `json:"recipientPhone" validate:"required"`
}

// Routes registers the transfer endpoints.
func Routes(app *fiber.App, svc *transfersvc.Service, currencies *currency.Registry) {
	app.Post("/api/transfers", CreateTransfer(svc))
	app.Get("/api/transfers/transaction/:transactionId", GetByTransactionID(svc))
	app.Get("/api/transfers/transaction/:transactionId/receipt", DownloadReceipt(svc, currencies))
	app.Get("/api/transfers/:id", GetTransfer(svc))
}

// CreateTransfer records a completed transfer.
// @Summary Create transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body CreateTransferRequest true "Transfer"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /api/transfers [post]
func CreateTransfer(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateTransferRequest](c)
		if input == nil {
			return err
		}
		created, err := svc.CreateTransfer(c.Context(), &dto.TransferCreate{
			UserID:             input.UserID,
			TransactionID:      input.TransactionID,
			FromCountry:        input.FromCountry,
			ToCountry:          input.ToCountry,
			SendAmount:         input.SendAmount,
			ReceiveAmount:      input.ReceiveAmount,
			Fee:                input.Fee,
			ExchangeRate:       input.ExchangeRate,
			Status:             input.Status,
			PaymentMethod:      input.PaymentMethod,
			RecipientFirstName: input.RecipientFirstName,
			RecipientLastName:  input.RecipientLastName,
			RecipientEmail:     input.RecipientEmail,
			RecipientPhone:     input.RecipientPhone,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transfer created", created)
	}
}

// GetTransfer returns a transfer by its numeric ID.
// @Summary Get transfer
// @Tags transfers
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /api/transfers/{id} [get]
func GetTransfer(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transfer ID", err)
		}
		t, err := svc.GetTransfer(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Transfer not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer fetched", t)
	}
}

// GetByTransactionID returns a transfer by its transaction id.
// @Summary Get transfer by transaction id
// @Tags transfers
// @Produce json
// @Param transactionId path string true "Transaction id"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /api/transfers/transaction/{transactionId} [get]
func GetByTransactionID(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := svc.GetByTransactionID(c.Context(), c.Params("transactionId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Transfer not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer fetched", t)
	}
}

// DownloadReceipt streams the plain-text receipt as an attachment.
// @Summary Download receipt
// @Tags transfers
// @Produce plain
// @Param transactionId path string true "Transaction id"
// @Success 200 {string} string
// @Failure 404 {object} common.ProblemDetails
// @Router /api/transfers/transaction/{transactionId}/receipt [get]
func DownloadReceipt(svc *transfersvc.Service, currencies *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := svc.Receipt(c.Context(), c.Params("transactionId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Receipt not found", err)
		}
		return SendReceipt(c, r, currencies)
	}
}

// SendReceipt writes r as a downloadable text file.
func SendReceipt(c *fiber.Ctx, r receipt.Receipt, currencies *currency.Registry) error {
	c.Attachment(receipt.FileName(r.TransactionID))
	c.Set(fiber.HeaderContentType, receipt.ContentType)
	return receipt.Render(c, r, currencies)
}
