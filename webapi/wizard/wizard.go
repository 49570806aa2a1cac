// Package wizard exposes the transfer wizard over HTTP. Each session is
// addressed by the UUID returned from POST /api/wizard.
package wizard

import (
	"context"

	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/session"
	"github.com/amirasaad/globalremit/pkg/validation"
	"github.com/amirasaad/globalremit/webapi/common"
	transferweb "github.com/amirasaad/globalremit/webapi/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	wizardsvc "github.com/amirasaad/globalremit/pkg/service/wizard"
)

// Routes registers the wizard endpoints under /api/wizard.
func Routes(app *fiber.App, svc *wizardsvc.Service, currencies *currency.Registry) {
	g := app.Group("/api/wizard")
	g.Post("/", Start(svc))
	g.Get("/:id", Get(svc))
	g.Delete("/:id", Delete(svc))
	g.Patch("/:id/draft", UpdateDraft(svc))
	g.Put("/:id/details", SubmitDetails(svc))
	g.Post("/:id/confirm", step("Confirm failed", svc.Confirm))
	g.Post("/:id/back", step("Back failed", svc.Back))
	g.Post("/:id/reset", step("Reset failed", svc.Reset))
	g.Post("/:id/pay", Pay(svc))
	g.Get("/:id/receipt", Receipt(svc, currencies))
}

func sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "id must be a UUID")
	}
	return id, nil
}

// Start opens a wizard session on the Details step with the default quote.
// @Summary Start a transfer wizard
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body StartRequest false "Owner"
// @Success 201 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /api/wizard [post]
func Start(svc *wizardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req StartRequest
		if len(c.Body()) > 0 {
			input, err := common.BindAndValidate[StartRequest](c)
			if input == nil {
				return err
			}
			req = *input
		}
		rec, err := svc.Start(c.Context(), req.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to start wizard", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Wizard started", ToView(rec))
	}
}

// Get returns the current state of a session.
// @Summary Get wizard session
// @Tags wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /api/wizard/{id} [get]
func Get(svc *wizardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := sessionID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid session ID", err)
		}
		rec, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Session not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Wizard fetched", ToView(rec))
	}
}

// Delete discards a session.
// @Summary Delete wizard session
// @Tags wizard
// @Param id path string true "Session ID"
// @Success 204
// @Router /api/wizard/{id} [delete]
func Delete(svc *wizardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := sessionID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid session ID", err)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete session", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UpdateDraft changes corridor, amount, payment method or recipient while on
// Details. A failed quote is reported in quoteError, not as an error status.
// @Summary Update the transfer draft
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body DraftRequest true "Changes"
// @Success 200 {object} common.Response
// @Failure 409 {object} common.ProblemDetails
// @Router /api/wizard/{id}/draft [patch]
func UpdateDraft(svc *wizardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := sessionID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid session ID", err)
		}
		var req DraftRequest
		if err := c.BodyParser(&req); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
		}
		rec, err := svc.UpdateDraft(c.Context(), id, req.ToUpdate())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Draft update failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Draft updated", ToView(rec))
	}
}

// SubmitDetails validates the Details form and advances to Review.
// @Summary Submit transfer details
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body validation.DetailsInput true "Details"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /api/wizard/{id}/details [put]
func SubmitDetails(svc *wizardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := sessionID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid session ID", err)
		}
		var in validation.DetailsInput
		if err := c.BodyParser(&in); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
		}
		rec, err := svc.SubmitDetails(c.Context(), id, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Details rejected", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Details accepted", ToView(rec))
	}
}

// Pay validates the card and completes the transfer.
// @Summary Pay for the transfer
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body validation.PaymentInput true "Card"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /api/wizard/{id}/pay [post]
func Pay(svc *wizardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := sessionID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid session ID", err)
		}
		var in validation.PaymentInput
		if err := c.BodyParser(&in); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
		}
		rec, err := svc.Pay(c.Context(), id, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Payment failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment completed", ToView(rec))
	}
}

// Receipt downloads the plain-text receipt of a paid session.
// @Summary Download wizard receipt
// @Tags wizard
// @Produce plain
// @Param id path string true "Session ID"
// @Success 200 {string} string
// @Failure 409 {object} common.ProblemDetails
// @Router /api/wizard/{id}/receipt [get]
func Receipt(svc *wizardsvc.Service, currencies *currency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := sessionID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid session ID", err)
		}
		r, err := svc.Receipt(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Receipt unavailable", err)
		}
		return transferweb.SendReceipt(c, r, currencies)
	}
}

type transition func(ctx context.Context, id uuid.UUID) (*session.Record, error)

// step wraps a bodiless transition such as confirm, back or reset.
func step(title string, fn transition) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := sessionID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid session ID", err)
		}
		rec, err := fn(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, title, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Wizard is on "+rec.State.Step.String(), ToView(rec))
	}
}
