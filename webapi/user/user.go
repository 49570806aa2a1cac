package user

import (
	"github.com/amirasaad/globalremit/pkg/service/transfer"
	usersvc "github.com/amirasaad/globalremit/pkg/service/user"
	"github.com/amirasaad/globalremit/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the user endpoints.
func Routes(app *fiber.App, userSvc *usersvc.Service, transferSvc *transfer.Service) {
	app.Post("/api/users", CreateUser(userSvc))
	app.Get("/api/users/:id", GetUser(userSvc))
	app.Get("/api/users/:id/transfers", ListUserTransfers(userSvc, transferSvc))
}

// CreateUser registers a user.
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body NewUser true "User creation data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /api/users [post]
func CreateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewUser](c)
		if input == nil {
			return err
		}
		u, err := userSvc.CreateUser(c.Context(), usersvc.CreateInput{
			Username:    input.Username,
			Password:    input.Password,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Email:       input.Email,
			PhoneNumber: input.PhoneNumber,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Created user", u)
	}
}

// GetUser returns a user by ID.
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /api/users/{id} [get]
func GetUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user ID", err)
		}
		u, err := userSvc.GetUser(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "User not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", u)
	}
}

// ListUserTransfers returns the transfers a user has sent.
// @Summary List a user's transfers
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /api/users/{id}/transfers [get]
func ListUserTransfers(userSvc *usersvc.Service, transferSvc *transfer.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user ID", err)
		}
		if _, err := userSvc.GetUser(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "User not found", err)
		}
		list, err := transferSvc.ListByUser(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transfers", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfers fetched", list)
	}
}
