// Package webapi provides the HTTP API of the transfer application.
// It is organized into sub-packages per resource:
// - currency: currencies, corridors and payment methods
// - exchangerate: stored rates and quotes
// - receiver: receiving account setup
// - transfer: completed transfers and receipts
// - user: user registration and lookup
// - wizard: the four-step transfer wizard
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/globalremit/pkg/app"
	"github.com/amirasaad/globalremit/webapi/common"
	currencyweb "github.com/amirasaad/globalremit/webapi/currency"
	"github.com/amirasaad/globalremit/webapi/docs"
	exchangerateweb "github.com/amirasaad/globalremit/webapi/exchangerate"
	receiverweb "github.com/amirasaad/globalremit/webapi/receiver"
	transferweb "github.com/amirasaad/globalremit/webapi/transfer"
	userweb "github.com/amirasaad/globalremit/webapi/user"
	wizardweb "github.com/amirasaad/globalremit/webapi/wizard"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "GlobalRemit",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, utils.StatusMessage(common.ErrorToStatusCode(err)), err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		InstanceName:    docs.SwaggerInfo.InstanceName(),
		Title:           docs.SwaggerInfo.Title,
		TryItOutEnabled: true,
	}))

	if a.Config != nil && a.Config.RateLimit != nil && a.Config.RateLimit.MaxRequests > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:          a.Config.RateLimit.MaxRequests,
			Expiration:   a.Config.RateLimit.Window,
			KeyGenerator: clientKey,
			LimitReached: func(c *fiber.Ctx) error {
				return common.ProblemDetailsJSON(
					c,
					"Too Many Requests",
					errors.New("rate limit exceeded"),
					fiber.StatusTooManyRequests,
				)
			},
		}))
	}
	fiberApp.Use(requestid.New())
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("GlobalRemit API is running! 🚀")
	})

	// Debug endpoint to list all routes
	fiberApp.Get("/debug/routes", func(c *fiber.Ctx) error {
		var routeList []map[string]string
		for _, route := range fiberApp.GetRoutes(true) {
			routeList = append(routeList, map[string]string{
				"method": route.Method,
				"path":   route.Path,
			})
		}
		return c.JSON(routeList)
	})

	currencies := a.Deps.Currencies
	currencyweb.Routes(fiberApp, currencies)
	exchangerateweb.Routes(fiberApp, a.ExchangeService)
	userweb.Routes(fiberApp, a.UserService, a.TransferService)
	receiverweb.Routes(fiberApp, currencies)
	transferweb.Routes(fiberApp, a.TransferService, currencies)
	wizardweb.Routes(fiberApp, a.WizardService, currencies)
	return fiberApp
}

// clientKey identifies the caller for rate limiting. It prefers the first
// X-Forwarded-For hop, then X-Real-IP, then the socket address.
func clientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get(fiber.HeaderXForwardedFor); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
