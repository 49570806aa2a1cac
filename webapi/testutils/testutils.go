// Package testutils builds a fully wired in-memory API for handler tests.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/amirasaad/globalremit/infra/cache"
	infra_eventbus "github.com/amirasaad/globalremit/infra/eventbus"
	"github.com/amirasaad/globalremit/infra/repository/memory"
	"github.com/amirasaad/globalremit/pkg/app"
	"github.com/amirasaad/globalremit/pkg/config"
	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/exchange"
	"github.com/amirasaad/globalremit/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

// APITestSuite provides a fresh in-memory application for every test.
type APITestSuite struct {
	suite.Suite
	App      *app.App
	Fiber    *fiber.App
	Bus      *infra_eventbus.MemoryEventBus
	Sessions *cache.MemorySessionStore
	Store    *memory.Store
}

// Config returns the configuration used by the suite: no payment delay and
// no rate limit.
func Config() *config.App {
	return &config.App{
		Env:       "test",
		RateLimit: &config.RateLimit{},
		Workflow:  &config.Workflow{Timezone: "UTC", SessionTTL: time.Hour},
	}
}

// SetupTest wires the services against memory adapters and seeds the rate
// table.
func (s *APITestSuite) SetupTest() {
	s.Setup(Config())
}

// Setup wires the application with cfg.
func (s *APITestSuite) Setup(cfg *config.App) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Store = memory.NewStore()
	s.Bus = infra_eventbus.NewWithMemory(logger)
	s.Sessions = cache.NewMemorySessionStore(cfg.Workflow.SessionTTL)

	s.App = app.New(&app.Deps{
		Uow:        memory.NewUoW(s.Store),
		RateTable:  exchange.DefaultTable(),
		Currencies: currency.Default(),
		Sessions:   s.Sessions,
		EventBus:   s.Bus,
		Logger:     logger,
	}, cfg)
	_, err := s.App.ExchangeService.Seed(context.Background())
	s.Require().NoError(err)
	s.Fiber = webapi.SetupApp(s.App)
}

// TearDownTest stops the session store janitor.
func (s *APITestSuite) TearDownTest() {
	if s.App != nil {
		s.Require().NoError(s.App.Deps.Close())
	}
}

// MakeRequest sends a request through the Fiber app. A non-empty body is
// sent as JSON.
func (s *APITestSuite) MakeRequest(method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := s.Fiber.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// Envelope is the decoded success or problem response.
type Envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Title   string            `json:"title"`
	Detail  string            `json:"detail"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// Decode reads and closes the response body.
func (s *APITestSuite) Decode(resp *http.Response) Envelope {
	defer resp.Body.Close() //nolint:errcheck
	var env Envelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// DecodeData unmarshals the data field of a success response into out.
func (s *APITestSuite) DecodeData(resp *http.Response, out any) Envelope {
	env := s.Decode(resp)
	s.Require().NoError(json.Unmarshal(env.Data, out), "data: %s", env.Data)
	return env
}
