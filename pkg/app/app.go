// Package app wires the services of the transfer application.
package app

import (
	"errors"
	"io"
	"log/slog"

	"github.com/amirasaad/globalremit/pkg/config"
	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/eventbus"
	"github.com/amirasaad/globalremit/pkg/exchange"
	"github.com/amirasaad/globalremit/pkg/quote"
	"github.com/amirasaad/globalremit/pkg/repository"
	exchangesvc "github.com/amirasaad/globalremit/pkg/service/exchange"
	"github.com/amirasaad/globalremit/pkg/service/transfer"
	"github.com/amirasaad/globalremit/pkg/service/user"
	"github.com/amirasaad/globalremit/pkg/service/wizard"
	"github.com/amirasaad/globalremit/pkg/session"
	"github.com/amirasaad/globalremit/pkg/workflow"
)

// Deps holds the infrastructure the services are built on.
type Deps struct {
	Uow        repository.UnitOfWork
	RateTable  *exchange.Table
	Currencies *currency.Registry
	Sessions   session.Store
	EventBus   eventbus.Bus
	Logger     *slog.Logger
}

// Close releases the session store and event bus when they hold
// connections.
func (d *Deps) Close() error {
	var errs []error
	if c, ok := d.Sessions.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	if c, ok := d.EventBus.(eventbus.Closer); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

type App struct {
	Deps            *Deps
	Config          *config.App
	Rates           *exchange.LiveTable
	Quoter          quote.Quoter
	UserService     *user.Service
	TransferService *transfer.Service
	ExchangeService *exchangesvc.Service
	WizardService   *wizard.Service
}

// New builds the services from deps and registers the event handlers.
func New(deps *Deps, cfg *config.App) *App {
	if deps.RateTable == nil {
		deps.RateTable = exchange.DefaultTable()
	}
	if deps.Currencies == nil {
		deps.Currencies = currency.Default()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	wf := cfg.Workflow
	if wf == nil {
		wf = &config.Workflow{}
	}
	loc := wf.Location()

	a := &App{Deps: deps, Config: cfg}
	a.Rates = exchange.NewLiveTable(deps.RateTable)
	a.Quoter = quote.NewCalculator(a.Rates, deps.Currencies)
	a.UserService = user.New(deps.Uow, deps.EventBus, deps.Logger)
	a.TransferService = transfer.New(deps.Uow, deps.EventBus, deps.Logger, transfer.WithLocation(loc))
	a.ExchangeService = exchangesvc.New(deps.Uow, a.Rates, a.Quoter, deps.EventBus, deps.Logger)

	finalizer := workflow.NewFinalizer(
		workflow.WithDelay(wf.PaymentDelay),
		workflow.WithLocation(loc),
		workflow.WithUniquenessCheck(a.TransferService.TransactionExists),
	)
	settings := workflow.DefaultSettings()
	if wf.DefaultFrom != "" {
		settings = wf.Settings()
	}
	a.WizardService = wizard.New(deps.Sessions, a.Quoter, finalizer, a.TransferService, settings, deps.Logger)

	if deps.EventBus != nil {
		SetupBus(deps.EventBus, deps.Logger)
	}
	return a
}
