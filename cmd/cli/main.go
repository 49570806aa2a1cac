package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/globalremit/infra/initializer"
	"github.com/amirasaad/globalremit/pkg/app"
	"github.com/amirasaad/globalremit/pkg/config"
	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/exchange"
	"github.com/amirasaad/globalremit/pkg/quote"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

const usage = `Usage: globalremit <command> [arguments]

Commands:
  rates                         list the corridor rates and fees
  quote <from> <to> <amount>    price a transfer, e.g. quote GH US 1000
  send [--save]                 walk through the transfer wizard`

var (
	title   = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen, color.Bold)
	failure = color.New(color.FgRed)
	muted   = color.New(color.Faint)
)

type cli struct {
	in     *bufio.Reader
	out    io.Writer
	secret func() (string, error)
	newApp func() (*app.App, func(), error)
	table  *exchange.Table
	reg    *currency.Registry
}

func main() {
	c := newCLI(os.Stdin, os.Stdout)
	if err := c.run(context.Background(), os.Args[1:]); err != nil {
		failure.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCLI(stdin *os.File, out io.Writer) *cli {
	c := &cli{
		in:     bufio.NewReader(stdin),
		out:    out,
		newApp: loadApp,
		table:  exchange.DefaultTable(),
		reg:    currency.Default(),
	}
	c.secret = c.readLine
	if fd := int(stdin.Fd()); term.IsTerminal(fd) {
		c.secret = func() (string, error) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(c.out)
			return strings.TrimSpace(string(b)), err
		}
	}
	return c
}

func loadApp() (*app.App, func(), error) {
	cfg, err := config.Load(".env")
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return nil, nil, err
	}
	return app.New(deps, cfg), func() { _ = deps.Close() }, nil
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(c.out, usage)
		return nil
	}
	switch args[0] {
	case "rates":
		return c.rates()
	case "quote":
		if len(args) != 4 {
			return errors.New("usage: quote <from> <to> <amount>")
		}
		return c.quote(args[1], args[2], args[3])
	case "send":
		save := len(args) > 1 && args[1] == "--save"
		return c.send(ctx, save)
	default:
		fmt.Fprintln(c.out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (c *cli) rates() error {
	title.Fprintln(c.out, "Corridor rates")
	for _, e := range c.table.Entries() {
		from, _ := c.reg.Get(e.From)
		to, _ := c.reg.Get(e.To)
		fmt.Fprintf(c.out, "  %s -> %s  1 %s = %s %s  fee %s  %s\n",
			e.From, e.To,
			from.Code, e.Rate.StringFixed(5), to.Code,
			c.reg.Format(c.table.LookupFee(e.From), e.From),
			muted.Sprint(c.table.LookupDelivery(e.From, e.To)),
		)
	}
	return nil
}

func (c *cli) quote(from, to, raw string) error {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid amount %q", raw)
	}
	q, err := quote.NewCalculator(c.table, c.reg).Compute(strings.ToUpper(from), strings.ToUpper(to), amount)
	if err != nil {
		return err
	}
	c.printQuote(q)
	return nil
}

func (c *cli) printQuote(q quote.Quote) {
	fmt.Fprintf(c.out, "You send:       %s\n", c.reg.Format(q.SendAmount, q.From))
	fmt.Fprintf(c.out, "Fee:            %s\n", c.reg.Format(q.Fee, q.From))
	fmt.Fprintf(c.out, "Total charged:  %s\n", c.reg.Format(q.TotalCharged(), q.From))
	fmt.Fprintf(c.out, "They receive:   %s\n", c.reg.Format(q.ReceiveAmount, q.To))
	fmt.Fprintf(c.out, "Exchange rate:  %s\n", q.ExchangeRate.StringFixed(5))
	fmt.Fprintf(c.out, "Delivery:       %s\n", q.DeliveryTime)
}

func (c *cli) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *cli) prompt(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(c.out, "%s %s: ", label, muted.Sprintf("[%s]", def))
	} else {
		fmt.Fprintf(c.out, "%s: ", label)
	}
	v, err := c.readLine()
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}
