package config

import (
	"time"

	"github.com/amirasaad/globalremit/pkg/workflow"
	"github.com/shopspring/decimal"
)

// Supported DB drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DB struct {
	Driver       string        `envconfig:"DRIVER" default:"memory"`
	Url          string        `envconfig:"URL" default:"globalremit.db"`
	MaxOpenConns int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxLifetime  time.Duration `envconfig:"MAX_LIFETIME" default:"1h"`
}

// Redis backs the wizard session store. An empty URL keeps sessions in memory.
type Redis struct {
	URL          string        `envconfig:"URL"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"globalremit:wizard:"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

// Kafka backs the event bus. Empty brokers keep events in memory.
type Kafka struct {
	Brokers      string `envconfig:"BROKERS"`
	GroupID      string `envconfig:"GROUP_ID" default:"globalremit"`
	TopicPrefix  string `envconfig:"TOPIC_PREFIX" default:"globalremit.events"`
	SASLUsername string `envconfig:"SASL_USERNAME"`
	SASLPassword string `envconfig:"SASL_PASSWORD"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[globalremit]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"5000"`
}

// Workflow holds the transfer wizard defaults.
type Workflow struct {
	PaymentDelay         time.Duration   `envconfig:"PAYMENT_DELAY" default:"1500ms"`
	DefaultFrom          string          `envconfig:"DEFAULT_FROM" default:"GH"`
	DefaultTo            string          `envconfig:"DEFAULT_TO" default:"US"`
	DefaultSendAmount    decimal.Decimal `envconfig:"DEFAULT_SEND_AMOUNT" default:"1000"`
	DefaultPaymentMethod string          `envconfig:"DEFAULT_PAYMENT_METHOD" default:"bank-transfer"`
	SessionTTL           time.Duration   `envconfig:"SESSION_TTL" default:"24h"`
	Timezone             string          `envconfig:"TIMEZONE"`
}

// Settings converts the defaults into wizard settings.
func (w *Workflow) Settings() workflow.Settings {
	return workflow.Settings{
		FromCountry:   w.DefaultFrom,
		ToCountry:     w.DefaultTo,
		SendAmount:    w.DefaultSendAmount,
		PaymentMethod: w.DefaultPaymentMethod,
	}
}

// Location resolves Timezone, falling back to the server's local zone.
func (w *Workflow) Location() *time.Location {
	if w.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Redis     *Redis     `envconfig:"REDIS"`
	Kafka     *Kafka     `envconfig:"KAFKA"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Workflow  *Workflow  `envconfig:"WORKFLOW"`
}
