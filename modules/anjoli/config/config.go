package config

import (
	"time"

	"github.com/durgadao/anjoli-custody/internal/postgres"
)

const (
	DatastorePostgres = "postgres"
	DatastoreMemory   = "memory"
)

type Config struct {
	// AppAddress is the contract's own address on the host ledger. It is the asset manager and reserve.
	AppAddress string `mapstructure:"app_address"`

	// Datastore backing the contract state and hosted ledger, "postgres" (default) or "memory".
	Datastore string `mapstructure:"datastore"`

	// AutoInitialize mints the asset on startup when the contract is still uninitialized.
	AutoInitialize bool `mapstructure:"auto_initialize"`

	// APIHandlers to mount, currently only "http".
	APIHandlers []string `mapstructure:"api_handlers"`

	// ReportInterval is how often the worker reports the contract status. Defaults to 15s.
	ReportInterval time.Duration `mapstructure:"report_interval"`

	Postgres postgres.Config `mapstructure:"postgres"`
}
