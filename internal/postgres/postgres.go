package postgres

import (
	"context"
	"strings"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	pgxslog "github.com/mcosta74/pgx-slog"
)

const (
	DefaultHost     = "127.0.0.1"
	DefaultPort     = "5432"
	DefaultSSLMode  = "prefer"
	DefaultDBName   = "anjoli"
	DefaultMaxConns = 16
	DefaultMinConns = 0
)

type Config struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`

	// URL replaces every connection field above when set.
	URL string `mapstructure:"url"`

	MaxConns int32 `mapstructure:"max_conns"`
	MinConns int32 `mapstructure:"min_conns"`

	// Debug traces every query instead of errors only.
	Debug bool `mapstructure:"debug"`
}

// NewPool opens a pool and pings it, so a bad config fails at startup instead of on the first query.
func NewPool(ctx context.Context, conf Config) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(conf.String())
	if err != nil {
		return nil, errors.Wrap(err, "invalid postgres config")
	}
	poolConf.MaxConns = utils.Default(conf.MaxConns, DefaultMaxConns)
	poolConf.MinConns = utils.Default(conf.MinConns, DefaultMinConns)
	poolConf.ConnConfig.Tracer = conf.QueryTracer()

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, errors.Wrap(err, "can't create postgres pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrapf(err, "can't reach postgres at %s:%s", utils.Default(conf.Host, DefaultHost), utils.Default(conf.Port, DefaultPort))
	}
	return pool, nil
}

// String returns URL when set, otherwise a key/value DSN with empty credentials omitted.
func (conf Config) String() string {
	if conf.URL != "" {
		return conf.URL
	}

	pairs := [][2]string{
		{"host", utils.Default(conf.Host, DefaultHost)},
		{"dbname", utils.Default(conf.DBName, DefaultDBName)},
		{"port", utils.Default(conf.Port, DefaultPort)},
		{"sslmode", utils.Default(conf.SSLMode, DefaultSSLMode)},
		{"user", conf.User},
		{"password", conf.Password},
	}

	var sb strings.Builder
	for _, kv := range pairs {
		if kv[1] == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(kv[0])
		sb.WriteByte('=')
		sb.WriteString(quoteDSNValue(kv[1]))
	}
	return sb.String()
}

// quoteDSNValue single-quotes values holding spaces or quotes, escaping quotes and backslashes.
func quoteDSNValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v) + "'"
}

func (conf Config) QueryTracer() pgx.QueryTracer {
	level := tracelog.LogLevelError
	if conf.Debug {
		level = tracelog.LogLevelTrace
	}
	return &tracelog.TraceLog{
		Logger:   pgxslog.NewLogger(logger.With(slogx.String(logger.ModuleKey, "postgres"))),
		LogLevel: level,
	}
}
