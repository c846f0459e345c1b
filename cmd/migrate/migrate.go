package migrate

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"
	anjolipostgresql "github.com/durgadao/anjoli-custody/modules/anjoli/database/postgresql"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"
)

const (
	anjoliMigrationTable = "anjoli_schema_migrations"
	anjoliModuleName     = "Anjoli"
)

func cloneURLWithQuery(u *url.URL, newQuery url.Values) *url.URL {
	clone := *u
	query := clone.Query()
	for key, values := range newQuery {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	clone.RawQuery = query.Encode()
	return &clone
}

var supportedDrivers = map[string]struct{}{
	"postgres":   {},
	"postgresql": {},
}

func parseDatabaseURL(databaseURL string) (*url.URL, error) {
	if databaseURL == "" {
		return nil, errors.New("--database is required")
	}
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database URL")
	}
	if _, ok := supportedDrivers[parsed.Scheme]; !ok {
		return nil, errors.Errorf("unsupported database driver: %s", parsed.Scheme)
	}
	return parsed, nil
}

// newMigrate creates a Migrate instance for a module. An empty sourcePath uses the migrations embedded in the binary.
func newMigrate(out io.Writer, module string, sourcePath string, databaseURL *url.URL, migrationTable string) (*migrate.Migrate, error) {
	newDatabaseURL := cloneURLWithQuery(databaseURL, url.Values{"x-migrations-table": {migrationTable}})

	var (
		m   *migrate.Migrate
		err error
	)
	if sourcePath == "" {
		source, srcErr := iofs.New(anjolipostgresql.Migrations, anjolipostgresql.MigrationsDir)
		if srcErr != nil {
			return nil, errors.Wrap(srcErr, "failed to open embedded migrations")
		}
		m, err = migrate.NewWithSourceInstance("iofs", source, newDatabaseURL.String())
	} else {
		m, err = migrate.New("file://"+sourcePath, newDatabaseURL.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Migrate instance")
	}
	m.Log = &consoleLogger{
		out:    out,
		prefix: fmt.Sprintf("[%s] ", module),
	}
	return m, nil
}

// sourceOptions are the flags shared by every migrate subcommand.
type sourceOptions struct {
	DatabaseURL  string
	AnjoliSource string
}

func (o *sourceOptions) bind(cmd *cobra.Command, databaseUsage string) {
	flags := cmd.Flags()
	flags.StringVar(&o.AnjoliSource, "anjoli-source", "", "Path to Anjoli migrations directory. Default is the migrations embedded in the binary.")
	flags.StringVar(&o.DatabaseURL, "database", "", databaseUsage)
}

func (o *sourceOptions) open(cmd *cobra.Command) (*migrate.Migrate, error) {
	databaseURL, err := parseDatabaseURL(o.DatabaseURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return newMigrate(cmd.OutOrStdout(), anjoliModuleName, o.AnjoliSource, databaseURL, anjoliMigrationTable)
}

// parseSteps reads the optional [N] argument. Zero means all.
func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Wrapf(err, "invalid N %q", args[0])
	}
	if n < 0 {
		return 0, errors.New("N must be a positive integer")
	}
	return n, nil
}
