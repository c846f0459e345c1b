package migrate

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang-migrate/migrate/v4"
)

var _ migrate.Logger = (*consoleLogger)(nil)

// consoleLogger prints migrate progress to the command output, one line per message.
type consoleLogger struct {
	out     io.Writer
	prefix  string
	verbose bool
}

func (l *consoleLogger) Printf(format string, v ...interface{}) {
	msg := strings.TrimRight(fmt.Sprintf(format, v...), "\n")
	fmt.Fprintf(l.out, "%s%s\n", l.prefix, msg)
}

func (l *consoleLogger) Verbose() bool {
	return l.verbose
}
