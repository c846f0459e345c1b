package cmd

import (
	"github.com/durgadao/anjoli-custody/cmd/migrate"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the Anjoli PostgreSQL schema",
		Long:  "Apply, revert, inspect or force the Anjoli schema version. Migrations are embedded in the binary unless --anjoli-source is given.",
	}
	cmd.AddCommand(
		migrate.NewMigrateUpCommand(),
		migrate.NewMigrateDownCommand(),
		migrate.NewMigrateVersionCommand(),
		migrate.NewMigrateForceCommand(),
	)
	return cmd
}
