package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/core/constants"
	"github.com/durgadao/anjoli-custody/modules/anjoli"
	"github.com/spf13/cobra"
)

var versions = map[string]string{
	"":       constants.Version,
	"anjoli": anjoli.Version,
}

type versionCmdOptions struct {
	Modules string
}

func NewVersionCommand() *cobra.Command {
	opts := &versionCmdOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show anjoli-custody version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return versionHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Modules, "module", "", `Show version of a specific module. E.g. "anjoli"`)

	return cmd
}

func versionHandler(opts *versionCmdOptions, cmd *cobra.Command, _ []string) error {
	version, ok := versions[opts.Modules]
	if !ok {
		return errors.Wrapf(errs.Unsupported, "Invalid module name %q", opts.Modules)
	}
	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}
