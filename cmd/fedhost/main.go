// Command fedhost computes and installs the Host header of federation requests.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/fedhost"
	"github.com/ghettovoice/fedhost/internal/log"
)

const defaultPortEnv = "FEDHOST_DEFAULT_PORT"

type globalOptions struct {
	defaultPort uint16
	logFormat   string
	verbose     bool

	logger *slog.Logger
}

func (o *globalOptions) installer(stats *fedhost.StatsRecorder) *fedhost.Installer {
	return fedhost.NewInstaller(&fedhost.InstallerOptions{
		DefaultPort: o.defaultPort,
		Log:         o.logger,
		Stats:       stats,
	})
}

func newMainCommand() *cobra.Command {
	opts := new(globalOptions)

	command := &cobra.Command{
		Use:           "fedhost",
		Short:         "Compute the Host header of outbound federation requests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("default-port") {
				if v, ok := os.LookupEnv(defaultPortEnv); ok {
					port, err := strconv.ParseUint(v, 10, 16)
					if err != nil {
						return fmt.Errorf("parse %s: %w", defaultPortEnv, err)
					}
					opts.defaultPort = uint16(port)
				}
			}

			lvl := slog.LevelInfo
			if opts.verbose {
				lvl = slog.LevelDebug
			}
			switch opts.logFormat {
			case "console":
				opts.logger = log.NewConsole(cmd.ErrOrStderr(), lvl)
			case "dev":
				opts.logger = log.NewDev(cmd.ErrOrStderr(), lvl)
			case "none":
				opts.logger = log.Noop
			default:
				return fmt.Errorf("unknown log format %q", opts.logFormat)
			}
			return nil
		},
	}
	command.PersistentFlags().Uint16VarP(&opts.defaultPort, "default-port", "p", fedhost.DefaultPort,
		"port appended to federation targets without one (env "+defaultPortEnv+")")
	command.PersistentFlags().StringVar(&opts.logFormat, "log", "console", "log format: console, dev or none")
	command.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log successful installs too")

	command.AddCommand(
		newResolveCommand(opts),
		newPatchCommand(opts),
		newVersionCommand(),
	)
	return command
}

func main() {
	if err := newMainCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fedhost:", err)
		os.Exit(1)
	}
}
