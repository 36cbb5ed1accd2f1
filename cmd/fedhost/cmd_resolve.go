package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/fedhost"
	"github.com/ghettovoice/fedhost/target"
)

var errResolveFailed = errors.New("some targets could not be resolved")

func newResolveCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve URI...",
		Short: "Print the Host header value for each destination URI",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rslvr := fedhost.NewResolver(&fedhost.ResolverOptions{DefaultPort: opts.defaultPort})

			var failed bool
			for _, arg := range args {
				tgt, err := target.Parse(arg)
				if err == nil {
					var res fedhost.Resolution
					if res, err = rslvr.Resolve(tgt); err == nil {
						fmt.Fprintln(cmd.OutOrStdout(), res.Host)
						continue
					}
				}
				failed = true
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, err)
			}
			if failed {
				return errResolveFailed
			}
			return nil
		},
	}
}
