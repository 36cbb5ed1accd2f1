package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/fedhost"
	"github.com/ghettovoice/fedhost/header"
	"github.com/ghettovoice/fedhost/target"
)

func newPatchCommand(opts *globalOptions) *cobra.Command {
	var (
		rawHeaders []string
		showStats  bool
	)

	command := &cobra.Command{
		Use:   "patch URI",
		Short: "Install the Host header into a header block and print it",
		Long: "Builds a header block from -H flags, installs the Host header resolved for URI " +
			"and prints the result. A failed install leaves the block as it was.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hdrs := new(header.Header)
			for _, raw := range rawHeaders {
				name, value, ok := strings.Cut(raw, ":")
				if !ok || strings.TrimSpace(name) == "" {
					return fmt.Errorf("malformed header %q, want \"Name: value\"", raw)
				}
				hdrs.Add(strings.TrimSpace(name), strings.TrimSpace(value))
			}

			tgt, err := target.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}

			stats := new(fedhost.StatsRecorder)
			res := opts.installer(stats).Install(cmd.Context(), hdrs, tgt)

			fmt.Fprint(cmd.OutOrStdout(), hdrs.String())
			if showStats {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(stats.Report()); err != nil {
					return fmt.Errorf("encode stats: %w", err)
				}
			}
			if !res.OK() {
				return fmt.Errorf("install Host header: %w", res.Err)
			}
			return nil
		},
	}
	command.Flags().StringArrayVarP(&rawHeaders, "header", "H", nil, "existing header as \"Name: value\", repeatable")
	command.Flags().BoolVar(&showStats, "stats", false, "print install stats as JSON")
	return command
}
