package main

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-scopeguard/internal/bench"
)

func newInteractiveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Run clean first, then ask for the next mode until 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(p *process) error {
				svc, err := p.runService()
				if err != nil {
					return err
				}
				return bench.Interactive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), svc)
			})
		},
	}
}
