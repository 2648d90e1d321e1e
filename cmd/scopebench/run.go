package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-scopeguard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-scopeguard/internal/bench"
	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
	"github.com/jsamuelsen11/go-scopeguard/internal/ports"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		mode   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Perform one benchmark run and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := run.ParseMode(mode)
			if err != nil {
				return err
			}
			if output != outputTable && output != outputJSON {
				return fmt.Errorf("unknown output %q: want %s or %s", output, outputTable, outputJSON)
			}

			return withApp(cmd, opts, func(p *process) error {
				svc, err := p.runService()
				if err != nil {
					return err
				}
				return runOnce(cmd, svc, m, output)
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", run.ModeClean.String(), "run mode: clean or fault")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")
	return cmd
}

func runOnce(cmd *cobra.Command, svc ports.RunService, mode run.Mode, output string) error {
	rec, err := svc.Execute(cmd.Context(), mode)
	if err != nil {
		return fmt.Errorf("%s run: %w", mode, err)
	}

	out := cmd.OutOrStdout()
	if output == outputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.ToRunResponse(rec))
	}
	return bench.Render(out, rec)
}
