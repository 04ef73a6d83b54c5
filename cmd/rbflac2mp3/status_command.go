package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noodlecollie/RekordboxFlacToMp3/internal/preflight"
)

func newStatusCommand(cctx *commandContext) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report on external dependencies and directory access",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.Run(cfg, inputPath)

			rows := make([][]string, 0, len(results))
			failed := 0
			for _, result := range results {
				state := "ok"
				if !result.Passed {
					state = "FAIL"
					failed++
				}
				rows = append(rows, []string{result.Name, state, result.Detail})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Check", "State", "Detail"}, rows, nil))
			if failed > 0 {
				return fmt.Errorf("%d preflight check(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Library XML file to include in the checks")
	return cmd
}
