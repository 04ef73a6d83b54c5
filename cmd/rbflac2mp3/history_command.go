package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noodlecollie/RekordboxFlacToMp3/internal/history"
)

func newHistoryCommand(cctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversion attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("conversion history is disabled in the configuration")
			}

			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No conversions recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					rec.Status,
					rec.Source,
					rec.Destination,
				})
			}
			headers := []string{"Time", "Status", "Source", "Destination"}
			fmt.Fprintln(out, renderTable(headers, rows, nil))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of records to show")
	return cmd
}
