package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	cctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "rbflac2mp3",
		Short:         "Mirrors playlisted FLAC tracks in a Rekordbox library as 320 kbps MP3s",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Override log format (console, json)")

	rootCmd.AddCommand(newConvertCommand(cctx))
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newHistoryCommand(cctx))
	rootCmd.AddCommand(newStatusCommand(cctx))
	rootCmd.AddCommand(newConfigCommand(cctx))

	return rootCmd
}
