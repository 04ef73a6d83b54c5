package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/noodlecollie/RekordboxFlacToMp3/internal/config"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/library"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/mirror"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <library.xml>",
		Short: "Inspect the playlists in a library export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			doc, err := library.ParseFile(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			root := doc.PlaylistRoot()

			fmt.Fprintf(out, "Collection: %d track(s) (Entries attribute: %d)\n",
				len(doc.Collection.Tracks), doc.Collection.Entries)

			rows := make([][]string, 0, len(root.Children))
			for _, playlist := range root.Children {
				rows = append(rows, []string{
					playlist.Name,
					strconv.Itoa(len(playlist.Tracks)),
					playlist.Entries,
					yesNo(mirror.IsMirror(playlist.Name)),
				})
			}

			headers := []string{"Playlist", "Tracks", "Entries attr", "Mirror"}
			aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignLeft}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
