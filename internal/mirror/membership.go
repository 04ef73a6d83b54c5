package mirror

import (
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/library"
)

// Index answers membership queries against the playlist section. Lookups scan
// the live playlist tree, so playlists appended after construction are seen.
//
// Scans are linear on purpose: the transformer queries once per eligible
// track in a single pass, and result order must follow section order.
type Index struct {
	root *library.Playlist
}

// NewIndex creates an index over the playlists under the given root node.
func NewIndex(root *library.Playlist) *Index {
	return &Index{root: root}
}

// PlaylistsContaining returns every playlist whose entries reference the
// given track ID, in section order. The result may be empty.
func (ix *Index) PlaylistsContaining(trackID string) []*library.Playlist {
	var found []*library.Playlist
	for _, playlist := range ix.root.Children {
		for _, entry := range playlist.Tracks {
			if entry.Key == trackID {
				found = append(found, playlist)
				break
			}
		}
	}
	return found
}

// ByName returns the playlist with the exact given name, or nil.
func (ix *Index) ByName(name string) *library.Playlist {
	for _, playlist := range ix.root.Children {
		if playlist.Name == name {
			return playlist
		}
	}
	return nil
}
