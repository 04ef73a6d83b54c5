package mirror

import "github.com/noodlecollie/RekordboxFlacToMp3/internal/library"

// Summary holds aggregate document counts.
type Summary struct {
	Tracks    int
	Playlists int
	Mirrors   int
}

// Refresh recomputes the collection's Entries counter from the actual track
// count and returns aggregate totals for reporting.
func Refresh(doc *library.Document) Summary {
	doc.Collection.Entries = len(doc.Collection.Tracks)

	summary := Summary{Tracks: len(doc.Collection.Tracks)}
	for _, playlist := range doc.PlaylistRoot().Children {
		summary.Playlists++
		if IsMirror(playlist.Name) {
			summary.Mirrors++
		}
	}
	return summary
}
