package mirror

import "strings"

const (
	// Suffix is appended to a playlist name to form its mirror's name. It must
	// match exactly on both creation and lookup.
	Suffix = "_MP3"

	// SourceExt is the extension of tracks eligible for conversion.
	SourceExt = ".flac"
	// TargetExt replaces SourceExt on destination paths.
	TargetExt = ".mp3"
	// TargetKind is the format label written onto mirrored tracks.
	TargetKind = "MP3 File"
	// TargetBitRate is the bit rate written onto mirrored tracks.
	TargetBitRate = "320"
)

// IsMirror reports whether a playlist name denotes a mirror playlist.
func IsMirror(name string) bool {
	return strings.HasSuffix(name, Suffix)
}

// MirrorName returns the mirror playlist name for a source playlist.
func MirrorName(name string) string {
	return name + Suffix
}
