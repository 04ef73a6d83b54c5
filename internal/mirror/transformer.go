package mirror

import (
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/noodlecollie/RekordboxFlacToMp3/internal/fileutil"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/library"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/logging"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/pathcodec"
)

// Job describes one pending conversion as a source/destination path pair.
// Both paths are plain filesystem paths, already decoded.
type Job struct {
	Source      string
	Destination string
}

// Result reports what a transformation pass did to the document.
type Result struct {
	// Jobs holds the pending conversions in discovery order. Jobs are keyed
	// by decoded source path: when two tracks decode to the same path, the
	// later one replaces the earlier job in place.
	Jobs []Job
	// Created is the number of new track records appended to the collection.
	Created int
	// SkippedMissing counts eligible tracks whose source file was absent.
	SkippedMissing int
	// SkippedUnreferenced counts eligible tracks no non-mirror playlist
	// references. Converting those would spend transcoder time on files
	// nothing points at.
	SkippedUnreferenced int
}

// Transformer walks the collection and gives every eligible lossless track a
// lossy mirror: a cloned track record, entries in the mirror playlists, and a
// conversion job. The document is mutated in place.
type Transformer struct {
	logger *slog.Logger
	exists func(string) bool
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithExistsFunc overrides the on-disk existence check. Tests use this to
// avoid touching the filesystem.
func WithExistsFunc(fn func(string) bool) Option {
	return func(t *Transformer) {
		if fn != nil {
			t.exists = fn
		}
	}
}

// NewTransformer constructs a Transformer.
func NewTransformer(logger *slog.Logger, opts ...Option) *Transformer {
	if logger == nil {
		logger = logging.NewNop()
	}
	t := &Transformer{logger: logger, exists: fileutil.IsFile}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform runs the full pass over the collection. Mirror playlists must
// already exist (see EnsureMirrors). Tracks appended during the pass are not
// revisited; membership is decided from the original track's ID before the
// clone is created.
func (t *Transformer) Transform(doc *library.Document) *Result {
	index := NewIndex(doc.PlaylistRoot())
	result := &Result{}
	jobIndex := make(map[string]int)

	nextID := doc.Collection.Entries + 1
	originals := doc.Collection.Tracks

	for _, track := range originals {
		// Extension check runs on the raw location; the escape set never
		// touches extension characters.
		if !strings.EqualFold(filepath.Ext(track.Location), SourceExt) {
			continue
		}

		source := pathcodec.Decode(track.Location)
		if !t.exists(source) {
			t.logger.Warn("source file not found on disk, skipping track",
				slog.String("path", source), slog.String("track_id", track.ID))
			result.SkippedMissing++
			continue
		}

		var members []*library.Playlist
		for _, playlist := range index.PlaylistsContaining(track.ID) {
			if IsMirror(playlist.Name) {
				continue
			}
			members = append(members, playlist)
		}
		if len(members) == 0 {
			result.SkippedUnreferenced++
			continue
		}

		newID := strconv.Itoa(nextID)
		nextID++

		for _, playlist := range members {
			target := index.ByName(MirrorName(playlist.Name))
			if target == nil {
				t.logger.Warn("mirror playlist missing, dropping entry",
					slog.String("playlist", playlist.Name), slog.String("track_id", newID))
				continue
			}
			target.AppendEntry(newID)
		}

		destination := fileutil.ReplaceExt(source, TargetExt)
		if i, ok := jobIndex[source]; ok {
			t.logger.Warn("duplicate source path, replacing earlier job",
				slog.String("path", source))
			result.Jobs[i].Destination = destination
		} else {
			jobIndex[source] = len(result.Jobs)
			result.Jobs = append(result.Jobs, Job{Source: source, Destination: destination})
		}

		clone := track.Clone()
		clone.ID = newID
		clone.Location = pathcodec.EncodeLocation(destination)
		clone.Kind = TargetKind
		clone.BitRate = TargetBitRate
		doc.Collection.Append(clone)
		result.Created++

		t.logger.Debug("mirrored track",
			slog.String("source", source),
			slog.String("destination", destination),
			slog.String("new_id", newID))
	}

	doc.Collection.Entries = nextID - 1
	return result
}
