// Package mirror implements the in-memory library transformation: discovering
// which playlists need an MP3 mirror, deciding which tracks are eligible for
// conversion, allocating new track IDs, cloning and rewriting track records,
// and keeping playlist membership consistent between originals and mirrors.
//
// The engine mutates the parsed document in place and produces an ordered job
// list for the conversion driver; it never touches the transcoder or the
// serialized form itself.
package mirror
