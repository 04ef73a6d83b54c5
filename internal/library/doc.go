// Package library models a Rekordbox DJ library export: the collection of
// track records and the playlist tree. Sections are located by element name,
// never by child position, and unknown attributes are preserved so a rewritten
// document loses nothing the tool does not understand.
package library
