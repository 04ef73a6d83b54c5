package library

import "encoding/xml"

// Track is one record in the collection. The four named attributes are the
// ones the transformation rewrites; everything else a library export stores on
// a track travels in Extra and is copied verbatim on clone.
type Track struct {
	ID       string     `xml:"TrackID,attr"`
	Location string     `xml:"Location,attr"`
	Kind     string     `xml:"Kind,attr"`
	BitRate  string     `xml:"BitRate,attr"`
	Extra    []xml.Attr `xml:",any,attr"`
}

// Clone returns a deep copy of the track.
func (t *Track) Clone() *Track {
	clone := *t
	if len(t.Extra) > 0 {
		clone.Extra = make([]xml.Attr, len(t.Extra))
		copy(clone.Extra, t.Extra)
	}
	return &clone
}

// Collection is the ordered set of all tracks plus the Entries counter the
// export carries alongside it.
type Collection struct {
	Entries int      `xml:"Entries,attr"`
	Tracks  []*Track `xml:"TRACK"`
}

// Append adds a track to the end of the collection.
func (c *Collection) Append(t *Track) {
	c.Tracks = append(c.Tracks, t)
}

// Entry is a weak reference from a playlist to a track by ID. Multiple
// playlists may reference the same track.
type Entry struct {
	Key   string     `xml:"Key,attr"`
	Extra []xml.Attr `xml:",any,attr"`
}

// Playlist is one NODE in the playlist tree. For the root node, Children
// holds the actual playlists; for a playlist node, Tracks holds its entries.
type Playlist struct {
	Name     string      `xml:"Name,attr"`
	Type     string      `xml:"Type,attr,omitempty"`
	Key      string      `xml:"Key,attr,omitempty"`
	Entries  string      `xml:"Entries,attr,omitempty"`
	Extra    []xml.Attr  `xml:",any,attr"`
	Tracks   []*Entry    `xml:"TRACK"`
	Children []*Playlist `xml:"NODE"`
}

// AppendEntry adds a track reference to the end of the playlist.
func (p *Playlist) AppendEntry(trackID string) {
	p.Tracks = append(p.Tracks, &Entry{Key: trackID})
}

// PlaylistTree is the PLAYLISTS section. Rekordbox nests the playlists one
// level down, under a single root node.
type PlaylistTree struct {
	Roots []*Playlist `xml:"NODE"`
}

// Document is a parsed DJ library export.
type Document struct {
	XMLName    xml.Name      `xml:"DJ_PLAYLISTS"`
	Version    string        `xml:"Version,attr,omitempty"`
	Product    *Product      `xml:"PRODUCT"`
	Collection *Collection   `xml:"COLLECTION"`
	Playlists  *PlaylistTree `xml:"PLAYLISTS"`
}

// Product is carried through untouched.
type Product struct {
	Extra []xml.Attr `xml:",any,attr"`
}

// PlaylistRoot returns the node whose children are the document's playlists.
// Parse guarantees it exists.
func (d *Document) PlaylistRoot() *Playlist {
	return d.Playlists.Roots[0]
}
