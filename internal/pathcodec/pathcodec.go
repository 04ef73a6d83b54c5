// Package pathcodec converts between the escaped location strings stored in a
// Rekordbox library export and plain filesystem paths.
//
// The escape sets are intentionally asymmetric: Decode maps %27 back to an
// apostrophe, while Encode maps a comma to %27. This mirrors the observed
// behaviour of existing library exports and must not be "corrected" without
// confirming the real on-disk encoding rules.
package pathcodec

import "strings"

// LocatorPrefix marks a local-filesystem reference inside a Location field.
const LocatorPrefix = "file://localhost/"

var decoder = strings.NewReplacer(
	"%20", " ",
	"%26", "&",
	"%27", "'",
)

var encoder = strings.NewReplacer(
	" ", "%20",
	"&", "%26",
	",", "%27",
)

// Decode reverses the restricted escape set and strips the locator prefix if
// present, yielding a path suitable for filesystem checks. Non-ASCII
// characters and any other punctuation pass through untouched.
func Decode(location string) string {
	path := decoder.Replace(location)
	return strings.TrimPrefix(path, LocatorPrefix)
}

// Encode applies the restricted escape set to a filesystem path. It does not
// add the locator prefix; see EncodeLocation.
func Encode(path string) string {
	return encoder.Replace(path)
}

// EncodeLocation escapes a filesystem path and prepends the locator prefix,
// producing a value suitable for a track's Location field.
func EncodeLocation(path string) string {
	return LocatorPrefix + Encode(path)
}
