// Package fileutil provides small filesystem helpers shared by the
// transformation engine and the CLI.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// IsFile reports whether path exists and refers to a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReplaceExt returns path with its extension replaced by suffix. The
// directory and base name are kept intact; suffix should include its leading
// dot (".mp3") or any other literal tail ("_new.xml").
func ReplaceExt(path, suffix string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix
}
