package preflight

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckLibraryFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "library.xml")
	if err := os.WriteFile(path, []byte("<DJ_PLAYLISTS/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	if result := CheckLibraryFile(path); !result.Passed {
		t.Fatalf("expected pass: %+v", result)
	}
	if result := CheckLibraryFile(filepath.Join(dir, "missing.xml")); result.Passed {
		t.Fatalf("expected failure: %+v", result)
	}
	if result := CheckLibraryFile(dir); result.Passed {
		t.Fatalf("directory must not pass: %+v", result)
	}
}

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	if result := CheckDirectoryAccess("Test dir", dir); !result.Passed {
		t.Fatalf("expected pass: %+v", result)
	}
	if result := CheckDirectoryAccess("Test dir", filepath.Join(dir, "missing")); result.Passed {
		t.Fatalf("expected failure: %+v", result)
	}
}

func TestCheckFFmpegMissingBinary(t *testing.T) {
	result := CheckFFmpeg(filepath.Join(t.TempDir(), "no-such-ffmpeg"))
	if result.Passed {
		t.Fatalf("expected failure for missing binary: %+v", result)
	}
	if result.Detail == "" {
		t.Fatal("expected detail describing the failure")
	}
}
