// Package preflight verifies the environment before a conversion run: the
// ffmpeg binary must resolve, the library export must be readable, and the
// directories the tool writes into must be accessible.
package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/noodlecollie/RekordboxFlacToMp3/internal/config"
	"github.com/noodlecollie/RekordboxFlacToMp3/internal/deps"
)

// Result describes one preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckFFmpeg verifies the transcoder binary resolves.
func CheckFFmpeg(override string) Result {
	binary := deps.ResolveFFmpegPath(override)
	statuses := deps.CheckBinaries([]deps.Requirement{{
		Name:        "FFmpeg",
		Command:     binary,
		Description: "Required for FLAC to MP3 conversion",
	}})
	status := statuses[0]
	if !status.Available {
		return Result{Name: "FFmpeg", Detail: status.Detail}
	}
	return Result{Name: "FFmpeg", Passed: true, Detail: binary}
}

// CheckLibraryFile verifies the library export exists and is a regular file.
func CheckLibraryFile(path string) Result {
	const name = "Library file"
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.Mode().IsRegular() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not a regular file)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// Run evaluates the standard checks for a conversion run. inputPath may be
// empty when no library file is involved (e.g. the status command).
func Run(cfg *config.Config, inputPath string) []Result {
	results := []Result{CheckFFmpeg(cfg.FFmpeg.Binary)}
	if inputPath != "" {
		results = append(results, CheckLibraryFile(inputPath))
	}
	if cfg.History.Enabled {
		if err := os.MkdirAll(cfg.History.Dir, 0o755); err == nil {
			results = append(results, CheckDirectoryAccess("History directory", cfg.History.Dir))
		} else {
			results = append(results, Result{Name: "History directory", Detail: fmt.Sprintf("%s (error: %v)", cfg.History.Dir, err)})
		}
	}
	return results
}
