package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/noodlecollie/RekordboxFlacToMp3/internal/services"
)

var commandContext = exec.CommandContext

// DefaultBitRate is used when a request does not set one.
const DefaultBitRate = "320k"

// Request describes one conversion.
type Request struct {
	Source      string
	Destination string
	// BitRate is the target audio bit rate, e.g. "320k".
	BitRate string
	// CopyMetadata asks ffmpeg to carry tags from source to destination.
	CopyMetadata bool
}

// Client defines transcoder behaviour. Convert returns the combined
// stdout/stderr text so failures can be reported with the tool's own
// diagnostics; the text is never parsed.
type Client interface {
	Convert(ctx context.Context, req Request) (string, error)
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the ffmpeg command-line transcoder. Invocations are plain
// argument vectors; no shell is ever involved.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Convert transcodes one file. A non-zero exit is returned as an
// ErrExternalTool-tagged error alongside the captured output.
func (c *CLI) Convert(ctx context.Context, req Request) (string, error) {
	if req.Source == "" {
		return "", errors.New("source path required")
	}
	if req.Destination == "" {
		return "", errors.New("destination path required")
	}

	bitRate := req.BitRate
	if bitRate == "" {
		bitRate = DefaultBitRate
	}

	args := []string{"-i", req.Source, "-ab", bitRate}
	if req.CopyMetadata {
		args = append(args, "-map_metadata", "0", "-id3v2_version", "3")
	}
	args = append(args, req.Destination, "-nostdin")

	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		return output.String(), services.Wrap(services.ErrExternalTool, "ffmpeg", "convert", req.Destination, err)
	}
	return output.String(), nil
}

var _ Client = (*CLI)(nil)
