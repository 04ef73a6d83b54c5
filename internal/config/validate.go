package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}

	if c.FFmpeg.TimeoutSeconds < 0 {
		return fmt.Errorf("ffmpeg.timeout_seconds must not be negative, got %d", c.FFmpeg.TimeoutSeconds)
	}

	if c.History.Enabled && c.History.Dir == "" {
		return fmt.Errorf("history.dir is required when history is enabled")
	}

	return nil
}
