package config

const (
	defaultHistoryDir = "~/.local/share/rbflac2mp3"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		FFmpeg: FFmpeg{
			TimeoutSeconds: 0,
		},
		History: History{
			Enabled: true,
			Dir:     defaultHistoryDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
