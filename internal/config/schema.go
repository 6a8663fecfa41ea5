package config

// Config holds pdftoolbox configuration.
// Loaded from ./config.yaml or ~/.pdftoolbox/config.yaml.
type Config struct {
	Server ServerCfg `mapstructure:"server" yaml:"server"`
	Limits LimitsCfg `mapstructure:"limits" yaml:"limits"`
}

// ServerCfg configures the HTTP listener.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// LimitsCfg bounds what a single request may upload or ask for.
type LimitsCfg struct {
	// MaxUploadBytes is the per-file size ceiling.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" yaml:"max_upload_bytes"`
	// MaxMergeFiles is the maximum number of inputs for a merge.
	MaxMergeFiles int `mapstructure:"max_merge_files" yaml:"max_merge_files"`
	// RequestTimeoutSeconds bounds a whole request, uploads included.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" yaml:"request_timeout_seconds"`
}

// MinMergeFiles is not configurable: merging fewer than two documents is
// never meaningful.
const MinMergeFiles = 2

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "8080",
		},
		Limits: LimitsCfg{
			MaxUploadBytes:        100 << 20, // 100 MiB
			MaxMergeFiles:         20,
			RequestTimeoutSeconds: 300,
		},
	}
}
