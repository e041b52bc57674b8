package config

import "time"

// ApplyDefaults fills in sensible defaults for every unset field of cfg.
// It never overrides a value that has been set explicitly.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15 * time.Second
	}

	if cfg.Feed.Path == "" {
		cfg.Feed.Path = "data.json"
	}

	if cfg.Cache.KeyPrefix == "" {
		cfg.Cache.KeyPrefix = "schemetrack:"
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 15 * time.Minute
	}

	if cfg.Sheets.TokenURL == "" {
		cfg.Sheets.TokenURL = "https://accounts.zoho.in/oauth/v2/token"
	}
	if cfg.Sheets.APIBaseURL == "" {
		cfg.Sheets.APIBaseURL = "https://sheet.zoho.in/api/v2"
	}
	if cfg.Sheets.Worksheet == "" {
		cfg.Sheets.Worksheet = "dashboard"
	}
	if cfg.Sheets.Timeout == 0 {
		cfg.Sheets.Timeout = 30 * time.Second
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stdout"}
	}
}

// NewDefaultConfig returns a Config populated entirely with defaults.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
