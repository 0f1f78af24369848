package config

import "time"

// Fallback values applied by applyDefaults when no configuration source
// provides an explicit value.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "go-note-keeper"
	defaultTokenDuration  = 7 * 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultEnvironment    = "development"
)

// applyDefaults fills zero-valued fields with sane development defaults.
// Secrets (token sign key, DSN) are deliberately left empty so that
// validation can reject a configuration that never received them.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = defaultEnvironment
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
