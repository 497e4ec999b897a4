package config

import "time"

// Fallback values applied by applyDefaults when no source supplied a value.
const (
	defaultTokenIssuer     = "freightex"
	defaultTokenDuration   = 24 * time.Hour
	defaultRequestTimeout  = 30 * time.Second
	defaultRateLimitWindow = 15 * time.Minute
	defaultRateLimitMax    = 100
)

// applyDefaults fills optional fields that no configuration source provided.
// Required fields (DSN, sign key, listen address) are left empty so that
// validate can reject an unusable configuration.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = defaultRateLimitWindow
	}
	if cfg.RateLimit.MaxRequests == 0 {
		cfg.RateLimit.MaxRequests = defaultRateLimitMax
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

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
