package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validBaseConfig carries the minimum required fields so that build()'s
// validation passes.
func validBaseConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{TokenSignKey: "sign-key"},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost/freightex"},
		},
		Server: Server{HTTPAddress: "localhost:8080"},
	}
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "sign-key"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost/freightex"}}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://localhost/freightex", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validBaseConfig(),
		&StructuredConfig{App: App{TokenSignKey: "key-from-later-source"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "sign-key", cfg.App.TokenSignKey,
		"earlier sources must take priority over later ones")
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validBaseConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultRateLimitWindow, cfg.RateLimit.Window)
	assert.Equal(t, defaultRateLimitMax, cfg.RateLimit.MaxRequests)
}

func TestBuild_DefaultsDoNotOverrideExplicitValues(t *testing.T) {
	explicit := validBaseConfig()
	explicit.App.TokenIssuer = "custom-issuer"
	explicit.App.TokenDuration = time.Hour

	b := newConfigBuilder()
	b.configs = append(b.configs, explicit)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "custom-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestBuild_ValidationTableTest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing HTTP address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := validBaseConfig()
			tt.mutate(base)

			b := newConfigBuilder()
			b.configs = append(b.configs, base)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
