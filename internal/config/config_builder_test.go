package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenSignKey, cfg.Auth.TokenSignKey)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.Auth.TokenDuration)
	assert.Equal(t, DefaultCORSOrigin, cfg.Server.CORSOrigin)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

func TestBuild_EnvWinsOverDefaults(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("AUTH_TOKEN_DURATION", "1h")

	cfg, err := newConfigBuilder().withEnv().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, ":9999", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	// untouched fields fall through to defaults
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
}

func TestBuild_JSONSource(t *testing.T) {
	jsonPath := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"auth": {"token_sign_key": "json-secret", "token_duration": "2h"},
		"server": {"http_address": ":7777"}
	}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(payload), 0o600))

	jsonCfg, err := parseJSON(jsonPath)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", jsonCfg.Auth.TokenSignKey)
	assert.Equal(t, 2*time.Hour, jsonCfg.Auth.TokenDuration)
	assert.Equal(t, ":7777", jsonCfg.Server.HTTPAddress)
}

func TestBuild_JSONFileMissing(t *testing.T) {
	_, err := parseJSON("/does/not/exist.json")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenSignKey = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenDuration = 0 },
			wantErr: ErrInvalidAuthConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{
				Auth: Auth{
					TokenSignKey:  "secret",
					TokenIssuer:   "issuer",
					TokenDuration: time.Hour,
				},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
				Server:  Server{HTTPAddress: ":4000"},
			}
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost with port", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip with port", input: "127.0.0.1:4000", want: "127.0.0.1:4000"},
		{name: "empty host", input: ":4000", want: ":4000"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}
