package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"registration": map[string]any{
			"tokenTTL":            "24h",
			"maxConfirmAttempts":  5,
			"confirmationBaseUrl": "",
		},
		"pubsub": map[string]any{
			"topicUrl": "",
		},
		"secretKey": map[string]any{
			"admin": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REGISTRATION_TOKENTTL", want: "registration.tokenTTL"},
		{envKey: "REGISTRATION_MAXCONFIRMATTEMPTS", want: "registration.maxConfirmAttempts"},
		{envKey: "PUBSUB_TOPICURL", want: "pubsub.topicUrl"},
		{envKey: "SECRETKEY_ADMIN", want: "secretKey.admin"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlContent := `
env:
  env: test
  serviceName: registrar
http:
  port: 8080
storage:
  driver: memory
registration:
  tokenTTL: 24h
  maxConfirmAttempts: 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlContent), 0o600))
	t.Chdir(dir)
	t.Setenv("REGISTRATION_MAXCONFIRMATTEMPTS", "3")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "registrar", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Registration)
	assert.Equal(t, 24*time.Hour, cfg.Registration.TokenTTL)
	assert.Equal(t, 3, cfg.Registration.MaxConfirmAttempts)
	assert.Equal(t, "memory", cfg.Storage.Driver)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "bcrypt", cfg.Auth.PasswordAlgorithm)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultSweepInterval, cfg.Registration.SweepInterval)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
}
