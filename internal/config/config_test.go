package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/jlundholm/swish-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SWISH_PRIMARY__ENV", "test")
	t.Setenv("SWISH_CLIENT__MERCHANT_NUMBER", "1231181189")
	t.Setenv("SWISH_CLIENT__CERT_PATH", "/certs/test_cert.p12")
	t.Setenv("SWISH_CLIENT__ROOT_CERT_PATH", "/certs/root_cert.der")
	t.Setenv("SWISH_CLIENT__PASSPHRASE", "swish")
	t.Setenv("SWISH_DEMO__AMOUNT", "100")
	t.Setenv("SWISH_DEMO__CALLBACK_URL", "https://example.com/api/swishcb/paymentrequests")
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SWISH_CLIENT__TIMEOUT", "10s")
	t.Setenv("SWISH_LOGGER__LEVEL", "debug")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Primary.Env)
	assert.Equal(t, "1231181189", cfg.Client.MerchantNumber)
	assert.Equal(t, "/certs/test_cert.p12", cfg.Client.CertPath)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 100.0, cfg.Demo.Amount)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadConfig_MissingMerchantNumber(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SWISH_CLIENT__MERCHANT_NUMBER", "")

	_, err := config.LoadConfig()

	assert.Error(t, err)
}

func TestLoggerConfig_NewLogger(t *testing.T) {
	logger := config.LoggerConfig{Level: "warn"}.NewLogger()

	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(nil, slog.LevelInfo))
	assert.True(t, logger.Enabled(nil, slog.LevelWarn))
}
