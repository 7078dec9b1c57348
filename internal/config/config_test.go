package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.wynncraft.com", cfg.APIEndpoint)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, []string{"examplePlayer1", "examplePlayer2"}, cfg.Suggestions)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PROFGETTER_API_ENDPOINT", "http://localhost:9000")
	t.Setenv("PROFGETTER_TIMEOUT", "250ms")
	t.Setenv("PROFGETTER_LOG_LEVEL", "debug")
	t.Setenv("PROFGETTER_COLOR", "never")
	t.Setenv("PROFGETTER_SUGGESTIONS", "Calluum,Salted")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.APIEndpoint)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, []string{"Calluum", "Salted"}, cfg.Suggestions)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad timeout", "PROFGETTER_TIMEOUT", "soon"},
		{"zero timeout", "PROFGETTER_TIMEOUT", "0s"},
		{"bad level", "PROFGETTER_LOG_LEVEL", "loud"},
		{"bad color", "PROFGETTER_COLOR", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
