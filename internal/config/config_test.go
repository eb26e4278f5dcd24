package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/cielo-link-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"CIELO_CREDENTIALS_BASE64": "Zm9vOmJhcg==",
		"APP_ENV":                  "",
		"PORT":                     "",
		"SERVER_URL":               "",
		"CIELO_BASE_URL":           "",
		"CORS_ALLOWED_ORIGINS":     "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, ":3000", cfg.HTTPAddr())
	require.Equal(t, "http://localhost:3000", cfg.PublicBaseURL)
	require.Equal(t, "https://cieloecommerce.cielo.com.br", cfg.CieloBaseURL)
	require.Equal(t, "Zm9vOmJhcg==", cfg.CieloCredentials)
	require.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadRequiresCredentials(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"CIELO_CREDENTIALS_BASE64": "",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "CIELO_CREDENTIALS_BASE64")
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"CIELO_CREDENTIALS_BASE64": "Zm9vOmJhcg==",
		"PORT":                     ":9000",
		"SERVER_URL":               "https://pay.example.com",
		"CIELO_BASE_URL":           "https://sandbox.cieloecommerce.cielo.com.br",
		"CORS_ALLOWED_ORIGINS":     "https://a.example.com, https://b.example.com",
	})
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTPAddr())
	require.Equal(t, "https://pay.example.com", cfg.PublicBaseURL)
	require.Equal(t, "https://sandbox.cieloecommerce.cielo.com.br", cfg.CieloBaseURL)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
}
