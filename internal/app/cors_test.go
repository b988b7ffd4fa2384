package app

import (
	"testing"

	"github.com/devfolio/core/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsConfig_ProductionRestrictsOrigins(t *testing.T) {
	cfg := &config.AppConfig{
		Env:            "production",
		AllowedOrigins: []string{"https://portfolio.example.com", "https://*.preview.example.com"},
	}
	corsCfg := corsConfig(cfg)
	require.NotNil(t, corsCfg.AllowOriginFunc)

	assert.True(t, corsCfg.AllowOriginFunc("https://portfolio.example.com"))
	assert.True(t, corsCfg.AllowOriginFunc("https://pr-42.preview.example.com"))
	assert.False(t, corsCfg.AllowOriginFunc("https://evil.example.net"))
	assert.False(t, corsCfg.AllowOriginFunc("https://portfolio.example.com.evil.net"))
}

func TestCorsConfig_DevelopmentAllowsAll(t *testing.T) {
	cfg := &config.AppConfig{
		Env:            "development",
		AllowedOrigins: []string{"https://portfolio.example.com"},
	}
	corsCfg := corsConfig(cfg)
	require.NotNil(t, corsCfg.AllowOriginFunc)
	assert.True(t, corsCfg.AllowOriginFunc("http://localhost:3000"))
}

func TestCorsConfig_NoOriginsAllowsAll(t *testing.T) {
	corsCfg := corsConfig(&config.AppConfig{Env: "production"})
	require.NotNil(t, corsCfg.AllowOriginFunc)
	assert.True(t, corsCfg.AllowOriginFunc("https://anything.example.com"))
}

func TestExtractOriginHost(t *testing.T) {
	assert.Equal(t, "example.com", extractOriginHost("https://example.com"))
	assert.Equal(t, "example.com:3000", extractOriginHost("http://example.com:3000"))
	assert.Equal(t, "example.com", extractOriginHost("example.com"))
}

func TestMatchOriginPattern(t *testing.T) {
	assert.True(t, matchOriginPattern("example.com", "example.com"))
	assert.True(t, matchOriginPattern("*.example.com", "app.example.com"))
	assert.False(t, matchOriginPattern("*.example.com", "example.net"))
	assert.False(t, matchOriginPattern("example.com", "sub.example.com"))
}
