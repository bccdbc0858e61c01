package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EDUBIT_ADDR", "")
	t.Setenv("EDUBIT_API_URL", "")

	cfg := Load()
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EDUBIT_ADDR", ":9999")
	t.Setenv("EDUBIT_API_URL", "https://api.edu.bit")

	cfg := Load()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "https://api.edu.bit", cfg.APIBaseURL)
}
