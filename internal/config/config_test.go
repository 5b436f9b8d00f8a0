package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_PORT", "SESSION_STORE", "GIN_MODE", "PORT", "BCRYPT_COST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "redis", cfg.SessionStore)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 0, cfg.BcryptCost)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/recipes.db")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/recipes.db", cfg.DBPath)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")
	assert.Equal(t, 0, Load().BcryptCost)
}
