package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "JWT_EXPIRES_DAYS", "SESSION_TTL", "ALLOW_FIXED_ANSWER", "NODE_ENV"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 14, cfg.JWTExpiresDays)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.AllowFixedAnswer)
	assert.False(t, cfg.Production)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRES_DAYS", "3")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("ALLOW_FIXED_ANSWER", "true")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("WORDS_DB", "/tmp/w.db")

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 3, cfg.JWTExpiresDays)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.AllowFixedAnswer)
	assert.True(t, cfg.Production)
	assert.Equal(t, "/tmp/w.db", cfg.WordsDB)
}

func TestLoad_TOMLOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("WORDLE_CONFIG", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = "9090"
session-ttl = "2h"
allow-fixed-answer = true

[words]
answers-file = "answers.txt"
daily-salt = "pepper"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.AllowFixedAnswer)
	assert.Equal(t, "answers.txt", cfg.AnswersFile)
	assert.Equal(t, "pepper", cfg.DailySalt)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "5175", cfg.Port)
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport="), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[server]\nsession-ttl = \"soon\"\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
