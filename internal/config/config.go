// Package config loads runtime settings from the environment (optionally via
// a .env file) and an optional TOML file that overrides them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the resolved configuration.
type Config struct {
	Port             string
	LogLevel         string
	ClientOrigin     string
	JWTSecret        string
	JWTExpiresDays   int
	CookieName       string
	Production       bool
	AnswersFile      string
	AllowedFile      string
	WordsDB          string
	DailySalt        string
	SessionTTL       time.Duration
	AllowFixedAnswer bool
}

// FileConfig mirrors Config for the TOML file. Unset keys keep the
// environment value.
type FileConfig struct {
	Server struct {
		Port             *string `toml:"port"`
		LogLevel         *string `toml:"log-level"`
		ClientOrigin     *string `toml:"client-origin"`
		SessionTTL       *string `toml:"session-ttl"`
		AllowFixedAnswer *bool   `toml:"allow-fixed-answer"`
	} `toml:"server"`
	Words struct {
		AnswersFile *string `toml:"answers-file"`
		AllowedFile *string `toml:"allowed-file"`
		DB          *string `toml:"db"`
		DailySalt   *string `toml:"daily-salt"`
	} `toml:"words"`
}

// Load reads .env (if present), the environment, then the TOML file at path.
// An empty path or a missing file is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := FromEnv()
	if path == "" {
		path = os.Getenv("WORDLE_CONFIG")
	}
	if path == "" {
		return cfg, nil
	}
	fc, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.apply(fc); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv builds a Config from environment variables and defaults.
func FromEnv() Config {
	return Config{
		Port:             getEnv("PORT", "5175"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ClientOrigin:     getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		JWTSecret:        getEnv("JWT_SECRET", "dev_secret_change_me"),
		JWTExpiresDays:   getEnvInt("JWT_EXPIRES_DAYS", 14),
		CookieName:       getEnv("COOKIE_NAME", "wordle_session"),
		Production:       os.Getenv("NODE_ENV") == "production",
		AnswersFile:      os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:      os.Getenv("WORDS_ALLOWED_FILE"),
		WordsDB:          os.Getenv("WORDS_DB"),
		DailySalt:        getEnv("DAILY_SALT", "local_dev_salt"),
		SessionTTL:       getEnvDuration("SESSION_TTL", 24*time.Hour),
		AllowFixedAnswer: getEnvBool("ALLOW_FIXED_ANSWER", false),
	}
}

// LoadFile decodes a TOML config. A missing file yields an empty FileConfig.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fc, nil
		}
		return fc, fmt.Errorf("failed to stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fc, fmt.Errorf("failed to decode config: %w", err)
	}
	return fc, nil
}

func (c *Config) apply(fc FileConfig) error {
	setString(&c.Port, fc.Server.Port)
	setString(&c.LogLevel, fc.Server.LogLevel)
	setString(&c.ClientOrigin, fc.Server.ClientOrigin)
	if fc.Server.AllowFixedAnswer != nil {
		c.AllowFixedAnswer = *fc.Server.AllowFixedAnswer
	}
	if fc.Server.SessionTTL != nil {
		d, err := time.ParseDuration(*fc.Server.SessionTTL)
		if err != nil {
			return fmt.Errorf("session-ttl: %w", err)
		}
		c.SessionTTL = d
	}
	setString(&c.AnswersFile, fc.Words.AnswersFile)
	setString(&c.AllowedFile, fc.Words.AllowedFile)
	setString(&c.WordsDB, fc.Words.DB)
	setString(&c.DailySalt, fc.Words.DailySalt)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return n
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(k)); err == nil {
		return b
	}
	return def
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(k)); err == nil {
		return d
	}
	return def
}
