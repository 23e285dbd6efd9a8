// Package config loads service configuration from struct defaults, an
// optional YAML file and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"thisorthat/internal/preference"
)

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/thisorthat/config.yaml",
}

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Quiz     QuizConfig     `koanf:"quiz"`
	Scoring  ScoringConfig  `koanf:"scoring"`
	Auth     AuthConfig     `koanf:"auth"`
}

type ServerConfig struct {
	Port        int      `koanf:"port"`
	Mode        string   `koanf:"mode"`
	CORSOrigins []string `koanf:"cors_origins"`
}

type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type DatasetConfig struct {
	// Path is imported on startup when the design store is empty.
	Path      string `koanf:"path"`
	RulesPath string `koanf:"rules_path"`
}

type QuizConfig struct {
	Rounds      int           `koanf:"rounds"`
	SessionTTL  time.Duration `koanf:"session_ttl"`
	MaxSessions int           `koanf:"max_sessions"`
}

type ScoringConfig struct {
	StrongThreshold    float64 `koanf:"strong_threshold"`
	ModerateThreshold  float64 `koanf:"moderate_threshold"`
	MaxRecommendations int     `koanf:"max_recommendations"`
}

func (s ScoringConfig) Policy() preference.Policy {
	return preference.Policy{
		StrongThreshold:    s.StrongThreshold,
		ModerateThreshold:  s.ModerateThreshold,
		MaxRecommendations: s.MaxRecommendations,
	}
}

type AuthConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"`
	AdminEmail        string        `koanf:"admin_email"`
	AdminPasswordHash string        `koanf:"admin_password_hash"`
	TokenTTL          time.Duration `koanf:"token_ttl"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Mode:        "release",
			CORSOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			AutoMigrate:     true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Quiz: QuizConfig{
			Rounds:      10,
			SessionTTL:  2 * time.Hour,
			MaxSessions: 10000,
		},
		Scoring: ScoringConfig{
			StrongThreshold:    preference.DefaultStrongThreshold,
			ModerateThreshold:  preference.DefaultModerateThreshold,
			MaxRecommendations: preference.DefaultMaxRecommendations,
		},
		Auth: AuthConfig{
			TokenTTL: time.Hour,
		},
	}
}

var envMappings = map[string]string{
	"port":                        "server.port",
	"gin_mode":                    "server.mode",
	"cors_origins":                "server.cors_origins",
	"postgres_url":                "database.url",
	"db_max_open_conns":           "database.max_open_conns",
	"db_max_idle_conns":           "database.max_idle_conns",
	"db_conn_max_lifetime":        "database.conn_max_lifetime",
	"db_auto_migrate":             "database.auto_migrate",
	"log_level":                   "logging.level",
	"log_format":                  "logging.format",
	"dataset_path":                "dataset.path",
	"tag_rules_path":              "dataset.rules_path",
	"quiz_rounds":                 "quiz.rounds",
	"quiz_session_ttl":            "quiz.session_ttl",
	"quiz_max_sessions":           "quiz.max_sessions",
	"scoring_strong_threshold":    "scoring.strong_threshold",
	"scoring_moderate_threshold":  "scoring.moderate_threshold",
	"scoring_max_recommendations": "scoring.max_recommendations",
	"jwt_secret":                  "auth.jwt_secret",
	"admin_email":                 "auth.admin_email",
	"admin_password_hash":         "auth.admin_password_hash",
	"jwt_token_ttl":               "auth.token_ttl",
}

// envTransform maps known flat environment names to config keys and drops
// everything else.
func envTransform(key string) string {
	return envMappings[strings.ToLower(key)]
}

// Load builds the configuration. A .env file in the working directory is
// read first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := splitList(k, "server.cors_origins"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// splitList turns a comma separated env value into a string slice.
func splitList(k *koanf.Koanf, path string) error {
	s, ok := k.Get(path).(string)
	if !ok {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if err := k.Set(path, out); err != nil {
		return fmt.Errorf("failed to set %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Quiz.Rounds < 1 {
		return fmt.Errorf("quiz.rounds must be at least 1")
	}
	if c.Quiz.SessionTTL <= 0 {
		return fmt.Errorf("quiz.session_ttl must be positive")
	}
	if c.Quiz.MaxSessions < 1 {
		return fmt.Errorf("quiz.max_sessions must be at least 1")
	}
	if err := c.Scoring.Policy().Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	return nil
}
