package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "TODOLISTS_CONFIG"

var defaultLocations = []string{"todolists.yaml", "todolists.yml", ".todolists.yaml"}

// Config holds everything the service needs at startup
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
}

type DatabaseConfig struct {
	// Driver is either "postgres" or "sqlite"
	Driver string `yaml:"driver"`
	URL    string `yaml:"url"`
	// MaxOpenConns is ignored when zero
	MaxOpenConns int `yaml:"max_open_conns"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// AuthConfig enables bearer token checks on mutating routes when Secret is set.
type AuthConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

// Enabled reports whether tokens are required.
func (a AuthConfig) Enabled() bool {
	return a.Secret != ""
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used for local development.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver: "sqlite",
			URL:    "todolists.db",
		},
		Server: ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Auth: AuthConfig{
			Issuer:   "todolists",
			Audience: "todolists-api",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// the environment, in that order. An empty path falls back to
// TODOLISTS_CONFIG and then the default file locations.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("database url is required")
	}
	if c.Auth.Enabled() && (c.Auth.Issuer == "" || c.Auth.Audience == "") {
		return fmt.Errorf("auth issuer and audience are required when a secret is set")
	}
	return nil
}

func findConfigFile() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	for _, loc := range defaultLocations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

func applyEnv(cfg *Config) {
	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.URL, "DB_URL")
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Auth.Secret, "JWT_SECRET_KEY")
	setString(&cfg.Auth.Issuer, "JWT_ISSUER")
	setString(&cfg.Auth.Audience, "JWT_AUDIENCE")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = nil
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.Server.AllowedOrigins = append(cfg.Server.AllowedOrigins, origin)
			}
		}
	}
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}
