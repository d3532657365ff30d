package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Environment variables recognized as configuration overrides.
const (
	EnvAPIKey   = "STEAMKEY"
	EnvSteamID  = "PLAYER_ID"
	EnvCacheDir = "STEAMGEN_CACHE"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Output      OutputConfig      `toml:"output"`
	Client      ClientConfig      `toml:"client"`
	Database    DatabaseConfig    `toml:"database"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	Steam SteamConfig `toml:"steam"`
}

// SteamConfig contains Steam Web API credentials and the default account.
type SteamConfig struct {
	APIKey  string `toml:"api_key"`
	SteamID string `toml:"steam_id"`
}

// OutputConfig contains dataset output settings.
type OutputConfig struct {
	Dir string `toml:"dir"`
}

// ClientConfig contains HTTP client tuning for the Steam Web API.
type ClientConfig struct {
	MinIntervalMS   int `toml:"min_interval_ms"`
	TimeoutSeconds  int `toml:"timeout_seconds"`
	CooldownSeconds int `toml:"cooldown_seconds"`
}

// MinInterval returns the minimum spacing between requests as a [time.Duration].
func (c ClientConfig) MinInterval() time.Duration {
	return time.Duration(c.MinIntervalMS) * time.Millisecond
}

// Timeout returns the per-request timeout as a [time.Duration].
func (c ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CooldownDuration returns the rate-limit cooldown as a [time.Duration].
func (c ClientConfig) CooldownDuration() time.Duration {
	return time.Duration(c.CooldownSeconds) * time.Second
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path            string `toml:"path"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	CacheTTLMinutes int    `toml:"cache_ttl_minutes"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays environment variables onto the config.
//
// STEAMKEY and PLAYER_ID take precedence over file values so the binary can run without a config file.
func ApplyEnv(config *Config) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		config.Credentials.Steam.APIKey = key
	}
	if id := os.Getenv(EnvSteamID); id != "" {
		config.Credentials.Steam.SteamID = id
	}
	if dir := os.Getenv(EnvCacheDir); dir != "" {
		config.Database.Path = dir
	}
}
