package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Output.Dir != "public/data" {
			t.Errorf("unexpected output dir: %s", config.Output.Dir)
		}
		if config.Client.MinIntervalMS != 200 {
			t.Errorf("unexpected min interval: %d", config.Client.MinIntervalMS)
		}
		if config.Client.TimeoutSeconds != 10 {
			t.Errorf("unexpected timeout: %d", config.Client.TimeoutSeconds)
		}
		if config.Client.CooldownSeconds != 60 {
			t.Errorf("unexpected cooldown: %d", config.Client.CooldownSeconds)
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[credentials.steam]
api_key = "abc123"
steam_id = "76561198000000001"

[output]
dir = "out"

[client]
min_interval_ms = 500
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if config.Credentials.Steam.APIKey != "abc123" {
			t.Errorf("unexpected api key: %s", config.Credentials.Steam.APIKey)
		}
		if config.Output.Dir != "out" {
			t.Errorf("unexpected output dir: %s", config.Output.Dir)
		}
		if config.Client.MinIntervalMS != 500 {
			t.Errorf("unexpected min interval: %d", config.Client.MinIntervalMS)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("created config should parse: %v", err)
		}
		if config.Database.Path == "" {
			t.Error("expected database path in template")
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected error when file already exists")
		}
	})

	t.Run("ApplyEnv", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "env-key")
		t.Setenv(EnvSteamID, "76561198999999999")

		config := DefaultConfig()
		ApplyEnv(config)

		if config.Credentials.Steam.APIKey != "env-key" {
			t.Errorf("expected env key to win, got %s", config.Credentials.Steam.APIKey)
		}
		if config.Credentials.Steam.SteamID != "76561198999999999" {
			t.Errorf("expected env steam id to win, got %s", config.Credentials.Steam.SteamID)
		}
	})

	t.Run("ApplyEnv Empty Leaves File Values", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "")

		config := DefaultConfig()
		config.Credentials.Steam.APIKey = "file-key"
		ApplyEnv(config)

		if config.Credentials.Steam.APIKey != "file-key" {
			t.Errorf("empty env var should not clobber, got %s", config.Credentials.Steam.APIKey)
		}
	})
}

func TestClientConfigDurations(t *testing.T) {
	client := ClientConfig{MinIntervalMS: 200, TimeoutSeconds: 10, CooldownSeconds: 60}

	if client.MinInterval() != 200*time.Millisecond {
		t.Errorf("unexpected min interval: %v", client.MinInterval())
	}
	if client.Timeout() != 10*time.Second {
		t.Errorf("unexpected timeout: %v", client.Timeout())
	}
	if client.CooldownDuration() != time.Minute {
		t.Errorf("unexpected cooldown: %v", client.CooldownDuration())
	}
}
