package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"steamgen/internal/repositories"
	"steamgen/internal/shared"
	apptesting "steamgen/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			client := apptesting.NewMockClient()

			runner := NewRunner(RunnerOpts{
				Config: config,
				Client: client,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.client != client {
				t.Error("expected client to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.engine == nil {
				t.Error("expected engine to be built from client")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil client leaves engine unset", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.engine != nil {
				t.Error("expected no engine without a client")
			}
		})

		t.Run("with database wires cache and run repositories", func(t *testing.T) {
			db, err := shared.NewDatabase(":memory:")
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			runner := NewRunner(RunnerOpts{
				DB:     db,
				Client: apptesting.NewMockClient(),
			})

			if runner.cache == nil {
				t.Error("expected cache repository to be set")
			}
			if runner.runs == nil {
				t.Error("expected run repository to be set")
			}
			if _, ok := runner.client.(*repositories.CachedClient); !ok {
				t.Errorf("expected client to be wrapped in CachedClient, got %T", runner.client)
			}
		})

		t.Run("with database but no client skips caching wrapper", func(t *testing.T) {
			db, err := shared.NewDatabase(":memory:")
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			runner := NewRunner(RunnerOpts{DB: db})

			if runner.cache == nil {
				t.Error("expected cache repository to be set")
			}
			if runner.client != nil {
				t.Error("expected client to stay nil")
			}
		})
	})

	t.Run("SetLogger", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Client: apptesting.NewMockClient()})
		replacement := shared.NewLogger(&bytes.Buffer{})

		runner.SetLogger(replacement)

		if runner.logger != replacement {
			t.Error("expected logger to be replaced")
		}
		if runner.engine == nil {
			t.Error("expected engine to be rebuilt")
		}
	})

	t.Run("requireClient", func(t *testing.T) {
		t.Run("passes with client", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Client: apptesting.NewMockClient()})

			if err := runner.requireClient(); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})

		t.Run("fails without client", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			err := runner.requireClient()
			if err == nil {
				t.Fatal("expected error without client")
			}
			if !errors.Is(err, shared.ErrMissingAPIKey) {
				t.Errorf("expected ErrMissingAPIKey, got %v", err)
			}
		})
	})

	t.Run("steamID", func(t *testing.T) {
		t.Run("falls back to configured ID", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Credentials.Steam.SteamID = "76561198000000001"
			runner := NewRunner(RunnerOpts{Config: config})

			id, err := runner.steamID(&cli.Command{})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if id != "76561198000000001" {
				t.Errorf("expected configured ID, got %s", id)
			}
		})

		t.Run("fails without flag or config", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			_, err := runner.steamID(&cli.Command{})
			if err == nil {
				t.Fatal("expected error without a SteamID")
			}
			if !errors.Is(err, shared.ErrMissingSteamID) {
				t.Errorf("expected ErrMissingSteamID, got %v", err)
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			expected := `{"key":"value"}` + "\n"
			if result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			// channels cannot be marshaled to JSON
			data := make(chan int)
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &apptesting.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			data := map[string]string{"key": "value"}
			limitedWriter := apptesting.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writePlain("hello %s", "world")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &apptesting.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlainln", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlainln("line %d", 1); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.String() != "\nline 1\n" {
			t.Errorf("expected surrounding newlines, got %q", output.String())
		}
	})

	t.Run("writePlainHeader", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		runner.writePlainHeader("Results")

		result := output.String()
		if !strings.Contains(result, "Results\n") {
			t.Errorf("expected title line, got %q", result)
		}
		if strings.Count(result, "═══") != 2 {
			t.Errorf("expected two rule lines, got %q", result)
		}
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) == 0 {
			t.Error("expected at least one command to be registered")
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}
	})
}
