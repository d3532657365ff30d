package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"steamgen/internal/repositories"
	"steamgen/internal/shared"
	"steamgen/internal/tasks"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	client tasks.Client
	engine *tasks.DatasetEngine
	db     *sql.DB
	cache  *repositories.ResponseCacheRepository
	runs   *repositories.RunRepository
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Client tasks.Client
	DB     *sql.DB
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	r := &Runner{
		config: opts.Config,
		client: opts.Client,
		db:     opts.DB,
		logger: opts.Logger,
		output: opts.Output,
	}

	var recorder tasks.RunRecorder
	if opts.DB != nil {
		r.cache = repositories.NewResponseCacheRepository(opts.DB)
		r.runs = repositories.NewRunRepository(opts.DB)
		recorder = r.runs

		if opts.Client != nil {
			r.client = repositories.NewCachedClient(opts.Client, r.cache, repositories.CachedClientOpts{
				TTL:    time.Duration(opts.Config.Database.CacheTTLMinutes) * time.Minute,
				Logger: opts.Logger,
			})
		}
	}

	if r.client != nil {
		r.engine = tasks.NewDatasetEngine(r.client, tasks.EngineOpts{
			OutputDir: opts.Config.Output.Dir,
			Logger:    opts.Logger,
			Runs:      recorder,
		})
	}

	return r
}

// SetLogger swaps the runner's logger and the engine's with it.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
	if r.engine != nil {
		r.engine = tasks.NewDatasetEngine(r.client, tasks.EngineOpts{
			OutputDir: r.config.Output.Dir,
			Logger:    logger,
			Runs:      r.runs,
		})
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		generateCommand, playerCommand, gameCommand, achievementsCommand, resolveCommand, cacheCommand, setupCommand, browseCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// requireClient returns an error when no Steam client is configured.
func (r *Runner) requireClient() error {
	if r.client == nil {
		return fmt.Errorf("%w: set credentials.steam.api_key in config.toml or the STEAMKEY environment variable", shared.ErrMissingAPIKey)
	}
	return nil
}

// steamID resolves the account ID from the flag or the configured default.
func (r *Runner) steamID(cmd *cli.Command) (string, error) {
	if id := cmd.String("steamid"); id != "" {
		return id, nil
	}
	if r.config.Credentials.Steam.SteamID != "" {
		return r.config.Credentials.Steam.SteamID, nil
	}
	return "", fmt.Errorf("%w: pass --steamid or set credentials.steam.steam_id in config.toml", shared.ErrMissingSteamID)
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
