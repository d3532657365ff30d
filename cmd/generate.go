package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"steamgen/internal/formatter"
	"steamgen/internal/tasks"
)

// engineFor returns the runner's engine, rebuilt when --output overrides the configured directory.
func (r *Runner) engineFor(cmd *cli.Command) (*tasks.DatasetEngine, error) {
	if err := r.requireClient(); err != nil {
		return nil, err
	}

	outputDir := cmd.String("output")
	if outputDir == "" || outputDir == r.engine.OutputDir() {
		return r.engine, nil
	}

	var recorder tasks.RunRecorder
	if r.runs != nil {
		recorder = r.runs
	}

	return tasks.NewDatasetEngine(r.client, tasks.EngineOpts{
		OutputDir: outputDir,
		Logger:    r.logger,
		Runs:      recorder,
	}), nil
}

// progressWriter consumes engine updates and prints them until the channel closes.
func (r *Runner) progressWriter() chan tasks.ProgressUpdate {
	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case tasks.FetchProfile, tasks.FetchGames:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.FetchAchievements, tasks.FetchGameStats:
				r.writePlain("   %s\n", update.Message)
			case tasks.WriteDataset:
				r.writePlain("📝 %s\n", update.Message)
			}
		}
	}()
	return progressCh
}

// GenerateAll generates every dataset and the run manifest.
func (r *Runner) GenerateAll(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.engineFor(cmd)
	if err != nil {
		return err
	}

	steamID, err := r.steamID(cmd)
	if err != nil {
		return err
	}

	r.logger.Info("starting dataset generation", "steam_id", steamID, "output", engine.OutputDir())
	r.writePlain("Generating datasets for %s...\n\n", steamID)

	progressCh := r.progressWriter()
	result, err := engine.RunAll(ctx, progressCh, []string{steamID})
	close(progressCh)

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Generation Complete!")
	r.writePlain("Run: %s\n", result.RunID)
	r.writePlain("Output: %s\n", result.OutputDir)
	r.writePlain("Datasets written: %d\n", len(result.Files))

	if len(result.Failures) > 0 {
		r.writePlain("\nFailed to generate %d datasets:\n", len(result.Failures))
		for _, failure := range result.Failures {
			r.writePlain("  - %s: %s\n", failure.Dataset, failure.Error)
		}
	}

	return nil
}

// GenerateProfile generates the player profile dataset.
func (r *Runner) GenerateProfile(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.engineFor(cmd)
	if err != nil {
		return err
	}

	steamID, err := r.steamID(cmd)
	if err != nil {
		return err
	}

	progressCh := r.progressWriter()
	dataset := engine.GenerateProfile(ctx, progressCh, steamID)
	close(progressCh)

	if cmd.Bool("json") {
		return r.writeJSON(dataset, cmd.Bool("pretty"))
	}

	path, err := engine.SaveDataset(dataset, fmt.Sprintf("profile_%s.json", steamID))
	if err != nil {
		return err
	}

	r.writePlain("✓ Profile dataset written to %s\n", path)
	r.writePlain("  Games: %d, playtime: %.1f hours\n", dataset.Stats.TotalGames, dataset.Stats.TotalPlaytimeHours)
	r.writePlain("  Achievements: %d/%d (%.2f%%)\n", dataset.Stats.UnlockedAchievements, dataset.Stats.TotalAchievements, dataset.Stats.AchievementCompletion)
	return nil
}

// GenerateTopGames generates the playtime leaderboard dataset.
func (r *Runner) GenerateTopGames(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.engineFor(cmd)
	if err != nil {
		return err
	}

	steamID, err := r.steamID(cmd)
	if err != nil {
		return err
	}

	progressCh := r.progressWriter()
	dataset, err := engine.GenerateTopGames(ctx, progressCh, steamID)
	close(progressCh)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(dataset, cmd.Bool("pretty"))
	}

	path, err := engine.SaveDataset(dataset, fmt.Sprintf("top_games_%s.json", steamID))
	if err != nil {
		return err
	}
	r.writePlain("✓ Top games dataset written to %s\n", path)

	if cmd.Bool("csv") {
		csvPath := filepath.Join(engine.OutputDir(), fmt.Sprintf("top_games_%s.csv", steamID))
		if csvPath, err = formatter.WriteTopGamesCSV(dataset, csvPath); err != nil {
			return err
		}
		r.writePlain("✓ CSV export written to %s\n", csvPath)
	}

	return nil
}

// GenerateAchievements generates the achievements dataset.
func (r *Runner) GenerateAchievements(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.engineFor(cmd)
	if err != nil {
		return err
	}

	steamID, err := r.steamID(cmd)
	if err != nil {
		return err
	}

	dataset := engine.GenerateAchievements(ctx, steamID)

	if cmd.Bool("json") {
		return r.writeJSON(dataset, cmd.Bool("pretty"))
	}

	path, err := engine.SaveDataset(dataset, fmt.Sprintf("achievements_%s.json", steamID))
	if err != nil {
		return err
	}

	r.writePlain("✓ Achievements dataset written to %s\n", path)
	r.writePlain("  Unlocked: %d/%d (%.2f%%), perfect games: %d\n",
		dataset.Summary.TotalUnlocked, dataset.Summary.TotalAchievements,
		dataset.Summary.CompletionPercentage, dataset.Summary.PerfectGamesCount)
	return nil
}

// GenerateEnriched generates the enriched games dataset.
func (r *Runner) GenerateEnriched(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.engineFor(cmd)
	if err != nil {
		return err
	}

	steamID, err := r.steamID(cmd)
	if err != nil {
		return err
	}

	progressCh := r.progressWriter()
	dataset := engine.GenerateEnrichedGames(ctx, progressCh, steamID, int(cmd.Int("limit")))
	close(progressCh)

	if cmd.Bool("json") {
		return r.writeJSON(dataset, cmd.Bool("pretty"))
	}

	path, err := engine.SaveDataset(dataset, fmt.Sprintf("enriched_games_%s.json", steamID))
	if err != nil {
		return err
	}
	r.writePlain("✓ Enriched games dataset written to %s (%d games)\n", path, dataset.GamesCount)
	return nil
}

// GeneratePopular generates the popular games stats dataset.
func (r *Runner) GeneratePopular(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.engineFor(cmd)
	if err != nil {
		return err
	}

	progressCh := r.progressWriter()
	datasets := engine.GeneratePopularGames(ctx, progressCh, nil)
	close(progressCh)

	if cmd.Bool("json") {
		return r.writeJSON(datasets, cmd.Bool("pretty"))
	}

	path, err := engine.SaveDataset(datasets, "popular_games_stats.json")
	if err != nil {
		return err
	}
	r.writePlain("✓ Popular games dataset written to %s (%d games)\n", path, len(datasets))
	return nil
}
