package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// CacheStats shows cache entry counts and age.
func (r *Runner) CacheStats(ctx context.Context, cmd *cli.Command) error {
	if r.cache == nil {
		return fmt.Errorf("cache not initialized, run 'steamgen setup database' first")
	}

	stats, err := r.cache.Stats()
	if err != nil {
		return fmt.Errorf("failed to read cache stats: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(stats, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Response Cache")
	r.writePlain("Entries: %d (%d expired)\n", stats.Entries, stats.Expired)
	if stats.Entries > 0 {
		r.writePlain("Oldest: %s\n", stats.Oldest.Format("2006-01-02 15:04:05"))
		r.writePlain("Newest: %s\n", stats.Newest.Format("2006-01-02 15:04:05"))
	}

	return nil
}

// CacheClear removes all cached responses.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	if r.cache == nil {
		return fmt.Errorf("cache not initialized, run 'steamgen setup database' first")
	}

	removed, err := r.cache.Clear()
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	r.logger.Info("cache cleared", "removed", removed)
	r.writePlain("✓ Removed %d cached responses\n", removed)
	return nil
}

// CacheRuns lists recent generation runs.
func (r *Runner) CacheRuns(ctx context.Context, cmd *cli.Command) error {
	if r.runs == nil {
		return fmt.Errorf("run history not initialized, run 'steamgen setup database' first")
	}

	runs, err := r.runs.List(int(cmd.Int("limit")))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(runs, cmd.Bool("pretty"))
	}

	if len(runs) == 0 {
		r.writePlain("No generation runs recorded yet.\n")
		return nil
	}

	r.writePlainHeader("Generation Runs")
	for _, run := range runs {
		status := "in progress"
		if run.Completed() {
			status = fmt.Sprintf("%d datasets, %d failures", run.Datasets, run.Failures)
		}
		r.writePlain("%s  %s  %s — %s\n", run.StartedAt.Format("2006-01-02 15:04"), run.ID, run.SteamID, status)
	}

	return nil
}
