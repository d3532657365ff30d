package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"steamgen/internal/formatter"
	"steamgen/internal/shared"
	"steamgen/internal/stats"
)

// GamePlayers shows the current player count for an app.
func (r *Runner) GamePlayers(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireClient(); err != nil {
		return err
	}

	appID := int(cmd.Int("appid"))
	count := r.client.GetNumberOfCurrentPlayers(ctx, appID)
	r.writePlain("%d players in-game right now (app %d)\n", count, appID)
	return nil
}

// GameNews shows recent news items for an app.
func (r *Runner) GameNews(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireClient(); err != nil {
		return err
	}

	appID := int(cmd.Int("appid"))
	count := int(cmd.Int("count"))

	news := r.client.GetNewsForApp(ctx, appID, count, 300)
	if len(news) == 0 {
		r.writePlain("No news found for app %d.\n", appID)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(news, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("News for app %d", appID))
	for _, item := range news {
		r.writePlain("• %s\n  %s\n\n", item.Title, item.URL)
	}

	return nil
}

// GameGlobals shows global achievement unlock percentages for an app.
func (r *Runner) GameGlobals(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireClient(); err != nil {
		return err
	}

	appID := int(cmd.Int("appid"))

	globals := r.client.GetGlobalAchievementPercentages(ctx, appID)
	if len(globals) == 0 {
		r.writePlain("No global achievement data for app %d.\n", appID)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(globals, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Global achievements for app %d", appID))
	for _, achievement := range globals {
		r.writePlain("%6s%%  %s\n", achievement.Percent, achievement.Name)
	}

	return nil
}

// AchievementsSummary rolls a library's achievement data up into a summary.
func (r *Runner) AchievementsSummary(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireClient(); err != nil {
		return err
	}

	steamID, err := r.steamID(cmd)
	if err != nil {
		return err
	}

	r.logger.Info("summarizing achievements", "steam_id", steamID)
	r.writePlain("Fetching achievement data, this can take a while for large libraries...\n\n")

	aggregator := stats.NewAggregator(r.client, r.logger)
	summary := aggregator.Summarize(ctx, steamID)

	if cmd.Bool("json") {
		return r.writeJSON(summary, cmd.Bool("pretty"))
	}

	if cmd.Bool("markdown") {
		data, err := formatter.ExportSummaryMarkdown(summary)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	}

	data, err := formatter.ExportSummaryText(summary)
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}

// Resolve converts a vanity URL name to a 64-bit SteamID.
func (r *Runner) Resolve(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireClient(); err != nil {
		return err
	}

	vanity := cmd.StringArg("vanity")
	if vanity == "" {
		return fmt.Errorf("%w: vanity name is required", shared.ErrMissingArgument)
	}

	steamID, ok := r.client.ResolveVanityURL(ctx, vanity, 1)
	if !ok {
		return fmt.Errorf("%w: no match for %q", shared.ErrNoData, vanity)
	}

	r.writePlain("%s\n", steamID)
	return nil
}
