// package stats rolls per-game achievement data up into summary statistics
package stats

import (
	"context"
	"math"
	"sort"

	"github.com/charmbracelet/log"

	"steamgen/internal/models"
	"steamgen/internal/shared"
	"steamgen/internal/steam"
)

// GamesClient is the subset of the Steam client needed by the aggregator.
type GamesClient interface {
	GetOwnedGames(ctx context.Context, steamID string) steam.OwnedGames
	GetPlayerAchievements(ctx context.Context, steamID string, appID int, language string) steam.PlayerStats
}

// Aggregator computes cross-game achievement summaries for an account.
//
// Best-effort over a best-effort client: a per-game fetch failure skips
// that game and never aborts the overall summarization, so partial data
// silently under-reports totals.
type Aggregator struct {
	client GamesClient
	logger *log.Logger
}

// NewAggregator creates an Aggregator backed by the given client.
func NewAggregator(client GamesClient, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Aggregator{client: client, logger: logger}
}

// Summarize fetches the account's owned games and rolls their achievement
// data up into an [models.AchievementSummary].
//
// An empty or unavailable owned-game list yields a zeroed summary. A game
// whose achievement fetch fails, reports success=false, or returns no
// entries does not count toward games_with_achievements or either list.
func (a *Aggregator) Summarize(ctx context.Context, steamID string) *models.AchievementSummary {
	summary := &models.AchievementSummary{
		SteamID:           steamID,
		PerfectGames:      []models.GameProgress{},
		GamesWithProgress: []models.GameProgress{},
	}

	owned := a.client.GetOwnedGames(ctx, steamID)
	if len(owned.Games) == 0 {
		a.logger.Info("no owned games", "steam_id", steamID)
		return summary
	}

	summary.TotalGames = len(owned.Games)

	for _, game := range owned.Games {
		playerStats := a.client.GetPlayerAchievements(ctx, steamID, game.AppID, "")
		if !playerStats.Success || len(playerStats.Achievements) == 0 {
			continue
		}

		progress := Progress(game, playerStats.Achievements)

		summary.GamesWithAchievements++
		summary.TotalAchievements += progress.Total
		summary.TotalUnlocked += progress.Unlocked

		switch {
		case progress.Completion == 100:
			summary.PerfectGames = append(summary.PerfectGames, progress)
		case progress.Unlocked > 0:
			summary.GamesWithProgress = append(summary.GamesWithProgress, progress)
		}
	}

	// Overall percentage comes from the accumulated totals, not from
	// re-aggregating the already-rounded per-game percentages.
	summary.CompletionPercentage = Completion(summary.TotalUnlocked, summary.TotalAchievements)

	sort.SliceStable(summary.GamesWithProgress, func(i, j int) bool {
		return summary.GamesWithProgress[i].Completion > summary.GamesWithProgress[j].Completion
	})

	a.logger.Info("achievement summary computed",
		"steam_id", steamID,
		"games", summary.TotalGames,
		"with_achievements", summary.GamesWithAchievements,
		"completion", summary.CompletionPercentage,
	)

	return summary
}

// Progress computes the completion record for one game's achievement list.
func Progress(game steam.OwnedGame, achievements []steam.Achievement) models.GameProgress {
	unlocked := 0
	for _, achievement := range achievements {
		if achievement.Achieved == 1 {
			unlocked++
		}
	}

	return models.GameProgress{
		AppID:      game.AppID,
		Name:       game.Name,
		Total:      len(achievements),
		Unlocked:   unlocked,
		Completion: Completion(unlocked, len(achievements)),
	}
}

// Completion returns unlocked/total as a percentage rounded to two decimals, 0 when total is 0.
func Completion(unlocked, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(unlocked)/float64(total)*100*100) / 100
}
