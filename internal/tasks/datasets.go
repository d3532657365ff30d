package tasks

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"steamgen/internal/formatter"
	"steamgen/internal/models"
	"steamgen/internal/shared"
	"steamgen/internal/stats"
	"steamgen/internal/steam"
)

// Client is the Steam API surface the engine consumes.
//
// This abstraction allows for easier testing and decoupling from concrete implementation.
type Client interface {
	GetPlayerSummaries(ctx context.Context, steamIDs []string) []steam.PlayerSummary
	GetFriendList(ctx context.Context, steamID, relationship string) []steam.Friend
	ResolveVanityURL(ctx context.Context, vanity string, urlType int) (string, bool)
	GetOwnedGames(ctx context.Context, steamID string) steam.OwnedGames
	GetRecentlyPlayedGames(ctx context.Context, steamID string, count int) steam.RecentlyPlayed
	GetSteamLevel(ctx context.Context, steamID string) int
	GetBadges(ctx context.Context, steamID string) steam.Badges
	GetPlayerAchievements(ctx context.Context, steamID string, appID int, language string) steam.PlayerStats
	GetNumberOfCurrentPlayers(ctx context.Context, appID int) int
	GetGlobalAchievementPercentages(ctx context.Context, appID int) []steam.GlobalAchievement
	GetNewsForApp(ctx context.Context, appID, count, maxLength int) []steam.NewsItem
}

// RunRecorder persists run bookkeeping; optional.
type RunRecorder interface {
	Create(run *models.Run) error
	Complete(run *models.Run) error
}

// PopularGame names one curated app for the popular-games dataset.
type PopularGame struct {
	AppID int
	Name  string
}

// DefaultPopularGames is the curated list used when the caller supplies none.
var DefaultPopularGames = []PopularGame{
	{AppID: 730, Name: "Counter-Strike 2"},
	{AppID: 570, Name: "Dota 2"},
	{AppID: 440, Name: "Team Fortress 2"},
	{AppID: 578080, Name: "PUBG: BATTLEGROUNDS"},
	{AppID: 1172470, Name: "Apex Legends"},
}

const (
	topGamesLimit      = 50
	enrichedGamesLimit = 20
	perfectGamesLimit  = 10
	progressGamesLimit = 20
	newsPerGame        = 5
	newsMaxLength      = 300
)

// EngineOpts contains configuration options for creating a DatasetEngine.
type EngineOpts struct {
	OutputDir string
	Logger    *log.Logger
	Runs      RunRecorder
	Now       func() time.Time
}

// DatasetEngine orchestrates dataset generation against the Steam Web API.
//
// All generation is best-effort: missing upstream data produces zeroed or
// truncated datasets rather than errors, matching the degraded-failure
// contract of the request client.
type DatasetEngine struct {
	client     Client
	aggregator *stats.Aggregator
	outputDir  string
	logger     *log.Logger
	runs       RunRecorder
	now        func() time.Time
}

// NewDatasetEngine creates a DatasetEngine with the provided client and options.
func NewDatasetEngine(client Client, opts EngineOpts) *DatasetEngine {
	if opts.OutputDir == "" {
		opts.OutputDir = "public/data"
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &DatasetEngine{
		client:     client,
		aggregator: stats.NewAggregator(client, opts.Logger),
		outputDir:  opts.OutputDir,
		logger:     opts.Logger,
		runs:       opts.Runs,
		now:        opts.Now,
	}
}

// OutputDir returns the directory datasets are written to.
func (e *DatasetEngine) OutputDir() string {
	return e.outputDir
}

// GenerateProfile builds the complete player profile dataset for one account.
func (e *DatasetEngine) GenerateProfile(ctx context.Context, prog chan<- ProgressUpdate, steamID string) *models.ProfileDataset {
	dataset := &models.ProfileDataset{
		SteamID:     steamID,
		GeneratedAt: e.now(),
	}

	e.sendProgress(prog, fetchProfileUpdate(1, 6, "player summary"))
	if players := e.client.GetPlayerSummaries(ctx, []string{steamID}); len(players) > 0 {
		dataset.PlayerSummary = players[0]
	}

	e.sendProgress(prog, fetchProfileUpdate(2, 6, "owned games"))
	dataset.OwnedGames = e.client.GetOwnedGames(ctx, steamID)
	dataset.Stats.TotalGames = dataset.OwnedGames.GameCount

	totalMinutes := 0
	for _, game := range dataset.OwnedGames.Games {
		totalMinutes += game.PlaytimeForever
	}
	dataset.Stats.TotalPlaytimeHours = hours(totalMinutes)

	e.sendProgress(prog, fetchProfileUpdate(3, 6, "recently played games"))
	dataset.RecentlyPlayed = e.client.GetRecentlyPlayedGames(ctx, steamID, 0)
	dataset.Stats.GamesPlayed2Weeks = dataset.RecentlyPlayed.TotalCount

	e.sendProgress(prog, fetchProfileUpdate(4, 6, "steam level"))
	dataset.SteamLevel = e.client.GetSteamLevel(ctx, steamID)

	e.sendProgress(prog, fetchProfileUpdate(5, 6, "badges"))
	dataset.Badges = e.client.GetBadges(ctx, steamID)

	e.sendProgress(prog, fetchProfileUpdate(6, 6, "achievement summary"))
	summary := e.aggregator.Summarize(ctx, steamID)
	dataset.AchievementSummary = summary
	dataset.Stats.TotalAchievements = summary.TotalAchievements
	dataset.Stats.UnlockedAchievements = summary.TotalUnlocked
	dataset.Stats.AchievementCompletion = summary.CompletionPercentage
	dataset.Stats.PerfectGames = len(summary.PerfectGames)

	return dataset
}

// GenerateTopGames builds the playtime leaderboard for one account.
//
// Returns [shared.ErrNoGames] when the owned-game list is empty or unavailable.
func (e *DatasetEngine) GenerateTopGames(ctx context.Context, prog chan<- ProgressUpdate, steamID string) (*models.TopGamesDataset, error) {
	e.sendProgress(prog, fetchGamesUpdate(1, 1, steamID))

	owned := e.client.GetOwnedGames(ctx, steamID)
	if len(owned.Games) == 0 {
		return nil, fmt.Errorf("%w for %s", shared.ErrNoGames, steamID)
	}

	games := make([]steam.OwnedGame, len(owned.Games))
	copy(games, owned.Games)
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].PlaytimeForever > games[j].PlaytimeForever
	})

	if len(games) > topGamesLimit {
		games = games[:topGamesLimit]
	}

	dataset := &models.TopGamesDataset{
		SteamID:     steamID,
		GeneratedAt: e.now(),
		TotalGames:  len(owned.Games),
		TopGames:    make([]models.TopGameEntry, 0, len(games)),
	}

	for i, game := range games {
		dataset.TopGames = append(dataset.TopGames, models.TopGameEntry{
			Rank:                 i + 1,
			AppID:                game.AppID,
			Name:                 game.Name,
			PlaytimeMinutes:      game.PlaytimeForever,
			PlaytimeHours:        hours(game.PlaytimeForever),
			PlaytimeFormatted:    shared.FormatPlaytime(game.PlaytimeForever),
			Playtime2WeeksMinute: game.Playtime2Weeks,
			ImgIconURL:           game.ImgIconURL,
			ImgLogoURL:           game.ImgLogoURL,
		})
	}

	return dataset, nil
}

// GenerateAchievements builds the achievements dataset with truncated lists.
func (e *DatasetEngine) GenerateAchievements(ctx context.Context, steamID string) *models.AchievementsDataset {
	summary := e.aggregator.Summarize(ctx, steamID)

	return &models.AchievementsDataset{
		SteamID:     steamID,
		GeneratedAt: e.now(),
		Summary: models.AchievementTotals{
			TotalGames:            summary.TotalGames,
			GamesWithAchievements: summary.GamesWithAchievements,
			TotalAchievements:     summary.TotalAchievements,
			TotalUnlocked:         summary.TotalUnlocked,
			CompletionPercentage:  summary.CompletionPercentage,
			PerfectGamesCount:     len(summary.PerfectGames),
		},
		PerfectGames:      truncateProgress(summary.PerfectGames, perfectGamesLimit),
		GamesWithProgress: truncateProgress(summary.GamesWithProgress, progressGamesLimit),
	}
}

// GenerateEnrichedGames joins the account's most played games with achievement progress and live player counts.
func (e *DatasetEngine) GenerateEnrichedGames(ctx context.Context, prog chan<- ProgressUpdate, steamID string, limit int) *models.EnrichedGamesDataset {
	if limit <= 0 {
		limit = enrichedGamesLimit
	}

	dataset := &models.EnrichedGamesDataset{
		SteamID:     steamID,
		GeneratedAt: e.now(),
		Games:       []models.EnrichedGame{},
	}

	owned := e.client.GetOwnedGames(ctx, steamID)
	if len(owned.Games) == 0 {
		return dataset
	}

	games := make([]steam.OwnedGame, len(owned.Games))
	copy(games, owned.Games)
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].PlaytimeForever > games[j].PlaytimeForever
	})
	if len(games) > limit {
		games = games[:limit]
	}

	for i, game := range games {
		e.sendProgress(prog, fetchAchievementsUpdate(i+1, len(games), game.Name))

		enriched := models.EnrichedGame{
			AppID:           game.AppID,
			Name:            game.Name,
			PlaytimeMinutes: game.PlaytimeForever,
			PlaytimeHours:   hours(game.PlaytimeForever),
			CurrentPlayers:  e.client.GetNumberOfCurrentPlayers(ctx, game.AppID),
		}

		if playerStats := e.client.GetPlayerAchievements(ctx, steamID, game.AppID, ""); playerStats.Success && len(playerStats.Achievements) > 0 {
			progress := stats.Progress(game, playerStats.Achievements)
			enriched.Progress = &progress
		}

		dataset.Games = append(dataset.Games, enriched)
	}

	dataset.GamesCount = len(dataset.Games)
	return dataset
}

// GenerateGameStats builds per-app statistics: live players, global achievement percentages, news.
func (e *DatasetEngine) GenerateGameStats(ctx context.Context, appID int, name string) *models.GameStatsDataset {
	return &models.GameStatsDataset{
		AppID:                  appID,
		AppName:                name,
		GeneratedAt:            e.now(),
		CurrentPlayers:         e.client.GetNumberOfCurrentPlayers(ctx, appID),
		AchievementPercentages: e.client.GetGlobalAchievementPercentages(ctx, appID),
		News:                   e.client.GetNewsForApp(ctx, appID, newsPerGame, newsMaxLength),
	}
}

// GeneratePopularGames builds the stats dataset for each curated app.
func (e *DatasetEngine) GeneratePopularGames(ctx context.Context, prog chan<- ProgressUpdate, games []PopularGame) []*models.GameStatsDataset {
	if len(games) == 0 {
		games = DefaultPopularGames
	}

	datasets := make([]*models.GameStatsDataset, 0, len(games))
	for i, game := range games {
		e.sendProgress(prog, fetchGameStatsUpdate(i+1, len(games), game.Name))
		datasets = append(datasets, e.GenerateGameStats(ctx, game.AppID, game.Name))
	}

	return datasets
}

// RunAll generates every per-account dataset plus the popular-games stats,
// writes them under the output directory, and writes a run manifest.
//
// Individual dataset failures are recorded in the manifest and do not abort the run.
func (e *DatasetEngine) RunAll(ctx context.Context, prog chan<- ProgressUpdate, steamIDs []string) (*models.RunResult, error) {
	result := &models.RunResult{
		RunID:       shared.GenerateID(),
		GeneratedAt: e.now(),
		OutputDir:   e.outputDir,
		Files:       []string{},
	}

	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	run := &models.Run{
		ID:        result.RunID,
		SteamID:   joinIDs(steamIDs),
		StartedAt: e.now(),
		OutputDir: e.outputDir,
	}
	e.recordCreate(run)

	total := len(steamIDs)*4 + 1
	step := 0

	for _, steamID := range steamIDs {
		profile := e.GenerateProfile(ctx, prog, steamID)
		step++
		e.write(prog, result, fmt.Sprintf("profile_%s.json", steamID), profile, step, total, steamID)

		step++
		if topGames, err := e.GenerateTopGames(ctx, prog, steamID); err != nil {
			e.logger.Warn("skipping top games dataset", "steam_id", steamID, "error", err)
			e.sendProgress(prog, datasetFailedUpdate(step, total, "top_games", err))
			result.Failures = append(result.Failures, models.DatasetFailure{
				Dataset: "top_games",
				SteamID: steamID,
				Error:   err.Error(),
			})
		} else {
			e.write(prog, result, fmt.Sprintf("top_games_%s.json", steamID), topGames, step, total, steamID)
		}

		enriched := e.GenerateEnrichedGames(ctx, prog, steamID, enrichedGamesLimit)
		step++
		e.write(prog, result, fmt.Sprintf("enriched_games_%s.json", steamID), enriched, step, total, steamID)

		achievements := e.GenerateAchievements(ctx, steamID)
		step++
		e.write(prog, result, fmt.Sprintf("achievements_%s.json", steamID), achievements, step, total, steamID)
	}

	popular := e.GeneratePopularGames(ctx, prog, nil)
	step++
	e.write(prog, result, "popular_games_stats.json", popular, step, total, "")

	manifestPath := filepath.Join(e.outputDir, "run_manifest.json")
	if err := formatter.WriteRunManifest(result, manifestPath); err != nil {
		return result, fmt.Errorf("run completed but failed to write manifest: %w", err)
	}

	run.CompletedAt = e.now()
	run.Datasets = len(result.Files)
	run.Failures = len(result.Failures)
	e.recordComplete(run)

	return result, nil
}

// SaveDataset writes one dataset as pretty JSON under the output directory and returns its path.
func (e *DatasetEngine) SaveDataset(dataset any, filename string) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(e.outputDir, filename)
	data, err := shared.MarshalJSON(dataset, true)
	if err != nil {
		return "", fmt.Errorf("JSON marshal failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("JSON write failed: %w", err)
	}

	e.logger.Info("dataset saved", "path", path)
	return path, nil
}

// write saves one dataset and records the outcome in the run result.
func (e *DatasetEngine) write(prog chan<- ProgressUpdate, result *models.RunResult, filename string, dataset any, step, total int, steamID string) {
	path, err := e.SaveDataset(dataset, filename)
	if err != nil {
		e.logger.Error("failed to write dataset", "file", filename, "error", err)
		e.sendProgress(prog, datasetFailedUpdate(step, total, filename, err))
		result.Failures = append(result.Failures, models.DatasetFailure{
			Dataset: filename,
			SteamID: steamID,
			Error:   err.Error(),
		})
		return
	}

	result.Files = append(result.Files, path)
	e.sendProgress(prog, datasetWrittenUpdate(step, total, path))
}

func (e *DatasetEngine) sendProgress(prog chan<- ProgressUpdate, update ProgressUpdate) {
	if prog == nil {
		return
	}
	select {
	case prog <- update:
	default:
	}
}

func (e *DatasetEngine) recordCreate(run *models.Run) {
	if e.runs == nil {
		return
	}
	if err := e.runs.Create(run); err != nil {
		e.logger.Warn("failed to record run", "run_id", run.ID, "error", err)
	}
}

func (e *DatasetEngine) recordComplete(run *models.Run) {
	if e.runs == nil {
		return
	}
	if err := e.runs.Complete(run); err != nil {
		e.logger.Warn("failed to complete run record", "run_id", run.ID, "error", err)
	}
}

func truncateProgress(progress []models.GameProgress, limit int) []models.GameProgress {
	if len(progress) > limit {
		progress = progress[:limit]
	}
	out := make([]models.GameProgress, len(progress))
	copy(out, progress)
	return out
}

func hours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}

func joinIDs(steamIDs []string) string {
	if len(steamIDs) == 0 {
		return ""
	}
	joined := steamIDs[0]
	for _, id := range steamIDs[1:] {
		joined += "," + id
	}
	return joined
}
