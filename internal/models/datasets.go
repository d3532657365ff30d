package models

import (
	"time"

	"steamgen/internal/steam"
)

// ProfileStats are the derived headline numbers of a profile dataset.
type ProfileStats struct {
	TotalGames            int     `json:"total_games"`
	TotalPlaytimeHours    float64 `json:"total_playtime_hours"`
	GamesPlayed2Weeks     int     `json:"games_played_2weeks"`
	TotalAchievements     int     `json:"total_achievements"`
	UnlockedAchievements  int     `json:"unlocked_achievements"`
	AchievementCompletion float64 `json:"achievement_completion"`
	PerfectGames          int     `json:"perfect_games"`
}

// ProfileDataset is the complete player profile written to profile_{steamid}.json.
//
// Nested payloads mirror the upstream API response shapes.
type ProfileDataset struct {
	SteamID            string               `json:"steam_id"`
	GeneratedAt        time.Time            `json:"generated_at"`
	PlayerSummary      steam.PlayerSummary  `json:"player_summary"`
	OwnedGames         steam.OwnedGames     `json:"owned_games"`
	RecentlyPlayed     steam.RecentlyPlayed `json:"recently_played"`
	SteamLevel         int                  `json:"steam_level"`
	Badges             steam.Badges         `json:"badges"`
	AchievementSummary *AchievementSummary  `json:"achievement_summary"`
	Stats              ProfileStats         `json:"stats"`
}

// TopGameEntry is one ranked row of the top-games leaderboard.
type TopGameEntry struct {
	Rank                 int     `json:"rank"`
	AppID                int     `json:"app_id"`
	Name                 string  `json:"name"`
	PlaytimeMinutes      int     `json:"playtime_minutes"`
	PlaytimeHours        float64 `json:"playtime_hours"`
	PlaytimeFormatted    string  `json:"playtime_formatted"`
	Playtime2WeeksMinute int     `json:"playtime_2weeks_minutes"`
	ImgIconURL           string  `json:"img_icon_url"`
	ImgLogoURL           string  `json:"img_logo_url"`
}

// TopGamesDataset is the playtime leaderboard written to top_games_{steamid}.json.
type TopGamesDataset struct {
	SteamID     string         `json:"steam_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	TotalGames  int            `json:"total_games"`
	TopGames    []TopGameEntry `json:"top_games"`
}

// AchievementTotals are the headline numbers of an achievements dataset.
type AchievementTotals struct {
	TotalGames            int     `json:"total_games"`
	GamesWithAchievements int     `json:"games_with_achievements"`
	TotalAchievements     int     `json:"total_achievements"`
	TotalUnlocked         int     `json:"total_unlocked"`
	CompletionPercentage  float64 `json:"completion_percentage"`
	PerfectGamesCount     int     `json:"perfect_games_count"`
}

// AchievementsDataset is written to achievements_{steamid}.json.
//
// PerfectGames and GamesWithProgress are truncated views of the summary.
type AchievementsDataset struct {
	SteamID           string            `json:"steam_id"`
	GeneratedAt       time.Time         `json:"generated_at"`
	Summary           AchievementTotals `json:"summary"`
	PerfectGames      []GameProgress    `json:"perfect_games"`
	GamesWithProgress []GameProgress    `json:"games_with_progress"`
}

// EnrichedGame is one owned game joined with achievement progress and live player count.
type EnrichedGame struct {
	AppID           int           `json:"app_id"`
	Name            string        `json:"name"`
	PlaytimeMinutes int           `json:"playtime_minutes"`
	PlaytimeHours   float64       `json:"playtime_hours"`
	Progress        *GameProgress `json:"progress,omitempty"`
	CurrentPlayers  int           `json:"current_players"`
}

// EnrichedGamesDataset is written to enriched_games_{steamid}.json.
type EnrichedGamesDataset struct {
	SteamID     string         `json:"steam_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	GamesCount  int            `json:"games_count"`
	Games       []EnrichedGame `json:"games"`
}

// GameStatsDataset is per-app statistics, one element of popular_games_stats.json.
type GameStatsDataset struct {
	AppID                  int                       `json:"app_id"`
	AppName                string                    `json:"app_name"`
	GeneratedAt            time.Time                 `json:"generated_at"`
	CurrentPlayers         int                       `json:"current_players"`
	AchievementPercentages []steam.GlobalAchievement `json:"achievement_percentages"`
	News                   []steam.NewsItem          `json:"news"`
}

// DatasetFailure records one dataset that could not be generated during a run.
type DatasetFailure struct {
	Dataset string `json:"dataset"`
	SteamID string `json:"steam_id,omitempty"`
	Error   string `json:"error"`
}

// RunResult is the manifest of one generation run, written to run_manifest.json.
type RunResult struct {
	RunID       string           `json:"run_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	OutputDir   string           `json:"output_dir"`
	Files       []string         `json:"files"`
	Failures    []DatasetFailure `json:"failures,omitempty"`
}
