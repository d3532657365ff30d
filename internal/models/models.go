// package models defines the data model for the Steam dataset generator
package models

import (
	"time"
)

// GameProgress is the derived per-game achievement completion.
//
// Computed, never persisted as authoritative; recomputed each run.
type GameProgress struct {
	AppID      int     `json:"app_id"`
	Name       string  `json:"name"`
	Total      int     `json:"total"`
	Unlocked   int     `json:"unlocked"`
	Completion float64 `json:"completion_percent"`
}

// AchievementSummary is the aggregate over all owned games of one account.
//
// PerfectGames keeps library encounter order; GamesWithProgress is sorted
// descending by completion with ties keeping encounter order. A game with
// zero unlocked achievements appears in neither list.
type AchievementSummary struct {
	SteamID               string         `json:"steam_id"`
	TotalGames            int            `json:"total_games"`
	GamesWithAchievements int            `json:"games_with_achievements"`
	TotalAchievements     int            `json:"total_achievements"`
	TotalUnlocked         int            `json:"total_unlocked"`
	CompletionPercentage  float64        `json:"completion_percentage"`
	PerfectGames          []GameProgress `json:"perfect_games"`
	GamesWithProgress     []GameProgress `json:"games_with_progress"`
}

// CachedResponse is one persisted Steam Web API response.
type CachedResponse struct {
	Fingerprint string
	Body        []byte
	FetchedAt   time.Time
	ExpiresAt   time.Time
}

// Expired reports whether the entry is stale at the given instant.
func (c *CachedResponse) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Run records one dataset generation run.
type Run struct {
	ID          string
	SteamID     string
	StartedAt   time.Time
	CompletedAt time.Time
	Datasets    int
	Failures    int
	OutputDir   string
}

// Completed reports whether the run finished.
func (r *Run) Completed() bool {
	return !r.CompletedAt.IsZero()
}
