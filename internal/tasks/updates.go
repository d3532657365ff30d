package tasks

import (
	"fmt"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchProfile Phase = iota
	FetchGames
	FetchAchievements
	FetchGameStats
	WriteDataset
)

func (p Phase) String() string {
	switch p {
	case FetchProfile:
		return "fetch_profile"
	case FetchGames:
		return "fetch_games"
	case FetchAchievements:
		return "fetch_achievements"
	case FetchGameStats:
		return "fetch_game_stats"
	case WriteDataset:
		return "write_dataset"
	default:
		return ""
	}
}

func fetchProfileUpdate(step, total int, section string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchProfile,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Fetching %s...", section),
	}
}

func fetchGamesUpdate(step, total int, steamID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchGames,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Fetching owned games for %s...", steamID),
	}
}

func fetchAchievementsUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchAchievements,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Achievements: %s", step, total, name),
	}
}

func fetchGameStatsUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchGameStats,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Game stats: %s", step, total, name),
	}
}

func datasetWrittenUpdate(step, total int, path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteDataset,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s", step, total, path),
	}
}

func datasetFailedUpdate(step, total int, name string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteDataset,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, name, err),
	}
}
