// package formatter provides functions to export generated datasets to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"steamgen/internal/models"
	"steamgen/internal/shared"
)

// ExportTopGamesCSV converts a TopGamesDataset to CSV format with columns: Rank, AppID, Name, Playtime (min), Playtime (hrs), Last 2 Weeks (min)
func ExportTopGamesCSV(dataset *models.TopGamesDataset) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Rank", "AppID", "Name", "Playtime (min)", "Playtime (hrs)", "Last 2 Weeks (min)"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, game := range dataset.TopGames {
		record := []string{
			strconv.Itoa(game.Rank),
			strconv.Itoa(game.AppID),
			game.Name,
			strconv.Itoa(game.PlaytimeMinutes),
			strconv.FormatFloat(game.PlaytimeHours, 'f', 2, 64),
			strconv.Itoa(game.Playtime2WeeksMinute),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportSummaryMarkdown converts an AchievementSummary to Markdown format
func ExportSummaryMarkdown(summary *models.AchievementSummary) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Achievements for %s\n\n", summary.SteamID))
	buf.WriteString(fmt.Sprintf("**Games**: %d (%d with achievements)\n", summary.TotalGames, summary.GamesWithAchievements))
	buf.WriteString(fmt.Sprintf("**Unlocked**: %d / %d (%.2f%%)\n", summary.TotalUnlocked, summary.TotalAchievements, summary.CompletionPercentage))
	buf.WriteString(fmt.Sprintf("**Perfect games**: %d\n\n", len(summary.PerfectGames)))

	if len(summary.PerfectGames) > 0 {
		buf.WriteString("## Perfect Games\n\n")
		for i, game := range summary.PerfectGames {
			buf.WriteString(fmt.Sprintf("%d. %s (%d achievements)\n", i+1, game.Name, game.Total))
		}
		buf.WriteString("\n")
	}

	if len(summary.GamesWithProgress) > 0 {
		buf.WriteString("## In Progress\n\n")
		for i, game := range summary.GamesWithProgress {
			buf.WriteString(fmt.Sprintf("%d. %s - %d/%d (%.2f%%)\n", i+1, game.Name, game.Unlocked, game.Total, game.Completion))
		}
	}

	return buf.Bytes(), nil
}

// ExportSummaryText converts an AchievementSummary to plain text format
func ExportSummaryText(summary *models.AchievementSummary) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Achievements for: %s\n", summary.SteamID))
	buf.WriteString(fmt.Sprintf("Games: %d (%d with achievements)\n", summary.TotalGames, summary.GamesWithAchievements))
	buf.WriteString(fmt.Sprintf("Unlocked: %d / %d (%.2f%%)\n\n", summary.TotalUnlocked, summary.TotalAchievements, summary.CompletionPercentage))

	for i, game := range summary.GamesWithProgress {
		buf.WriteString(fmt.Sprintf("%d. %s - %d/%d\n", i+1, game.Name, game.Unlocked, game.Total))
	}

	return buf.Bytes(), nil
}

// WriteTopGamesCSV exports a top-games dataset to a CSV file.
//
// Defaults to top_games_{steamid}.csv when no path is given
func WriteTopGamesCSV(dataset *models.TopGamesDataset, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("top_games_%s.csv", dataset.SteamID)
	}

	data, err := ExportTopGamesCSV(dataset)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return path, nil
}

// WriteSummaryMarkdown exports an achievement summary to a Markdown file.
//
// Defaults to achievements_{steamid}.md when no path is given
func WriteSummaryMarkdown(summary *models.AchievementSummary, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("achievements_%s.md", summary.SteamID)
	}

	data, err := ExportSummaryMarkdown(summary)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return path, nil
}

// WriteRunManifest writes the run manifest as pretty JSON
func WriteRunManifest(result *models.RunResult, path string) error {
	data, err := shared.MarshalJSON(result, true)
	if err != nil {
		return fmt.Errorf("failed to marshal run manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run manifest: %w", err)
	}

	return nil
}
