package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"steamgen/internal/models"
	"steamgen/internal/shared"
)

// RunRepository records dataset generation runs.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new RunRepository with the given database connection
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a new run row, generating an ID when the run has none
func (r *RunRepository) Create(run *models.Run) error {
	if run.ID == "" {
		run.ID = shared.GenerateID()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	query := `
		INSERT INTO runs (id, steam_id, started_at, output_dir, datasets, failures)
		VALUES (?, ?, ?, ?, 0, 0)
	`

	_, err := r.db.Exec(query, run.ID, run.SteamID, run.StartedAt, run.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

// Complete marks a run as finished and stores its dataset and failure counts
func (r *RunRepository) Complete(run *models.Run) error {
	if run.CompletedAt.IsZero() {
		run.CompletedAt = time.Now()
	}

	query := `
		UPDATE runs
		SET completed_at = ?, datasets = ?, failures = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query, run.CompletedAt, run.Datasets, run.Failures, run.ID)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("run not found: %s", run.ID)
	}

	return nil
}

// List returns the most recent runs, newest first
func (r *RunRepository) List(limit int) ([]*models.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, steam_id, started_at, completed_at, datasets, failures, output_dir
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.Run
	for rows.Next() {
		run := &models.Run{}
		var completedAt sql.NullTime

		err := rows.Scan(
			&run.ID,
			&run.SteamID,
			&run.StartedAt,
			&completedAt,
			&run.Datasets,
			&run.Failures,
			&run.OutputDir,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		if completedAt.Valid {
			run.CompletedAt = completedAt.Time
		}

		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return runs, nil
}
