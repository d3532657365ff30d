package repositories

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"steamgen/internal/models"
	"steamgen/internal/shared"
)

// ResponseCacheRepository stores raw API payloads keyed by request fingerprint.
//
// Entries carry an expiry timestamp; expired rows are treated as misses and
// cleaned up lazily on read.
type ResponseCacheRepository struct {
	db *sql.DB
}

// NewResponseCacheRepository creates a new ResponseCacheRepository with the given database connection
func NewResponseCacheRepository(db *sql.DB) *ResponseCacheRepository {
	return &ResponseCacheRepository{db: db}
}

// Fingerprint derives a stable cache key from the call signature
func Fingerprint(parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Put stores a payload under the fingerprint, replacing any previous entry
func (r *ResponseCacheRepository) Put(fingerprint string, body []byte, ttl time.Duration) error {
	now := time.Now()

	query := `
		INSERT INTO response_cache (fingerprint, body, fetched_at, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(fingerprint) DO UPDATE SET
			body = excluded.body,
			fetched_at = excluded.fetched_at,
			expires_at = excluded.expires_at
	`

	_, err := r.db.Exec(query, fingerprint, body, now, now.Add(ttl))
	if err != nil {
		return fmt.Errorf("failed to insert cache entry: %w", err)
	}

	return nil
}

// Get retrieves a cached payload, returning shared.ErrCacheMiss when absent or expired
func (r *ResponseCacheRepository) Get(fingerprint string) ([]byte, error) {
	query := `
		SELECT fingerprint, body, fetched_at, expires_at
		FROM response_cache
		WHERE fingerprint = ?
	`

	var cached models.CachedResponse
	err := r.db.QueryRow(query, fingerprint).Scan(
		&cached.Fingerprint,
		&cached.Body,
		&cached.FetchedAt,
		&cached.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, shared.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}

	if cached.Expired(time.Now()) {
		// lazy cleanup; a failed delete only delays the next miss
		_, _ = r.db.Exec(`DELETE FROM response_cache WHERE fingerprint = ?`, fingerprint)
		return nil, shared.ErrCacheMiss
	}

	return cached.Body, nil
}

// Clear removes all cache entries and returns the number removed
func (r *ResponseCacheRepository) Clear() (int64, error) {
	result, err := r.db.Exec(`DELETE FROM response_cache`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cache: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows, nil
}

// CacheStats summarizes the state of the response cache
type CacheStats struct {
	Entries int       `json:"entries"`
	Expired int       `json:"expired"`
	Oldest  time.Time `json:"oldest,omitempty"`
	Newest  time.Time `json:"newest,omitempty"`
}

// Stats reports entry counts and the fetch-time range of the cache
func (r *ResponseCacheRepository) Stats() (*CacheStats, error) {
	stats := &CacheStats{}

	err := r.db.QueryRow(`SELECT COUNT(*) FROM response_cache`).Scan(&stats.Entries)
	if err != nil {
		return nil, fmt.Errorf("failed to count cache entries: %w", err)
	}

	err = r.db.QueryRow(`SELECT COUNT(*) FROM response_cache WHERE expires_at < ?`, time.Now()).Scan(&stats.Expired)
	if err != nil {
		return nil, fmt.Errorf("failed to count expired entries: %w", err)
	}

	if stats.Entries > 0 {
		// fetched_at keeps its declared TIMESTAMP type only when selected directly
		err = r.db.QueryRow(`SELECT fetched_at FROM response_cache ORDER BY fetched_at ASC LIMIT 1`).Scan(&stats.Oldest)
		if err != nil {
			return nil, fmt.Errorf("failed to read oldest entry: %w", err)
		}
		err = r.db.QueryRow(`SELECT fetched_at FROM response_cache ORDER BY fetched_at DESC LIMIT 1`).Scan(&stats.Newest)
		if err != nil {
			return nil, fmt.Errorf("failed to read newest entry: %w", err)
		}
	}

	return stats, nil
}
