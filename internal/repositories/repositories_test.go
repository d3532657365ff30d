package repositories

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"steamgen/internal/models"
	"steamgen/internal/shared"
	"steamgen/internal/steam"
	apptesting "steamgen/internal/testing"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// a second pooled connection would see a fresh in-memory database
	db.SetMaxOpenConns(1)

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestResponseCacheRepository(t *testing.T) {
	t.Run("Put And Get", func(t *testing.T) {
		repo := NewResponseCacheRepository(newTestDB(t))
		key := Fingerprint("GetSteamLevel", "76561198000000001")

		if err := repo.Put(key, []byte(`{"level":12}`), time.Hour); err != nil {
			t.Fatalf("put failed: %v", err)
		}

		body, err := repo.Get(key)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(body) != `{"level":12}` {
			t.Errorf("unexpected body: %s", body)
		}
	})

	t.Run("Miss On Absent Key", func(t *testing.T) {
		repo := NewResponseCacheRepository(newTestDB(t))

		if _, err := repo.Get(Fingerprint("nothing")); err != shared.ErrCacheMiss {
			t.Errorf("expected ErrCacheMiss, got %v", err)
		}
	})

	t.Run("Miss On Expired Entry", func(t *testing.T) {
		repo := NewResponseCacheRepository(newTestDB(t))
		key := Fingerprint("GetSteamLevel", "76561198000000001")

		if err := repo.Put(key, []byte(`{}`), -time.Minute); err != nil {
			t.Fatalf("put failed: %v", err)
		}

		if _, err := repo.Get(key); err != shared.ErrCacheMiss {
			t.Errorf("expected expired entry to miss, got %v", err)
		}
	})

	t.Run("Put Replaces Existing Entry", func(t *testing.T) {
		repo := NewResponseCacheRepository(newTestDB(t))
		key := Fingerprint("GetSteamLevel", "76561198000000001")

		if err := repo.Put(key, []byte(`old`), time.Hour); err != nil {
			t.Fatalf("first put failed: %v", err)
		}
		if err := repo.Put(key, []byte(`new`), time.Hour); err != nil {
			t.Fatalf("second put failed: %v", err)
		}

		body, err := repo.Get(key)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(body) != "new" {
			t.Errorf("expected replacement, got %s", body)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		repo := NewResponseCacheRepository(newTestDB(t))
		repo.Put(Fingerprint("a"), []byte("1"), time.Hour)
		repo.Put(Fingerprint("b"), []byte("2"), time.Hour)

		removed, err := repo.Clear()
		if err != nil {
			t.Fatalf("clear failed: %v", err)
		}
		if removed != 2 {
			t.Errorf("expected 2 removed, got %d", removed)
		}

		stats, err := repo.Stats()
		if err != nil {
			t.Fatalf("stats failed: %v", err)
		}
		if stats.Entries != 0 {
			t.Errorf("expected empty cache, got %d entries", stats.Entries)
		}
	})

	t.Run("Stats", func(t *testing.T) {
		repo := NewResponseCacheRepository(newTestDB(t))
		repo.Put(Fingerprint("live"), []byte("1"), time.Hour)
		repo.Put(Fingerprint("dead"), []byte("2"), -time.Minute)

		stats, err := repo.Stats()
		if err != nil {
			t.Fatalf("stats failed: %v", err)
		}
		if stats.Entries != 2 || stats.Expired != 1 {
			t.Errorf("expected 2 entries with 1 expired, got %+v", stats)
		}
	})
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("GetOwnedGames", "123")
	b := Fingerprint("GetOwnedGames", "123")
	c := Fingerprint("GetOwnedGames", "456")

	if a != b {
		t.Error("same inputs should produce the same fingerprint")
	}
	if a == c {
		t.Error("different inputs should produce different fingerprints")
	}
	// boundary between parts must matter
	if Fingerprint("ab", "c") == Fingerprint("a", "bc") {
		t.Error("fingerprint must separate its parts")
	}
}

func TestRunRepository(t *testing.T) {
	t.Run("Create And Complete", func(t *testing.T) {
		repo := NewRunRepository(newTestDB(t))

		run := &models.Run{SteamID: "76561198000000001", OutputDir: "public/data"}
		if err := repo.Create(run); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if run.ID == "" {
			t.Error("expected generated run ID")
		}

		run.Datasets = 5
		run.Failures = 1
		if err := repo.Complete(run); err != nil {
			t.Fatalf("complete failed: %v", err)
		}

		runs, err := repo.List(10)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(runs) != 1 {
			t.Fatalf("expected 1 run, got %d", len(runs))
		}
		if runs[0].Datasets != 5 || runs[0].Failures != 1 {
			t.Errorf("unexpected run record: %+v", runs[0])
		}
		if !runs[0].Completed() {
			t.Error("expected run to be marked complete")
		}
	})

	t.Run("Complete Unknown Run", func(t *testing.T) {
		repo := NewRunRepository(newTestDB(t))

		if err := repo.Complete(&models.Run{ID: "missing"}); err == nil {
			t.Error("expected error for unknown run")
		}
	})

	t.Run("List Newest First", func(t *testing.T) {
		repo := NewRunRepository(newTestDB(t))

		older := &models.Run{SteamID: "a", StartedAt: time.Now().Add(-time.Hour)}
		newer := &models.Run{SteamID: "b", StartedAt: time.Now()}
		repo.Create(older)
		repo.Create(newer)

		runs, err := repo.List(10)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if runs[0].SteamID != "b" {
			t.Errorf("expected newest run first, got %s", runs[0].SteamID)
		}
	})
}

func TestCachedClient(t *testing.T) {
	newCached := func(t *testing.T, mock *apptesting.MockClient) *CachedClient {
		t.Helper()
		cache := NewResponseCacheRepository(newTestDB(t))
		logger := log.New(io.Discard)
		return NewCachedClient(mock, cache, CachedClientOpts{TTL: time.Hour, Logger: logger})
	}

	t.Run("Second Call Served From Cache", func(t *testing.T) {
		mock := apptesting.NewMockClient()
		mock.GetSteamLevelFn = func(context.Context, string) int { return 42 }
		client := newCached(t, mock)

		ctx := context.Background()
		if level := client.GetSteamLevel(ctx, "76561198000000001"); level != 42 {
			t.Fatalf("expected 42, got %d", level)
		}
		if level := client.GetSteamLevel(ctx, "76561198000000001"); level != 42 {
			t.Fatalf("expected cached 42, got %d", level)
		}

		if mock.Calls["GetSteamLevel"] != 1 {
			t.Errorf("expected 1 upstream call, got %d", mock.Calls["GetSteamLevel"])
		}
	})

	t.Run("Distinct Arguments Miss", func(t *testing.T) {
		mock := apptesting.NewMockClient()
		mock.GetOwnedGamesFn = func(_ context.Context, steamID string) steam.OwnedGames {
			return steam.OwnedGames{GameCount: len(steamID)}
		}
		client := newCached(t, mock)

		ctx := context.Background()
		client.GetOwnedGames(ctx, "a")
		client.GetOwnedGames(ctx, "bb")

		if mock.Calls["GetOwnedGames"] != 2 {
			t.Errorf("expected 2 upstream calls, got %d", mock.Calls["GetOwnedGames"])
		}
	})

	t.Run("Structured Payload Round-Trips", func(t *testing.T) {
		mock := apptesting.NewMockClient()
		mock.GetPlayerAchievementsFn = func(context.Context, string, int, string) steam.PlayerStats {
			return steam.PlayerStats{
				Success:      true,
				GameName:     "Portal",
				Achievements: []steam.Achievement{{APIName: "ACH_1", Achieved: 1, UnlockTime: 1600000000}},
			}
		}
		client := newCached(t, mock)

		ctx := context.Background()
		client.GetPlayerAchievements(ctx, "76561198000000001", 400, "en")
		cached := client.GetPlayerAchievements(ctx, "76561198000000001", 400, "en")

		if !cached.Success || cached.GameName != "Portal" {
			t.Errorf("cached payload corrupted: %+v", cached)
		}
		if len(cached.Achievements) != 1 || cached.Achievements[0].UnlockTime != 1600000000 {
			t.Errorf("cached achievements corrupted: %+v", cached.Achievements)
		}
		if mock.Calls["GetPlayerAchievements"] != 1 {
			t.Errorf("expected 1 upstream call, got %d", mock.Calls["GetPlayerAchievements"])
		}
	})

	t.Run("Failed Vanity Resolution Not Cached", func(t *testing.T) {
		mock := apptesting.NewMockClient()
		resolved := false
		mock.ResolveVanityURLFn = func(context.Context, string, int) (string, bool) {
			if resolved {
				return "76561198000000001", true
			}
			return "", false
		}
		client := newCached(t, mock)

		ctx := context.Background()
		if _, ok := client.ResolveVanityURL(ctx, "gabe", 1); ok {
			t.Fatal("expected first resolution to fail")
		}

		resolved = true
		steamID, ok := client.ResolveVanityURL(ctx, "gabe", 1)
		if !ok || steamID != "76561198000000001" {
			t.Errorf("expected retry to hit upstream, got %q %v", steamID, ok)
		}
	})
}
