// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"steamgen/internal/steam"
)

// MockClient is a test double for the Steam client interface.
//
// Each method delegates to the corresponding Fn field when set and
// returns a zero value otherwise. Calls counts every invocation by
// method name.
type MockClient struct {
	Calls map[string]int

	GetPlayerSummariesFn              func(ctx context.Context, steamIDs []string) []steam.PlayerSummary
	GetFriendListFn                   func(ctx context.Context, steamID, relationship string) []steam.Friend
	ResolveVanityURLFn                func(ctx context.Context, vanity string, urlType int) (string, bool)
	GetOwnedGamesFn                   func(ctx context.Context, steamID string) steam.OwnedGames
	GetRecentlyPlayedGamesFn          func(ctx context.Context, steamID string, count int) steam.RecentlyPlayed
	GetSteamLevelFn                   func(ctx context.Context, steamID string) int
	GetBadgesFn                       func(ctx context.Context, steamID string) steam.Badges
	GetPlayerAchievementsFn           func(ctx context.Context, steamID string, appID int, language string) steam.PlayerStats
	GetNumberOfCurrentPlayersFn       func(ctx context.Context, appID int) int
	GetGlobalAchievementPercentagesFn func(ctx context.Context, appID int) []steam.GlobalAchievement
	GetNewsForAppFn                   func(ctx context.Context, appID, count, maxLength int) []steam.NewsItem
}

func NewMockClient() *MockClient {
	return &MockClient{Calls: map[string]int{}}
}

func (m *MockClient) record(method string) {
	if m.Calls == nil {
		m.Calls = map[string]int{}
	}
	m.Calls[method]++
}

func (m *MockClient) GetPlayerSummaries(ctx context.Context, steamIDs []string) []steam.PlayerSummary {
	m.record("GetPlayerSummaries")
	if m.GetPlayerSummariesFn != nil {
		return m.GetPlayerSummariesFn(ctx, steamIDs)
	}
	return nil
}

func (m *MockClient) GetFriendList(ctx context.Context, steamID, relationship string) []steam.Friend {
	m.record("GetFriendList")
	if m.GetFriendListFn != nil {
		return m.GetFriendListFn(ctx, steamID, relationship)
	}
	return nil
}

func (m *MockClient) ResolveVanityURL(ctx context.Context, vanity string, urlType int) (string, bool) {
	m.record("ResolveVanityURL")
	if m.ResolveVanityURLFn != nil {
		return m.ResolveVanityURLFn(ctx, vanity, urlType)
	}
	return "", false
}

func (m *MockClient) GetOwnedGames(ctx context.Context, steamID string) steam.OwnedGames {
	m.record("GetOwnedGames")
	if m.GetOwnedGamesFn != nil {
		return m.GetOwnedGamesFn(ctx, steamID)
	}
	return steam.OwnedGames{}
}

func (m *MockClient) GetRecentlyPlayedGames(ctx context.Context, steamID string, count int) steam.RecentlyPlayed {
	m.record("GetRecentlyPlayedGames")
	if m.GetRecentlyPlayedGamesFn != nil {
		return m.GetRecentlyPlayedGamesFn(ctx, steamID, count)
	}
	return steam.RecentlyPlayed{}
}

func (m *MockClient) GetSteamLevel(ctx context.Context, steamID string) int {
	m.record("GetSteamLevel")
	if m.GetSteamLevelFn != nil {
		return m.GetSteamLevelFn(ctx, steamID)
	}
	return 0
}

func (m *MockClient) GetBadges(ctx context.Context, steamID string) steam.Badges {
	m.record("GetBadges")
	if m.GetBadgesFn != nil {
		return m.GetBadgesFn(ctx, steamID)
	}
	return steam.Badges{}
}

func (m *MockClient) GetPlayerAchievements(ctx context.Context, steamID string, appID int, language string) steam.PlayerStats {
	m.record("GetPlayerAchievements")
	if m.GetPlayerAchievementsFn != nil {
		return m.GetPlayerAchievementsFn(ctx, steamID, appID, language)
	}
	return steam.PlayerStats{}
}

func (m *MockClient) GetNumberOfCurrentPlayers(ctx context.Context, appID int) int {
	m.record("GetNumberOfCurrentPlayers")
	if m.GetNumberOfCurrentPlayersFn != nil {
		return m.GetNumberOfCurrentPlayersFn(ctx, appID)
	}
	return 0
}

func (m *MockClient) GetGlobalAchievementPercentages(ctx context.Context, appID int) []steam.GlobalAchievement {
	m.record("GetGlobalAchievementPercentages")
	if m.GetGlobalAchievementPercentagesFn != nil {
		return m.GetGlobalAchievementPercentagesFn(ctx, appID)
	}
	return nil
}

func (m *MockClient) GetNewsForApp(ctx context.Context, appID, count, maxLength int) []steam.NewsItem {
	m.record("GetNewsForApp")
	if m.GetNewsForAppFn != nil {
		return m.GetNewsForAppFn(ctx, appID, count, maxLength)
	}
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
