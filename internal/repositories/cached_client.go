package repositories

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"steamgen/internal/shared"
	"steamgen/internal/steam"
	"steamgen/internal/tasks"
)

// CachedClient wraps a tasks.Client with the response cache.
//
// Hits are served from SQLite without touching the API or its throttle.
// Cache failures degrade to a direct call, never to an error.
type CachedClient struct {
	client tasks.Client
	cache  *ResponseCacheRepository
	ttl    time.Duration
	logger *log.Logger
}

// CachedClientOpts contains configuration options for creating a CachedClient.
type CachedClientOpts struct {
	TTL    time.Duration
	Logger *log.Logger
}

// NewCachedClient creates a CachedClient wrapping the given client and cache repository
func NewCachedClient(client tasks.Client, cache *ResponseCacheRepository, opts CachedClientOpts) *CachedClient {
	if opts.TTL <= 0 {
		opts.TTL = time.Hour
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &CachedClient{
		client: client,
		cache:  cache,
		ttl:    opts.TTL,
		logger: opts.Logger,
	}
}

// cachedCall serves a typed result from the cache when possible, falling back to fetch.
func cachedCall[T any](c *CachedClient, fingerprint string, fetch func() T) T {
	body, err := c.cache.Get(fingerprint)
	if err == nil {
		var cached T
		if unmarshalErr := json.Unmarshal(body, &cached); unmarshalErr == nil {
			return cached
		}
		c.logger.Warn("discarding unreadable cache entry", "fingerprint", fingerprint)
	}

	result := fetch()

	if encoded, marshalErr := json.Marshal(result); marshalErr == nil {
		if putErr := c.cache.Put(fingerprint, encoded, c.ttl); putErr != nil {
			c.logger.Warn("failed to store cache entry", "fingerprint", fingerprint, "error", putErr)
		}
	}

	return result
}

func (c *CachedClient) GetPlayerSummaries(ctx context.Context, steamIDs []string) []steam.PlayerSummary {
	key := Fingerprint("GetPlayerSummaries", strings.Join(steamIDs, ","))
	return cachedCall(c, key, func() []steam.PlayerSummary {
		return c.client.GetPlayerSummaries(ctx, steamIDs)
	})
}

func (c *CachedClient) GetFriendList(ctx context.Context, steamID, relationship string) []steam.Friend {
	key := Fingerprint("GetFriendList", steamID, relationship)
	return cachedCall(c, key, func() []steam.Friend {
		return c.client.GetFriendList(ctx, steamID, relationship)
	})
}

// resolvedVanity is the cache payload for successful vanity resolutions.
type resolvedVanity struct {
	SteamID string `json:"steam_id"`
}

// ResolveVanityURL caches successful resolutions only, so transient failures retry.
func (c *CachedClient) ResolveVanityURL(ctx context.Context, vanity string, urlType int) (string, bool) {
	key := Fingerprint("ResolveVanityURL", vanity, strconv.Itoa(urlType))

	if body, err := c.cache.Get(key); err == nil {
		var cached resolvedVanity
		if json.Unmarshal(body, &cached) == nil && cached.SteamID != "" {
			return cached.SteamID, true
		}
	}

	steamID, ok := c.client.ResolveVanityURL(ctx, vanity, urlType)
	if ok {
		if encoded, err := json.Marshal(resolvedVanity{SteamID: steamID}); err == nil {
			if putErr := c.cache.Put(key, encoded, c.ttl); putErr != nil {
				c.logger.Warn("failed to store cache entry", "fingerprint", key, "error", putErr)
			}
		}
	}

	return steamID, ok
}

func (c *CachedClient) GetOwnedGames(ctx context.Context, steamID string) steam.OwnedGames {
	key := Fingerprint("GetOwnedGames", steamID)
	return cachedCall(c, key, func() steam.OwnedGames {
		return c.client.GetOwnedGames(ctx, steamID)
	})
}

func (c *CachedClient) GetRecentlyPlayedGames(ctx context.Context, steamID string, count int) steam.RecentlyPlayed {
	key := Fingerprint("GetRecentlyPlayedGames", steamID, strconv.Itoa(count))
	return cachedCall(c, key, func() steam.RecentlyPlayed {
		return c.client.GetRecentlyPlayedGames(ctx, steamID, count)
	})
}

func (c *CachedClient) GetSteamLevel(ctx context.Context, steamID string) int {
	key := Fingerprint("GetSteamLevel", steamID)
	return cachedCall(c, key, func() int {
		return c.client.GetSteamLevel(ctx, steamID)
	})
}

func (c *CachedClient) GetBadges(ctx context.Context, steamID string) steam.Badges {
	key := Fingerprint("GetBadges", steamID)
	return cachedCall(c, key, func() steam.Badges {
		return c.client.GetBadges(ctx, steamID)
	})
}

func (c *CachedClient) GetPlayerAchievements(ctx context.Context, steamID string, appID int, language string) steam.PlayerStats {
	key := Fingerprint("GetPlayerAchievements", steamID, strconv.Itoa(appID), language)
	return cachedCall(c, key, func() steam.PlayerStats {
		return c.client.GetPlayerAchievements(ctx, steamID, appID, language)
	})
}

func (c *CachedClient) GetNumberOfCurrentPlayers(ctx context.Context, appID int) int {
	key := Fingerprint("GetNumberOfCurrentPlayers", strconv.Itoa(appID))
	return cachedCall(c, key, func() int {
		return c.client.GetNumberOfCurrentPlayers(ctx, appID)
	})
}

func (c *CachedClient) GetGlobalAchievementPercentages(ctx context.Context, appID int) []steam.GlobalAchievement {
	key := Fingerprint("GetGlobalAchievementPercentages", strconv.Itoa(appID))
	return cachedCall(c, key, func() []steam.GlobalAchievement {
		return c.client.GetGlobalAchievementPercentages(ctx, appID)
	})
}

func (c *CachedClient) GetNewsForApp(ctx context.Context, appID, count, maxLength int) []steam.NewsItem {
	key := Fingerprint("GetNewsForApp", strconv.Itoa(appID), strconv.Itoa(count), strconv.Itoa(maxLength))
	return cachedCall(c, key, func() []steam.NewsItem {
		return c.client.GetNewsForApp(ctx, appID, count, maxLength)
	})
}
