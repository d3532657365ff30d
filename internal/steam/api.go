// Typed endpoint wrappers over [Client.Request].
//
// Every wrapper returns its zero value when the underlying call fails; no error surfaces to the caller.
package steam

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// GetPlayerSummaries fetches basic profile information for up to 100 SteamIDs.
func (c *Client) GetPlayerSummaries(ctx context.Context, steamIDs []string) []PlayerSummary {
	params := url.Values{}
	params.Set("steamids", strings.Join(steamIDs, ","))

	var resp playerSummariesEnvelope
	c.fetch(ctx, "ISteamUser", "GetPlayerSummaries", "v0002", params, &resp)
	return resp.Response.Players
}

// GetFriendList fetches the friend list of a public profile.
func (c *Client) GetFriendList(ctx context.Context, steamID, relationship string) []Friend {
	if relationship == "" {
		relationship = "friend"
	}
	params := url.Values{}
	params.Set("steamid", steamID)
	params.Set("relationship", relationship)

	var resp friendListEnvelope
	c.fetch(ctx, "ISteamUser", "GetFriendList", "v0001", params, &resp)
	return resp.FriendsList.Friends
}

// ResolveVanityURL resolves a vanity URL fragment (steamcommunity.com/id/{vanity}) to a 64-bit SteamID.
// The second return value is false when the name did not resolve.
func (c *Client) ResolveVanityURL(ctx context.Context, vanity string, urlType int) (string, bool) {
	if urlType <= 0 {
		urlType = 1
	}
	params := url.Values{}
	params.Set("vanityurl", vanity)
	params.Set("url_type", strconv.Itoa(urlType))

	var resp vanityEnvelope
	c.fetch(ctx, "ISteamUser", "ResolveVanityURL", "v0001", params, &resp)
	return resp.Response.SteamID, resp.Response.Success == 1
}

// GetOwnedGames fetches the account's library with app info and played free games included.
func (c *Client) GetOwnedGames(ctx context.Context, steamID string) OwnedGames {
	params := url.Values{}
	params.Set("steamid", steamID)
	params.Set("include_appinfo", "1")
	params.Set("include_played_free_games", "1")

	var resp ownedGamesEnvelope
	c.fetch(ctx, "IPlayerService", "GetOwnedGames", "v0001", params, &resp)
	return resp.Response
}

// GetRecentlyPlayedGames fetches games played in the last two weeks. count 0 means all.
func (c *Client) GetRecentlyPlayedGames(ctx context.Context, steamID string, count int) RecentlyPlayed {
	params := url.Values{}
	params.Set("steamid", steamID)
	params.Set("count", strconv.Itoa(count))

	var resp recentlyPlayedEnvelope
	c.fetch(ctx, "IPlayerService", "GetRecentlyPlayedGames", "v0001", params, &resp)
	return resp.Response
}

// GetSteamLevel fetches the account's Steam level.
func (c *Client) GetSteamLevel(ctx context.Context, steamID string) int {
	params := url.Values{}
	params.Set("steamid", steamID)

	var resp steamLevelEnvelope
	c.fetch(ctx, "IPlayerService", "GetSteamLevel", "v1", params, &resp)
	return resp.Response.PlayerLevel
}

// GetBadges fetches the badges the account has unlocked.
func (c *Client) GetBadges(ctx context.Context, steamID string) Badges {
	params := url.Values{}
	params.Set("steamid", steamID)

	var resp badgesEnvelope
	c.fetch(ctx, "IPlayerService", "GetBadges", "v1", params, &resp)
	return resp.Response
}

// GetPlayerAchievements fetches the account's achievements for one app.
//
// Check [PlayerStats.Success] before using the entries: the API reports its
// own success flag inside an HTTP 200 response.
func (c *Client) GetPlayerAchievements(ctx context.Context, steamID string, appID int, language string) PlayerStats {
	if language == "" {
		language = "en"
	}
	params := url.Values{}
	params.Set("steamid", steamID)
	params.Set("appid", strconv.Itoa(appID))
	params.Set("l", language)

	var resp playerStatsEnvelope
	c.fetch(ctx, "ISteamUserStats", "GetPlayerAchievements", "v0001", params, &resp)
	return resp.PlayerStats
}

// GetUserStatsForGame fetches the account's numeric stats for one app.
func (c *Client) GetUserStatsForGame(ctx context.Context, steamID string, appID int) UserGameStats {
	params := url.Values{}
	params.Set("steamid", steamID)
	params.Set("appid", strconv.Itoa(appID))

	var resp userGameStatsEnvelope
	c.fetch(ctx, "ISteamUserStats", "GetUserStatsForGame", "v0002", params, &resp)
	return resp.PlayerStats
}

// GetGlobalAchievementPercentages fetches global completion percentages for one app.
func (c *Client) GetGlobalAchievementPercentages(ctx context.Context, appID int) []GlobalAchievement {
	params := url.Values{}
	params.Set("gameid", strconv.Itoa(appID))

	var resp globalAchievementsEnvelope
	c.fetch(ctx, "ISteamUserStats", "GetGlobalAchievementPercentagesForApp", "v0002", params, &resp)
	return resp.AchievementPercentages.Achievements
}

// GetNumberOfCurrentPlayers fetches the current in-game player count for one app.
func (c *Client) GetNumberOfCurrentPlayers(ctx context.Context, appID int) int {
	params := url.Values{}
	params.Set("appid", strconv.Itoa(appID))

	var resp currentPlayersEnvelope
	c.fetch(ctx, "ISteamUserStats", "GetNumberOfCurrentPlayers", "v1", params, &resp)
	return resp.Response.PlayerCount
}

// GetNewsForApp fetches recent news items for one app.
func (c *Client) GetNewsForApp(ctx context.Context, appID, count, maxLength int) []NewsItem {
	params := url.Values{}
	params.Set("appid", strconv.Itoa(appID))
	params.Set("count", strconv.Itoa(count))
	params.Set("maxlength", strconv.Itoa(maxLength))

	var resp newsEnvelope
	c.fetch(ctx, "ISteamNews", "GetNewsForApp", "v0002", params, &resp)
	return resp.AppNews.NewsItems
}

// GetAppList fetches the complete list of Steam apps. The response is large.
func (c *Client) GetAppList(ctx context.Context) []App {
	var resp appListEnvelope
	c.fetch(ctx, "ISteamApps", "GetAppList", "v2", nil, &resp)
	return resp.AppList.Apps
}

// GetSupportedAPIList fetches all interfaces and methods visible to the configured key.
func (c *Client) GetSupportedAPIList(ctx context.Context) []APIInterface {
	var resp apiListEnvelope
	c.fetch(ctx, "ISteamWebAPIUtil", "GetSupportedAPIList", "v1", nil, &resp)
	return resp.APIList.Interfaces
}

// GetServerInfo fetches WebAPI server time, useful as a connectivity check.
func (c *Client) GetServerInfo(ctx context.Context) ServerInfo {
	var resp ServerInfo
	c.fetch(ctx, "ISteamWebAPIUtil", "GetServerInfo", "v1", nil, &resp)
	return resp
}
