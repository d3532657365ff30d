// Steam Web API response types, based on https://steamcommunity.com/dev
// and https://steamapi.xpaw.me/
package steam

// PlayerSummary represents a profile from ISteamUser/GetPlayerSummaries.
type PlayerSummary struct {
	SteamID                  string `json:"steamid"`
	PersonaName              string `json:"personaname"`
	ProfileURL               string `json:"profileurl"`
	Avatar                   string `json:"avatar"`
	AvatarMedium             string `json:"avatarmedium"`
	AvatarFull               string `json:"avatarfull"`
	PersonaState             int    `json:"personastate"`
	CommunityVisibilityState int    `json:"communityvisibilitystate"`
	ProfileState             int    `json:"profilestate"`
	LastLogoff               int64  `json:"lastlogoff,omitempty"`
	TimeCreated              int64  `json:"timecreated,omitempty"`
	RealName                 string `json:"realname,omitempty"`
	CountryCode              string `json:"loccountrycode,omitempty"`
}

type playerSummariesEnvelope struct {
	Response struct {
		Players []PlayerSummary `json:"players"`
	} `json:"response"`
}

// Friend represents an entry from ISteamUser/GetFriendList.
type Friend struct {
	SteamID      string `json:"steamid"`
	Relationship string `json:"relationship"`
	FriendSince  int64  `json:"friend_since"`
}

type friendListEnvelope struct {
	FriendsList struct {
		Friends []Friend `json:"friends"`
	} `json:"friendslist"`
}

type vanityEnvelope struct {
	Response struct {
		SteamID string `json:"steamid"`
		Success int    `json:"success"`
		Message string `json:"message,omitempty"`
	} `json:"response"`
}

// OwnedGame represents one title from IPlayerService/GetOwnedGames.
// Playtimes are in minutes.
type OwnedGame struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"`
	Playtime2Weeks  int    `json:"playtime_2weeks,omitempty"`
	ImgIconURL      string `json:"img_icon_url,omitempty"`
	ImgLogoURL      string `json:"img_logo_url,omitempty"`
}

// OwnedGames is the inner response of IPlayerService/GetOwnedGames.
type OwnedGames struct {
	GameCount int         `json:"game_count"`
	Games     []OwnedGame `json:"games"`
}

type ownedGamesEnvelope struct {
	Response OwnedGames `json:"response"`
}

// RecentlyPlayed is the inner response of IPlayerService/GetRecentlyPlayedGames.
type RecentlyPlayed struct {
	TotalCount int         `json:"total_count"`
	Games      []OwnedGame `json:"games"`
}

type recentlyPlayedEnvelope struct {
	Response RecentlyPlayed `json:"response"`
}

type steamLevelEnvelope struct {
	Response struct {
		PlayerLevel int `json:"player_level"`
	} `json:"response"`
}

// Badge represents one unlocked badge from IPlayerService/GetBadges.
type Badge struct {
	BadgeID        int   `json:"badgeid"`
	Level          int   `json:"level"`
	CompletionTime int64 `json:"completion_time"`
	XP             int   `json:"xp"`
	Scarcity       int   `json:"scarcity"`
	AppID          int   `json:"appid,omitempty"`
}

// Badges is the inner response of IPlayerService/GetBadges.
type Badges struct {
	Badges                     []Badge `json:"badges"`
	PlayerXP                   int     `json:"player_xp"`
	PlayerLevel                int     `json:"player_level"`
	PlayerXPNeededToLevelUp    int     `json:"player_xp_needed_to_level_up"`
	PlayerXPNeededCurrentLevel int     `json:"player_xp_needed_current_level"`
}

type badgesEnvelope struct {
	Response Badges `json:"response"`
}

// Achievement represents one entry from ISteamUserStats/GetPlayerAchievements.
// Achieved is 1 when unlocked; UnlockTime is a unix timestamp, 0 when locked.
type Achievement struct {
	APIName     string `json:"apiname"`
	Achieved    int    `json:"achieved"`
	UnlockTime  int64  `json:"unlocktime"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// PlayerStats is the inner playerstats object of GetPlayerAchievements.
//
// Success is the API's own flag, distinct from HTTP success: false commonly
// means the app has no achievements or the profile's game stats are private.
type PlayerStats struct {
	SteamID      string        `json:"steamID"`
	GameName     string        `json:"gameName"`
	Success      bool          `json:"success"`
	Achievements []Achievement `json:"achievements"`
	Error        string        `json:"error,omitempty"`
}

type playerStatsEnvelope struct {
	PlayerStats PlayerStats `json:"playerstats"`
}

// GameStat represents one numeric stat from ISteamUserStats/GetUserStatsForGame.
type GameStat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// UserGameStats is the inner playerstats object of GetUserStatsForGame.
type UserGameStats struct {
	SteamID      string        `json:"steamID"`
	GameName     string        `json:"gameName"`
	Stats        []GameStat    `json:"stats"`
	Achievements []Achievement `json:"achievements"`
}

type userGameStatsEnvelope struct {
	PlayerStats UserGameStats `json:"playerstats"`
}

// GlobalAchievement represents one entry from GetGlobalAchievementPercentagesForApp.
// Percent comes over the wire as a string in v0002.
type GlobalAchievement struct {
	Name    string `json:"name"`
	Percent string `json:"percent"`
}

type globalAchievementsEnvelope struct {
	AchievementPercentages struct {
		Achievements []GlobalAchievement `json:"achievements"`
	} `json:"achievementpercentages"`
}

type currentPlayersEnvelope struct {
	Response struct {
		PlayerCount int `json:"player_count"`
		Result      int `json:"result"`
	} `json:"response"`
}

// NewsItem represents one entry from ISteamNews/GetNewsForApp.
type NewsItem struct {
	GID      string `json:"gid"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Author   string `json:"author"`
	Contents string `json:"contents"`
	FeedName string `json:"feedlabel"`
	Date     int64  `json:"date"`
}

type newsEnvelope struct {
	AppNews struct {
		AppID     int        `json:"appid"`
		NewsItems []NewsItem `json:"newsitems"`
	} `json:"appnews"`
}

// App represents one entry from ISteamApps/GetAppList.
type App struct {
	AppID int    `json:"appid"`
	Name  string `json:"name"`
}

type appListEnvelope struct {
	AppList struct {
		Apps []App `json:"apps"`
	} `json:"applist"`
}

// APIMethod describes one method from ISteamWebAPIUtil/GetSupportedAPIList.
type APIMethod struct {
	Name       string `json:"name"`
	Version    int    `json:"version"`
	HTTPMethod string `json:"httpmethod"`
}

// APIInterface describes one interface from ISteamWebAPIUtil/GetSupportedAPIList.
type APIInterface struct {
	Name    string      `json:"name"`
	Methods []APIMethod `json:"methods"`
}

type apiListEnvelope struct {
	APIList struct {
		Interfaces []APIInterface `json:"interfaces"`
	} `json:"apilist"`
}

// ServerInfo is the response of ISteamWebAPIUtil/GetServerInfo.
type ServerInfo struct {
	ServerTime       int64  `json:"servertime"`
	ServerTimeString string `json:"servertimestring"`
}
