package main

import (
	"context"
	"sort"
	"time"

	"github.com/urfave/cli/v3"

	"steamgen/internal/shared"
	"steamgen/internal/steam"
)

// PlayerSummary shows the player's profile summary.
func (r *Runner) PlayerSummary(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireClient(); err != nil {
		return err
	}

	steamID, err := r.steamID(cmd)
	if err != nil {
		return err
	}

	r.logger.Info("fetching player summary", "steam_id", steamID)

	players := r.client.GetPlayerSummaries(ctx, []string{steamID})
	if len(players) == 0 {
		return shared.ErrNoData
	}
	player := players[0]

	if cmd.Bool("json") {
		return r.writeJSON(player, cmd.Bool("pretty"))
	}

	r.writePlainHeader(player.PersonaName)
	r.writePlain("SteamID: %s\n", player.SteamID)
	r.writePlain("Profile: %s\n", player.ProfileURL)
	if player.RealName != "" {
		r.writePlain("Name: %s\n", player.RealName)
	}
	if player.TimeCreated > 0 {
		r.writePlain("Member since: %s\n", time.Unix(player.TimeCreated, 0).Format("2006-01-02"))
	}
	r.writePlain("Level: %d\n", r.client.GetSteamLevel(ctx, steamID))

	return nil
}

// PlayerGames lists the player's owned games sorted by playtime.
func (r *Runner) PlayerGames(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireClient(); err != nil {
		return err
	}

	steamID, err := r.steamID(cmd)
	if err != nil {
		return err
	}
	limit := int(cmd.Int("limit"))

	r.logger.Info("fetching owned games", "steam_id", steamID, "limit", limit)

	owned := r.client.GetOwnedGames(ctx, steamID)
	if len(owned.Games) == 0 {
		return shared.ErrNoGames
	}

	games := make([]steam.OwnedGame, len(owned.Games))
	copy(games, owned.Games)
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].PlaytimeForever > games[j].PlaytimeForever
	})
	if limit > 0 && len(games) > limit {
		games = games[:limit]
	}

	if cmd.Bool("json") {
		return r.writeJSON(games, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Owned Games")
	r.writePlain("Total: %d games\n\n", owned.GameCount)
	for i, game := range games {
		r.writePlain("%3d. %s — %s\n", i+1, game.Name, shared.FormatPlaytime(game.PlaytimeForever))
	}

	return nil
}

// PlayerRecent lists games played in the last two weeks.
func (r *Runner) PlayerRecent(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireClient(); err != nil {
		return err
	}

	steamID, err := r.steamID(cmd)
	if err != nil {
		return err
	}

	recent := r.client.GetRecentlyPlayedGames(ctx, steamID, 0)

	if cmd.Bool("json") {
		return r.writeJSON(recent, cmd.Bool("pretty"))
	}

	if recent.TotalCount == 0 {
		r.writePlain("No games played in the last two weeks.\n")
		return nil
	}

	r.writePlainHeader("Recently Played")
	for i, game := range recent.Games {
		r.writePlain("%d. %s — %s in the last two weeks\n", i+1, game.Name, shared.FormatPlaytime(game.Playtime2Weeks))
	}

	return nil
}

// PlayerLevel shows the player's Steam level.
func (r *Runner) PlayerLevel(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireClient(); err != nil {
		return err
	}

	steamID, err := r.steamID(cmd)
	if err != nil {
		return err
	}

	r.writePlain("Level %d\n", r.client.GetSteamLevel(ctx, steamID))
	return nil
}

// PlayerBadges lists the player's badges.
func (r *Runner) PlayerBadges(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireClient(); err != nil {
		return err
	}

	steamID, err := r.steamID(cmd)
	if err != nil {
		return err
	}

	badges := r.client.GetBadges(ctx, steamID)

	if cmd.Bool("json") {
		return r.writeJSON(badges, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Badges")
	r.writePlain("Level %d, %d XP (%d badges)\n\n", badges.PlayerLevel, badges.PlayerXP, len(badges.Badges))
	for _, badge := range badges.Badges {
		r.writePlain("  Badge %d — level %d, %d XP\n", badge.BadgeID, badge.Level, badge.XP)
	}

	return nil
}

// PlayerFriends lists the player's friends.
func (r *Runner) PlayerFriends(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireClient(); err != nil {
		return err
	}

	steamID, err := r.steamID(cmd)
	if err != nil {
		return err
	}

	friends := r.client.GetFriendList(ctx, steamID, "friend")
	if len(friends) == 0 {
		r.writePlain("No friends visible (the friend list may be private).\n")
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(friends, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Friends")
	for i, friend := range friends {
		since := time.Unix(friend.FriendSince, 0).Format("2006-01-02")
		r.writePlain("%3d. %s (friends since %s)\n", i+1, friend.SteamID, since)
	}

	return nil
}
