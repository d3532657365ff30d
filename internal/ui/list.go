package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"steamgen/internal/shared"
	"steamgen/internal/steam"
)

var (
	_ list.Item = gameItem{}
	_ list.Item = achievementItem{}
)

// gameItem wraps [steam.OwnedGame] to implement [list.Item].
type gameItem struct {
	game steam.OwnedGame
}

func (i gameItem) FilterValue() string { return i.game.Name }
func (i gameItem) Title() string       { return i.game.Name }
func (i gameItem) Description() string {
	desc := shared.FormatPlaytime(i.game.PlaytimeForever)
	if i.game.Playtime2Weeks > 0 {
		desc = fmt.Sprintf("%s • %s recently", desc, shared.FormatPlaytime(i.game.Playtime2Weeks))
	}
	return desc
}

// achievementItem wraps [steam.Achievement] to implement [list.Item].
type achievementItem struct {
	achievement steam.Achievement
}

func (i achievementItem) FilterValue() string { return i.achievement.APIName }
func (i achievementItem) Title() string {
	if i.achievement.Achieved == 1 {
		return fmt.Sprintf("✓ %s", i.achievement.APIName)
	}
	return fmt.Sprintf("  %s", i.achievement.APIName)
}
func (i achievementItem) Description() string {
	if i.achievement.Achieved != 1 {
		return "locked"
	}
	if i.achievement.UnlockTime == 0 {
		return "unlocked"
	}
	return fmt.Sprintf("unlocked %s", time.Unix(i.achievement.UnlockTime, 0).Format("2006-01-02"))
}
