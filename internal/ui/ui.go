package ui

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"steamgen/internal/models"
	"steamgen/internal/stats"
	"steamgen/internal/steam"
	"steamgen/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	GameListView ViewState = iota
	AchievementListView
	SummaryView
)

// Model represents the TUI application state.
type Model struct {
	ctx             context.Context
	view            ViewState
	client          tasks.Client
	aggregator      *stats.Aggregator
	steamID         string
	width           int
	height          int
	gameList        list.Model
	games           []steam.OwnedGame
	achievementList list.Model
	selectedGame    *steam.OwnedGame
	playerStats     steam.PlayerStats
	summary         *models.AchievementSummary
	err             error
	help            help.Model
	keys            keyMap
}

type gamesFetchedMsg struct {
	games []steam.OwnedGame
	err   error
}

type achievementsFetchedMsg struct {
	stats steam.PlayerStats
}

type summaryFetchedMsg struct {
	summary *models.AchievementSummary
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, client tasks.Client, steamID string) *Model {
	return &Model{
		ctx:        ctx,
		view:       GameListView,
		client:     client,
		aggregator: stats.NewAggregator(client, nil),
		steamID:    steamID,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init initializes the TUI by fetching the owned-game library.
func (m *Model) Init() tea.Cmd {
	return m.fetchGames()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.gameList.Width() == 0 {
			m.gameList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.achievementList.Width() == 0 {
			m.achievementList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case GameListView:
			return m.handleGameListKeys(msg)
		case AchievementListView:
			return m.handleAchievementListKeys(msg)
		case SummaryView:
			return m.handleSummaryKeys(msg)
		}

	case gamesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.games = msg.games
		items := make([]list.Item, len(msg.games))
		for i, game := range msg.games {
			items[i] = gameItem{game: game}
		}
		m.gameList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.gameList.Title = fmt.Sprintf("Library (%d games)", len(msg.games))
		m.gameList.SetSize(m.width-4, m.height-8)
		return m, nil

	case achievementsFetchedMsg:
		m.playerStats = msg.stats
		items := make([]list.Item, len(msg.stats.Achievements))
		for i, achievement := range msg.stats.Achievements {
			items[i] = achievementItem{achievement: achievement}
		}
		m.achievementList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.achievementList.Title = m.achievementTitle()
		m.achievementList.SetSize(m.width-4, m.height-8)
		m.view = AchievementListView
		return m, nil

	case summaryFetchedMsg:
		m.summary = msg.summary
		m.view = SummaryView
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case GameListView:
		return m.renderGameList()
	case AchievementListView:
		return m.renderAchievementList()
	case SummaryView:
		return m.renderSummary()
	default:
		return ""
	}
}

func (m *Model) handleGameListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s":
		return m, m.fetchSummary()
	case "enter":
		selected := m.gameList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(gameItem); ok {
				m.selectedGame = &item.game
				return m, m.fetchAchievements(item.game.AppID)
			}
		}
	}

	var cmd tea.Cmd
	m.gameList, cmd = m.gameList.Update(msg)
	return m, cmd
}

func (m *Model) handleAchievementListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = GameListView
		m.selectedGame = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.achievementList, cmd = m.achievementList.Update(msg)
	return m, cmd
}

func (m *Model) handleSummaryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = GameListView
		return m, nil
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case GameListView:
		m.gameList, cmd = m.gameList.Update(msg)
	case AchievementListView:
		m.achievementList, cmd = m.achievementList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchGames() tea.Cmd {
	return func() tea.Msg {
		owned := m.client.GetOwnedGames(m.ctx, m.steamID)
		if len(owned.Games) == 0 {
			return gamesFetchedMsg{err: fmt.Errorf("no games found for %s", m.steamID)}
		}

		games := make([]steam.OwnedGame, len(owned.Games))
		copy(games, owned.Games)
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].PlaytimeForever > games[j].PlaytimeForever
		})

		return gamesFetchedMsg{games: games}
	}
}

func (m *Model) fetchAchievements(appID int) tea.Cmd {
	return func() tea.Msg {
		return achievementsFetchedMsg{stats: m.client.GetPlayerAchievements(m.ctx, m.steamID, appID, "")}
	}
}

func (m *Model) fetchSummary() tea.Cmd {
	return func() tea.Msg {
		return summaryFetchedMsg{summary: m.aggregator.Summarize(m.ctx, m.steamID)}
	}
}

func (m *Model) achievementTitle() string {
	name := m.playerStats.GameName
	if name == "" && m.selectedGame != nil {
		name = m.selectedGame.Name
	}

	if !m.playerStats.Success || len(m.playerStats.Achievements) == 0 {
		return fmt.Sprintf("%s (no achievements)", name)
	}

	unlocked := 0
	for _, achievement := range m.playerStats.Achievements {
		if achievement.Achieved == 1 {
			unlocked++
		}
	}
	return fmt.Sprintf("%s (%d/%d unlocked)", name, unlocked, len(m.playerStats.Achievements))
}

func (m *Model) renderGameList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.summary, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.gameList.View(), helpView)
}

func (m *Model) renderAchievementList() string {
	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.achievementList.View(), helpView)
}

func (m *Model) renderSummary() string {
	if m.summary == nil {
		return styles.warn.Render("No summary available\n\nPress esc to go back, q to quit")
	}

	title := styles.title.Render(fmt.Sprintf("Achievements for %s", m.summary.SteamID))
	info := fmt.Sprintf(
		"\nGames: %d (%d with achievements)\nUnlocked: %d / %d (%.2f%%)\nPerfect games: %d\n",
		m.summary.TotalGames,
		m.summary.GamesWithAchievements,
		m.summary.TotalUnlocked,
		m.summary.TotalAchievements,
		m.summary.CompletionPercentage,
		len(m.summary.PerfectGames),
	)

	var perfect string
	if len(m.summary.PerfectGames) > 0 {
		perfect = fmt.Sprintf("\n%s", styles.ok.Render("Perfect games:"))
		for _, game := range m.summary.PerfectGames {
			perfect += fmt.Sprintf("\n  ✓ %s (%d achievements)", game.Name, game.Total)
		}
		perfect += "\n"
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s\n%s", title, info, perfect, helpView)
}
