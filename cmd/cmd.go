// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func steamIDFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "steamid",
		Aliases: []string{"s"},
		Usage:   "64-bit SteamID of the account",
	}
}

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
}

// generateCommand handles dataset generation
func generateCommand(r *Runner) *cli.Command {
	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Directory to write datasets to",
	}

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate JSON dataset files",
		Commands: []*cli.Command{
			{
				Name:   "all",
				Usage:  "Generate every dataset plus run manifest",
				Flags:  []cli.Flag{configFlag(), steamIDFlag(), outputFlag},
				Action: r.GenerateAll,
			},
			{
				Name:   "profile",
				Usage:  "Generate the player profile dataset",
				Flags:  append([]cli.Flag{configFlag(), steamIDFlag(), outputFlag}, jsonFlags()...),
				Action: r.GenerateProfile,
			},
			{
				Name:   "topgames",
				Usage:  "Generate the playtime leaderboard dataset",
				Flags: append([]cli.Flag{configFlag(), steamIDFlag(), outputFlag,
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Also write a CSV export",
					},
				}, jsonFlags()...),
				Action: r.GenerateTopGames,
			},
			{
				Name:   "achievements",
				Usage:  "Generate the achievements dataset",
				Flags:  append([]cli.Flag{configFlag(), steamIDFlag(), outputFlag}, jsonFlags()...),
				Action: r.GenerateAchievements,
			},
			{
				Name:   "enriched",
				Usage:  "Generate the enriched games dataset",
				Flags: append([]cli.Flag{configFlag(), steamIDFlag(), outputFlag,
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of games to enrich",
						Value: 20,
					},
				}, jsonFlags()...),
				Action: r.GenerateEnriched,
			},
			{
				Name:   "popular",
				Usage:  "Generate the popular games stats dataset",
				Flags:  append([]cli.Flag{configFlag(), outputFlag}, jsonFlags()...),
				Action: r.GeneratePopular,
			},
		},
	}
}

// playerCommand handles per-account queries
func playerCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "player",
		Usage: "Query a player's profile, games, and badges",
		Commands: []*cli.Command{
			{
				Name:   "summary",
				Usage:  "Show the player's profile summary",
				Flags:  append([]cli.Flag{configFlag(), steamIDFlag()}, jsonFlags()...),
				Action: r.PlayerSummary,
			},
			{
				Name:  "games",
				Usage: "List the player's owned games by playtime",
				Flags: append([]cli.Flag{configFlag(), steamIDFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of games to show",
						Value: 25,
					},
				}, jsonFlags()...),
				Action: r.PlayerGames,
			},
			{
				Name:   "recent",
				Usage:  "List games played in the last two weeks",
				Flags:  append([]cli.Flag{configFlag(), steamIDFlag()}, jsonFlags()...),
				Action: r.PlayerRecent,
			},
			{
				Name:   "level",
				Usage:  "Show the player's Steam level",
				Flags:  []cli.Flag{configFlag(), steamIDFlag()},
				Action: r.PlayerLevel,
			},
			{
				Name:   "badges",
				Usage:  "List the player's badges",
				Flags:  append([]cli.Flag{configFlag(), steamIDFlag()}, jsonFlags()...),
				Action: r.PlayerBadges,
			},
			{
				Name:  "friends",
				Usage: "List the player's friends",
				Flags: append([]cli.Flag{configFlag(), steamIDFlag()}, jsonFlags()...),
				Action: r.PlayerFriends,
			},
		},
	}
}

// gameCommand handles per-app queries
func gameCommand(r *Runner) *cli.Command {
	appIDFlag := &cli.IntFlag{
		Name:     "appid",
		Aliases:  []string{"a"},
		Usage:    "Steam application ID",
		Required: true,
	}

	return &cli.Command{
		Name:  "game",
		Usage: "Query statistics for a Steam app",
		Commands: []*cli.Command{
			{
				Name:   "players",
				Usage:  "Show the current player count",
				Flags:  []cli.Flag{configFlag(), appIDFlag},
				Action: r.GamePlayers,
			},
			{
				Name:  "news",
				Usage: "Show recent news items",
				Flags: append([]cli.Flag{configFlag(), appIDFlag,
					&cli.IntFlag{
						Name:  "count",
						Usage: "Number of news items",
						Value: 5,
					},
				}, jsonFlags()...),
				Action: r.GameNews,
			},
			{
				Name:   "globals",
				Usage:  "Show global achievement unlock percentages",
				Flags:  append([]cli.Flag{configFlag(), appIDFlag}, jsonFlags()...),
				Action: r.GameGlobals,
			},
		},
	}
}

// achievementsCommand handles cross-game achievement summaries
func achievementsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "achievements",
		Aliases: []string{"ach"},
		Usage:   "Summarize achievement progress across a library",
		Flags: append([]cli.Flag{configFlag(), steamIDFlag(),
			&cli.BoolFlag{
				Name:  "markdown",
				Usage: "Output a Markdown report",
			},
		}, jsonFlags()...),
		Action: r.AchievementsSummary,
	}
}

// resolveCommand handles vanity URL resolution
func resolveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "resolve",
		Usage: "Resolve a vanity URL name to a 64-bit SteamID",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "vanity",
			},
		},
		Flags:  []cli.Flag{configFlag()},
		Action: r.Resolve,
	}
}

// cacheCommand handles the response cache and run history
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect and manage the local response cache",
		Commands: []*cli.Command{
			{
				Name:   "stats",
				Usage:  "Show cache entry counts and age",
				Flags:  append([]cli.Flag{configFlag()}, jsonFlags()...),
				Action: r.CacheStats,
			},
			{
				Name:   "clear",
				Usage:  "Remove all cached responses",
				Flags:  []cli.Flag{configFlag()},
				Action: r.CacheClear,
			},
			{
				Name:  "runs",
				Usage: "List recent generation runs",
				Flags: append([]cli.Flag{configFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of runs to show",
						Value: 10,
					},
				}, jsonFlags()...),
				Action: r.CacheRuns,
			},
		},
	}
}

// setupCommand handles first-run initialization
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and the local database",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write a config.toml from the template",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
		},
	}
}

// browseCommand launches the interactive terminal UI
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "browse",
		Usage:  "Browse the library and achievements interactively",
		Flags:  []cli.Flag{configFlag(), steamIDFlag()},
		Action: r.Browse,
	}
}
