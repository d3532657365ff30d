// Package models defines domain entities and dataset shapes for the Steam dataset generator.
//
// The package contains three categories of types:
//
// 1. Derived aggregates computed fresh on every run:
//   - [GameProgress] : per-game achievement completion
//   - [AchievementSummary] : cross-game totals with perfect and in-progress lists
//
// 2. Dataset envelopes written as JSON files for the front-end:
//   - [ProfileDataset] : full player profile with derived stats
//   - [TopGamesDataset] : playtime leaderboard
//   - [AchievementsDataset] : achievement summary with truncated lists
//   - [EnrichedGamesDataset] : top games joined with progress and player counts
//   - [GameStatsDataset] : per-app news, global percentages, player count
//   - [RunResult] : manifest of one generation run
//
// 3. Persistent entities backing the SQLite layer:
//   - [CachedResponse] : one cached API response with expiry
//   - [Run] : bookkeeping row for a generation run
//
// Every dataset envelope carries a generated_at timestamp; nested payloads mirror the upstream Steam Web API response shapes.
package models
