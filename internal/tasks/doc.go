// Package tasks contains the dataset generation engine.
//
// The engine composes the Steam request layer and the achievement
// aggregator into per-account datasets (profile, top games, enriched
// games, achievements) and a shared popular-games dataset, and writes
// them as JSON files alongside a run manifest. Long operations report
// progress over a channel so callers can render it however they like.
package tasks
