// Package repositories provides the SQLite persistence layer.
//
// The response cache stores raw API payloads keyed by request
// fingerprint with a TTL, and the run repository records dataset
// generation runs. CachedClient layers the cache over the Steam
// client so repeated generation runs avoid refetching.
package repositories
