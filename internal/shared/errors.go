package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig  = fmt.Errorf("configuration not found")
	ErrInvalidConfig  = fmt.Errorf("invalid configuration")
	ErrMissingAPIKey  = fmt.Errorf("missing Steam Web API key")
	ErrMissingSteamID = fmt.Errorf("missing SteamID")

	// API and service errors
	ErrAPIRequest  = fmt.Errorf("API request failed")
	ErrNoGames     = fmt.Errorf("no games data available")
	ErrNoData      = fmt.Errorf("no data returned")
	ErrCacheMiss   = fmt.Errorf("cache miss")
	ErrDatasetSkip = fmt.Errorf("dataset skipped")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
