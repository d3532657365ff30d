// Package steam implements a client for the Steam Web API.
//
// # Request Layer
//
// [Client.Do] issues a single GET against
// https://api.steampowered.com/{interface}/{method}/{version}/ with the API
// key and response format injected into the query string. Failures are
// classified into a [RequestError] with a [ErrorKind] tag:
//
//   - [KindBadRequest] : HTTP 400, malformed parameters
//   - [KindUnauthorized] : HTTP 401, bad or revoked API key
//   - [KindForbidden] : HTTP 403, commonly a private profile
//   - [KindRateLimited] : HTTP 429, the client sleeps for a cooldown and gives up on the call
//   - [KindServerError] : HTTP 5xx
//   - [KindTimeout] : the 10 second request budget elapsed
//   - [KindTransport] : any other transport-level failure or unexpected status
//
// # Degraded-failure boundary
//
// [Client.Request] and the typed endpoint wrappers never return an error.
// Every failure path resolves to an empty value at the client boundary and
// is reported via the logger only; callers treat "no data" and "error"
// identically. The tagged error stays available through [Client.Do] for
// code that needs to distinguish failure kinds.
//
// # Throttling
//
// A [rate.Limiter] with burst 1 enforces a minimum spacing between requests
// (200 ms by default). This is a fixed-interval throttle, not a token
// bucket: one call in flight at a time is the expected usage.
package steam
