// Package common contains shared constants and sentinel errors used across
// EcoTracker components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RecentEntriesLimit is the number of entries returned by the "recent" views.
const RecentEntriesLimit = 5
