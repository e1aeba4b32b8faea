// league/service/keys.go
package service

import "fmt"

// Cache key layout: single items live under their public id, listings under
// composite keys, searches under the raw term.
const (
	// TeamsCacheKey holds the full team listing.
	TeamsCacheKey = "teams"

	// AllStatuses is the status segment of the unfiltered fixture listing key.
	AllStatuses = "all"
)

// FixturesCacheKey returns the listing key for a status filter, e.g.
// "fixtures:pending". An empty status maps to "fixtures:all".
func FixturesCacheKey(status string) string {
	if status == "" {
		status = AllStatuses
	}
	return fmt.Sprintf("fixtures:%s", status)
}

// FixtureLink derives the deterministic shareable link for a fixture from
// its public id.
func FixtureLink(baseURL, fixtureID string) string {
	return fmt.Sprintf("%s/fixtures/%s", baseURL, fixtureID)
}
