package rtpapi

import "context"

// Provider is the capability a random-teleport plugin implements and
// registers with the host's Registry. The search/placement algorithm behind
// Locate lives entirely in the provider; everything else in this package is
// a convenience layer derived from these two operations.
type Provider interface {
	// Teleport moves players to loc.
	Teleport(ctx context.Context, loc Location, players ...Player) error

	// Locate finds a location in world satisfying req. inclusive toggles
	// whether the axis bounds are treated as closed ranges; the exact
	// interpretation is the provider's.
	Locate(ctx context.Context, world World, req *Requirements, inclusive bool) (Location, error)
}
