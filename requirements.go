package rtpapi

import (
	"slices"

	"github.com/continuum-dev/rtpapi/biome"
)

// Unbounded marks an axis range as unset.
const Unbounded int32 = -1

// Requirements describes the constraints a provider's location search must
// satisfy: an allowed biome set (default: every enumerated biome) and
// optional per-axis coordinate ranges (default: Unbounded on both axes).
//
// Built via chained mutation calls; not safe for concurrent use. Values are
// passed through to the provider unvalidated — min > max or an empty biome
// set is the provider's problem to interpret.
type Requirements struct {
	biomes                 map[biome.Biome]struct{}
	minX, maxX, minZ, maxZ int32
}

// NewRequirements returns requirements allowing every biome with both axes
// unbounded.
func NewRequirements() *Requirements {
	r := &Requirements{
		biomes: make(map[biome.Biome]struct{}, biome.Count),
		minX:   Unbounded,
		maxX:   Unbounded,
		minZ:   Unbounded,
		maxZ:   Unbounded,
	}
	for _, b := range biome.All() {
		r.biomes[b] = struct{}{}
	}
	return r
}

// RequireBiomes replaces the allowed biome set with exactly the given biomes.
func (r *Requirements) RequireBiomes(biomes ...biome.Biome) *Requirements {
	clear(r.biomes)
	for _, b := range biomes {
		r.biomes[b] = struct{}{}
	}
	return r
}

// RequireBiome replaces the allowed biome set with the single given biome.
func (r *Requirements) RequireBiome(b biome.Biome) *Requirements {
	return r.RequireBiomes(b)
}

// Require sets the coordinate range for one axis.
func (r *Requirements) Require(axis Axis, min, max int32) *Requirements {
	if axis == AxisX {
		r.minX = min
		r.maxX = max
	} else {
		r.minZ = min
		r.maxZ = max
	}
	return r
}

// RequireX sets the X coordinate range.
func (r *Requirements) RequireX(min, max int32) *Requirements {
	return r.Require(AxisX, min, max)
}

// RequireZ sets the Z coordinate range.
func (r *Requirements) RequireZ(min, max int32) *Requirements {
	return r.Require(AxisZ, min, max)
}

// RequireBounds sets both axis ranges, X pair first.
func (r *Requirements) RequireBounds(minX, maxX, minZ, maxZ int32) *Requirements {
	return r.RequireX(minX, maxX).RequireZ(minZ, maxZ)
}

// Biomes returns the allowed biomes in ascending identifier order.
func (r *Requirements) Biomes() []biome.Biome {
	out := make([]biome.Biome, 0, len(r.biomes))
	for b := range r.biomes {
		out = append(out, b)
	}
	slices.Sort(out)
	return out
}

// Allows reports whether b is in the allowed biome set.
func (r *Requirements) Allows(b biome.Biome) bool {
	_, ok := r.biomes[b]
	return ok
}

func (r *Requirements) MinX() int32 { return r.minX }
func (r *Requirements) MaxX() int32 { return r.maxX }
func (r *Requirements) MinZ() int32 { return r.minZ }
func (r *Requirements) MaxZ() int32 { return r.maxZ }
