package rtpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/continuum-dev/rtpapi/biome"
)

func TestNewRequirements_Defaults(t *testing.T) {
	r := NewRequirements()

	assert.Len(t, r.Biomes(), biome.Count, "default set allows every biome")
	for _, b := range biome.All() {
		assert.True(t, r.Allows(b), "Allows(%v)", b)
	}

	assert.Equal(t, Unbounded, r.MinX())
	assert.Equal(t, Unbounded, r.MaxX())
	assert.Equal(t, Unbounded, r.MinZ())
	assert.Equal(t, Unbounded, r.MaxZ())
}

func TestRequirements_RequireBiomes(t *testing.T) {
	r := NewRequirements()

	// Replaces regardless of prior state.
	r.RequireBiomes(biome.Jungle, biome.Swamp, biome.Taiga)
	r.RequireBiomes(biome.Desert, biome.Badlands)

	// Biomes() is ordered by identifier, Desert < Badlands.
	assert.Equal(t, []biome.Biome{biome.Desert, biome.Badlands}, r.Biomes())
	assert.True(t, r.Allows(biome.Desert))
	assert.False(t, r.Allows(biome.Jungle))
}

func TestRequirements_RequireBiome(t *testing.T) {
	r := NewRequirements().RequireBiome(biome.IcePlains)

	assert.Equal(t, []biome.Biome{biome.IcePlains}, r.Biomes())
}

func TestRequirements_SingleAxis(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Requirements) *Requirements
		wantX [2]int32
		wantZ [2]int32
	}{
		{
			name:  "requireX leaves Z unset",
			apply: func(r *Requirements) *Requirements { return r.RequireX(-5, 5) },
			wantX: [2]int32{-5, 5},
			wantZ: [2]int32{Unbounded, Unbounded},
		},
		{
			name:  "requireZ leaves X unset",
			apply: func(r *Requirements) *Requirements { return r.RequireZ(100, 200) },
			wantX: [2]int32{Unbounded, Unbounded},
			wantZ: [2]int32{100, 200},
		},
		{
			name:  "axis X",
			apply: func(r *Requirements) *Requirements { return r.Require(AxisX, 1, 9) },
			wantX: [2]int32{1, 9},
			wantZ: [2]int32{Unbounded, Unbounded},
		},
		{
			name:  "axis Z",
			apply: func(r *Requirements) *Requirements { return r.Require(AxisZ, -9, -1) },
			wantX: [2]int32{Unbounded, Unbounded},
			wantZ: [2]int32{-9, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.apply(NewRequirements())

			assert.Equal(t, tt.wantX, [2]int32{r.MinX(), r.MaxX()})
			assert.Equal(t, tt.wantZ, [2]int32{r.MinZ(), r.MaxZ()})
		})
	}
}

func TestRequirements_RequireBounds(t *testing.T) {
	r := NewRequirements().RequireBounds(1, 2, 3, 4)

	// X pair first, Z pair second — no swap.
	assert.Equal(t, int32(1), r.MinX())
	assert.Equal(t, int32(2), r.MaxX())
	assert.Equal(t, int32(3), r.MinZ())
	assert.Equal(t, int32(4), r.MaxZ())
}

func TestRequirements_Chaining(t *testing.T) {
	r := NewRequirements()
	got := r.RequireBiome(biome.Forest).RequireX(-10, 10).RequireZ(-20, 20)

	require.Same(t, r, got, "mutators return the receiver")
	assert.Equal(t, []biome.Biome{biome.Forest}, r.Biomes())
	assert.Equal(t, int32(-10), r.MinX())
	assert.Equal(t, int32(20), r.MaxZ())
}
