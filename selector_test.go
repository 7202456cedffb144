package rtpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/continuum-dev/rtpapi/biome"
)

func TestSelectBiome(t *testing.T) {
	for _, b := range biome.All() {
		s := SelectBiome(b)

		assert.False(t, s.IsAny(), "SelectBiome(%v).IsAny()", b)
		got, ok := s.Biome()
		require.True(t, ok)
		assert.Equal(t, b, got)
	}
}

func TestSelectAny(t *testing.T) {
	s := SelectAny()

	assert.True(t, s.IsAny())
	_, ok := s.Biome()
	assert.False(t, ok)
}

func TestBiomeSelector_SetAndClear(t *testing.T) {
	s := SelectAny()

	s.SetBiome(biome.Taiga)
	assert.False(t, s.IsAny())
	got, ok := s.Biome()
	require.True(t, ok)
	assert.Equal(t, biome.Taiga, got)

	s.Clear()
	assert.True(t, s.IsAny())
	_, ok = s.Biome()
	assert.False(t, ok)
}

func TestBiomeSelector_RandomAny(t *testing.T) {
	all := biome.All()
	require.Greater(t, len(all), 1)
	last := all[len(all)-1]

	s := SelectAny()
	seen := make(map[biome.Biome]int)
	const draws = 20000

	for i := 0; i < draws; i++ {
		b := s.RandomAny()
		assert.Less(t, int(b), len(all), "draw outside enumerated set")
		seen[b]++
	}

	// Sampling bound stops short of the final enumerated biome.
	assert.Zero(t, seen[last], "last biome %v must be unreachable", last)
	// Every reachable biome shows up over this many draws.
	assert.Len(t, seen, len(all)-1)
}
