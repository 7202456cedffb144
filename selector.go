package rtpapi

import (
	"math/rand"

	"github.com/continuum-dev/rtpapi/biome"
)

// BiomeSelector wraps either one fixed biome or "any biome allowed".
type BiomeSelector struct {
	biome biome.Biome
	fixed bool
}

// SelectBiome returns a selector fixed to b.
func SelectBiome(b biome.Biome) *BiomeSelector {
	return &BiomeSelector{biome: b, fixed: true}
}

// SelectAny returns a selector with no biome fixed.
func SelectAny() *BiomeSelector {
	return &BiomeSelector{}
}

// Biome returns the fixed biome. ok is false when any biome is allowed.
func (s *BiomeSelector) Biome() (b biome.Biome, ok bool) {
	return s.biome, s.fixed
}

// SetBiome fixes the selector to b.
func (s *BiomeSelector) SetBiome(b biome.Biome) {
	s.biome = b
	s.fixed = true
}

// Clear resets the selector to "any biome allowed".
func (s *BiomeSelector) Clear() {
	s.biome = 0
	s.fixed = false
}

// IsAny reports whether any biome is allowed.
func (s *BiomeSelector) IsAny() bool {
	return !s.fixed
}

// RandomAny returns a uniformly random biome from the enumerated set.
// The draw bound excludes the last enumerated biome; registered providers
// rely on that value staying unreachable here.
func (s *BiomeSelector) RandomAny() biome.Biome {
	all := biome.All()
	return all[rand.Intn(len(all)-1)]
}
