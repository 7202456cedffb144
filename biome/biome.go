// Package biome enumerates the biome identifiers known to the host world
// generator. Placement requirements reference these identifiers to constrain
// where a random teleport destination may be generated.
package biome

import "fmt"

// Biome identifies a single biome known to the host environment.
type Biome uint8

const (
	Ocean Biome = iota
	Plains
	Desert
	Mountains
	Forest
	Taiga
	Swamp
	River
	FrozenOcean
	FrozenRiver
	IcePlains
	IceMountains
	MushroomIsland
	Beach
	DesertHills
	ForestHills
	TaigaHills
	SmallMountains
	Jungle
	JungleHills
	BirchForest
	DarkForest
	Savanna
	SavannaPlateau
	Badlands
	WarmOcean
	ColdOcean
	DeepOcean
	StoneShore
	SunflowerPlains
	FlowerForest
	BambooJungle
)

// Count is the number of enumerated biomes.
const Count = int(BambooJungle) + 1

var names = [Count]string{
	Ocean:           "ocean",
	Plains:          "plains",
	Desert:          "desert",
	Mountains:       "mountains",
	Forest:          "forest",
	Taiga:           "taiga",
	Swamp:           "swamp",
	River:           "river",
	FrozenOcean:     "frozen_ocean",
	FrozenRiver:     "frozen_river",
	IcePlains:       "ice_plains",
	IceMountains:    "ice_mountains",
	MushroomIsland:  "mushroom_island",
	Beach:           "beach",
	DesertHills:     "desert_hills",
	ForestHills:     "forest_hills",
	TaigaHills:      "taiga_hills",
	SmallMountains:  "small_mountains",
	Jungle:          "jungle",
	JungleHills:     "jungle_hills",
	BirchForest:     "birch_forest",
	DarkForest:      "dark_forest",
	Savanna:         "savanna",
	SavannaPlateau:  "savanna_plateau",
	Badlands:        "badlands",
	WarmOcean:       "warm_ocean",
	ColdOcean:       "cold_ocean",
	DeepOcean:       "deep_ocean",
	StoneShore:      "stone_shore",
	SunflowerPlains: "sunflower_plains",
	FlowerForest:    "flower_forest",
	BambooJungle:    "bamboo_jungle",
}

var byName = func() map[string]Biome {
	m := make(map[string]Biome, Count)
	for i, name := range names {
		m[name] = Biome(i)
	}
	return m
}()

// String returns the snake_case biome name.
func (b Biome) String() string {
	if int(b) < len(names) {
		return names[b]
	}
	return fmt.Sprintf("biome(%d)", uint8(b))
}

// FromName resolves a snake_case biome name. Returns false for unknown names.
func FromName(name string) (Biome, bool) {
	b, ok := byName[name]
	return b, ok
}

// All returns every enumerated biome in declaration order.
func All() []Biome {
	out := make([]Biome, Count)
	for i := range out {
		out[i] = Biome(i)
	}
	return out
}
