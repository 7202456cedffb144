package biome

import (
	"testing"
)

func TestBiomeString(t *testing.T) {
	tests := []struct {
		name string
		b    Biome
		want string
	}{
		{name: "first", b: Ocean, want: "ocean"},
		{name: "desert", b: Desert, want: "desert"},
		{name: "multi word", b: SunflowerPlains, want: "sunflower_plains"},
		{name: "last", b: BambooJungle, want: "bamboo_jungle"},
		{name: "out of range", b: Biome(200), want: "biome(200)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromName(t *testing.T) {
	for _, b := range All() {
		got, ok := FromName(b.String())
		if !ok {
			t.Fatalf("FromName(%q) not found", b.String())
		}
		if got != b {
			t.Errorf("FromName(%q) = %v, want %v", b.String(), got, b)
		}
	}

	if _, ok := FromName("nether_wastes"); ok {
		t.Error("FromName(nether_wastes) = ok, want not found")
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != Count {
		t.Fatalf("len(All()) = %d, want %d", len(all), Count)
	}

	seen := make(map[string]bool, Count)
	for i, b := range all {
		if b != Biome(i) {
			t.Errorf("All()[%d] = %v, want %v", i, b, Biome(i))
		}
		name := b.String()
		if seen[name] {
			t.Errorf("duplicate biome name %q", name)
		}
		seen[name] = true
	}
}
