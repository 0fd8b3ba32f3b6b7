package scene

import (
	"strings"
	"testing"

	"github.com/lixenwraith/museum/parameter"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default scene invalid: %v", err)
	}

	if len(cfg.Artworks) != 4 {
		t.Errorf("expected 4 artworks, got %d", len(cfg.Artworks))
	}
	if len(cfg.Destinations) != 4 {
		t.Errorf("expected 4 destinations, got %d", len(cfg.Destinations))
	}
	for _, a := range cfg.Artworks {
		if a.ProximityRadius != parameter.ProximityThreshold {
			t.Errorf("artwork %s radius = %v, want shared default", a.ID, a.ProximityRadius)
		}
	}
	if cfg.Avatar.ProximityRadius != parameter.AvatarProximity {
		t.Errorf("avatar radius = %v", cfg.Avatar.ProximityRadius)
	}
	if cfg.Spawn.Y != parameter.EyeHeight {
		t.Errorf("spawn height = %v", cfg.Spawn.Y)
	}
}

func TestLoadFileAppliesDefaults(t *testing.T) {
	cfg, err := LoadFile("testdata/gallery.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	north, ok := cfg.Artwork("north")
	if !ok {
		t.Fatal("north artwork missing")
	}
	if north.ProximityRadius != 4 {
		t.Errorf("north radius = %v, want inherited 4", north.ProximityRadius)
	}
	if len(north.Content.Projects) != 1 {
		t.Errorf("north projects = %d", len(north.Content.Projects))
	}

	east, _ := cfg.Artwork("east")
	if east.ProximityRadius != 2 {
		t.Errorf("east radius = %v, want explicit 2", east.ProximityRadius)
	}

	if cfg.Avatar.ID != AvatarID {
		t.Errorf("avatar id = %q", cfg.Avatar.ID)
	}
	if cfg.Avatar.ProximityRadius != parameter.AvatarProximity {
		t.Errorf("avatar radius = %v", cfg.Avatar.ProximityRadius)
	}
	if cfg.MoveSpeed != parameter.MoveSpeed || cfg.EyeHeight != parameter.EyeHeight {
		t.Errorf("tunables not defaulted: speed=%v eye=%v", cfg.MoveSpeed, cfg.EyeHeight)
	}
	if cfg.Bounds.XMax != 5 {
		t.Errorf("bounds not loaded: %+v", cfg.Bounds)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "duplicate id",
			yaml: "artworks:\n  - {id: a}\n  - {id: a}\n",
			want: "duplicate id",
		},
		{
			name: "collides with avatar",
			yaml: "artworks:\n  - {id: avatar}\n",
			want: "duplicate id",
		},
		{
			name: "missing id",
			yaml: "artworks:\n  - {label: x}\n",
			want: "missing id",
		},
		{
			name: "inverted bounds",
			yaml: "bounds: {xmin: 5, xmax: -5, zmin: 0, zmax: 1}\n",
			want: "bounds inverted",
		},
		{
			name: "destination outside room",
			yaml: "destinations:\n  - {key: far, position: {x: 50, y: 1.8, z: 0}}\n",
			want: "outside bounds",
		},
		{
			name: "malformed",
			yaml: "artworks: [",
			want: "parse scene",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestDestinationSlots(t *testing.T) {
	cfg := Default()

	d, ok := cfg.Destination(1)
	if !ok || d.Key != "experience" {
		t.Errorf("slot 1 = %+v, %v", d, ok)
	}
	if _, ok := cfg.Destination(4); ok {
		t.Error("slot 4 should not exist")
	}
	if _, ok := cfg.Destination(-1); ok {
		t.Error("negative slot should not exist")
	}
}
