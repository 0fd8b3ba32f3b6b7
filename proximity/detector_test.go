package proximity

import (
	"testing"

	"github.com/lixenwraith/museum/scene"
	"github.com/lixenwraith/museum/vmath"
)

func newArtwork(id string, x, z, r float64) *scene.Artwork {
	return &scene.Artwork{ID: id, Position: vmath.Vec3F{X: x, Y: 1.8, Z: z}, ProximityRadius: r}
}

func at(x, z float64) vmath.Vec3F {
	return vmath.Vec3F{X: x, Y: 1.8, Z: z}
}

func TestUpdateHysteresis(t *testing.T) {
	art := newArtwork("experience", -10, 0, 5.5)
	d := NewDetector([]*scene.Artwork{art}, nil)

	notifications := 0
	for _, pos := range []vmath.Vec3F{at(0, 0), at(-6, 0), at(-7, 0), at(-8.5, 0.3), at(-6, 0)} {
		if _, ch := d.Update(pos); ch.Artwork {
			notifications++
		}
	}
	if notifications != 1 {
		t.Errorf("near notifications = %d, want 1", notifications)
	}

	res, ch := d.Update(at(0, 0))
	if !ch.Artwork || res.Artwork != nil {
		t.Errorf("leaving range: change=%+v result=%+v", ch, res)
	}
}

func TestUpdateNearestAndTies(t *testing.T) {
	a := newArtwork("a", -2, 0, 5)
	b := newArtwork("b", 2, 0, 5)
	c := newArtwork("c", 0, -1, 5)

	tests := []struct {
		name string
		arts []*scene.Artwork
		pos  vmath.Vec3F
		want string
	}{
		{"nearest wins", []*scene.Artwork{a, b, c}, at(0, -0.5), "c"},
		{"tie first listed", []*scene.Artwork{a, b}, at(0, 0), "a"},
		{"tie order swapped", []*scene.Artwork{b, a}, at(0, 0), "b"},
		{"out of range", []*scene.Artwork{a, b}, at(0, 9), ""},
		{"radius per artwork", []*scene.Artwork{newArtwork("small", 1, 0, 0.5), newArtwork("big", 4, 0, 5)}, at(0, 0), "big"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDetector(tt.arts, nil)
			res, _ := d.Update(tt.pos)
			if res.ArtworkID() != tt.want {
				t.Errorf("nearest = %q, want %q", res.ArtworkID(), tt.want)
			}
		})
	}
}

func TestUpdateSwitchBetweenArtworks(t *testing.T) {
	a := newArtwork("a", -3, 0, 5)
	b := newArtwork("b", 3, 0, 5)
	d := NewDetector([]*scene.Artwork{a, b}, nil)

	d.Update(at(-1, 0))
	res, ch := d.Update(at(1, 0))
	if !ch.Artwork || res.ArtworkID() != "b" {
		t.Errorf("switch: change=%+v id=%q", ch, res.ArtworkID())
	}
}

func TestAvatarFlagAndPriority(t *testing.T) {
	art := newArtwork("education", 0, -3, 5.5)
	avatar := &scene.Avatar{ID: scene.AvatarID, Position: vmath.Vec3F{Y: 1}, ProximityRadius: 3.8}
	d := NewDetector([]*scene.Artwork{art}, avatar)

	res, ch := d.Update(at(0, -2))
	if !res.NearAvatar || res.Artwork == nil {
		t.Fatalf("expected both in range, got %+v", res)
	}
	if !ch.Avatar || !ch.Artwork {
		t.Errorf("change = %+v, want both", ch)
	}
	if res.Actionable() != scene.KindAvatar {
		t.Errorf("Actionable() = %v, want avatar", res.Actionable())
	}

	// Jitter within the same state stays silent
	if _, ch := d.Update(at(0.1, -2.1)); ch.Any() {
		t.Errorf("jitter produced change %+v", ch)
	}

	res, ch = d.Update(at(0, -6))
	if !ch.Avatar || ch.Artwork {
		t.Errorf("avatar leave change = %+v", ch)
	}
	if res.Actionable() != scene.KindArtwork {
		t.Errorf("Actionable() = %v, want artwork", res.Actionable())
	}
}

func TestDefaultSceneExperience(t *testing.T) {
	cfg := scene.Default()
	d := NewDetector(cfg.ArtworkRefs(), &cfg.Avatar)

	if res, _ := d.Update(cfg.Spawn); res.Actionable() != scene.KindNone {
		t.Errorf("spawn should be clear, got %+v", res)
	}
	res, ch := d.Update(at(-7.5, -1.5))
	if !ch.Artwork || res.ArtworkID() != "experience" {
		t.Errorf("experience stand: id=%q change=%+v", res.ArtworkID(), ch)
	}
}
