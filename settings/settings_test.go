package settings

import (
	"path/filepath"
	"testing"

	"github.com/driftmark/kinetic/game"
)

func TestSaveDefaultAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kinetic.toml")

	if err := SaveDefault(path); err != nil {
		t.Fatalf("save default: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Default()
	if loaded.Player.MoveSpeed != want.Player.MoveSpeed {
		t.Fatalf("move speed %f, want %f", loaded.Player.MoveSpeed, want.Player.MoveSpeed)
	}
	if loaded.Ghost.Stiffness != want.Ghost.Stiffness {
		t.Fatalf("stiffness %f, want %f", loaded.Ghost.Stiffness, want.Ghost.Stiffness)
	}
	if loaded.Ground.MaxX != want.Ground.MaxX {
		t.Fatalf("ground extent %f, want %f", loaded.Ground.MaxX, want.Ground.MaxX)
	}
}

func TestSaveDefaultRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kinetic.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatal("second save over an existing file did not error")
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("loading a missing file did not error")
	}
}

func TestTunablesMapping(t *testing.T) {
	s := Default()
	s.Player.Gravity = 30
	s.Jump.Impulse = 12

	tun := s.Tunables()
	if tun.Gravity != 30 || tun.JumpImpulse != 12 {
		t.Fatalf("tunables %+v did not carry settings values", tun)
	}
	if tun.JumpEnergyCost != game.JumpEnergyCost {
		t.Fatalf("energy cost %f, want default %f", tun.JumpEnergyCost, game.JumpEnergyCost)
	}
}

func TestGroundPlaneMapping(t *testing.T) {
	s := Default()
	g := s.GroundPlane()
	if !g.Contains(0, 0) {
		t.Fatal("default ground plane does not contain the origin")
	}
	if g.Contains(s.Ground.MaxX+1, 0) {
		t.Fatal("ground plane contains a point past its extent")
	}
}
