package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/driftmark/kinetic/game"
	"github.com/driftmark/kinetic/store"
	"github.com/driftmark/kinetic/world"
)

// Settings contains everything that can be configured for a simulation session.
type Settings struct {
	Player struct {
		MoveSpeed float32
		Radius    float32
		Gravity   float32
		Spawn     [3]float32
	}
	Jump struct {
		Impulse        float32
		EnergyCost     float32
		GroundRecharge float32
		AirRecharge    float32
	}
	Ghost struct {
		// Stiffness is the spring constant k of the ghost reconciler; damping
		// is always derived from it, keeping the spring critically damped.
		Stiffness float32
	}
	Ground struct {
		MinX float32
		MaxX float32
		MinZ float32
		MaxZ float32
		Y    float32
	}
}

// Default returns the default settings for a session.
func Default() Settings {
	s := Settings{}
	s.Player.MoveSpeed = game.DefaultMoveSpeed
	s.Player.Radius = game.DefaultPlayerRadius
	s.Player.Gravity = game.DefaultGravity
	s.Player.Spawn = [3]float32{0, 0, 0}

	s.Jump.Impulse = game.DefaultJumpImpulse
	s.Jump.EnergyCost = game.JumpEnergyCost
	s.Jump.GroundRecharge = game.GroundRechargeRate
	s.Jump.AirRecharge = game.AirRechargeRate

	s.Ghost.Stiffness = game.DefaultSpringStiffness

	s.Ground.MinX = -50
	s.Ground.MaxX = 50
	s.Ground.MinZ = -50
	s.Ground.MaxZ = 50
	s.Ground.Y = 0
	return s
}

// Tunables converts the settings into the runtime-adjustable scalars seeded
// into the game-state store.
func (s Settings) Tunables() store.Tunables {
	return store.Tunables{
		MoveSpeed:       s.Player.MoveSpeed,
		Gravity:         s.Player.Gravity,
		JumpImpulse:     s.Jump.Impulse,
		JumpEnergyCost:  s.Jump.EnergyCost,
		GroundRecharge:  s.Jump.GroundRecharge,
		AirRecharge:     s.Jump.AirRecharge,
		SpringStiffness: s.Ghost.Stiffness,
	}
}

// GroundPlane returns the ground plane described by the settings.
func (s Settings) GroundPlane() world.GroundPlane {
	return world.GroundPlane{
		MinX: s.Ground.MinX,
		MaxX: s.Ground.MaxX,
		MinZ: s.Ground.MinZ,
		MaxZ: s.Ground.MaxZ,
		Y:    s.Ground.Y,
	}
}

// SaveDefault will create and save the default settings file. If the file
// already exists, it will return an error.
func SaveDefault(path string) error {
	s := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := toml.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed encoding default settings: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %w", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from the given file, and return an error if the
// file does not exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	var s Settings
	if err = toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	return s, nil
}
