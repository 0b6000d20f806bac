// Package kinetic implements the client-side movement, collision and
// state-reconciliation core of a shared 3D environment: local player motion is
// integrated every frame against the scene's colliders, while sparse network
// snapshots of remote players are smoothed into ghosts by a critically damped
// spring filter.
package kinetic

import (
	"github.com/sirupsen/logrus"

	"github.com/driftmark/kinetic/entity"
	"github.com/driftmark/kinetic/session"
	"github.com/driftmark/kinetic/settings"
	"github.com/driftmark/kinetic/store"
)

// CurrentVersion is the current version of the simulation core.
const CurrentVersion = "0.3.0"

// Core bundles a simulation session with the game-state store its
// collaborators read and write.
type Core struct {
	Session *session.Session
	Store   *store.GameStore
}

// New assembles a simulation core from the given settings. The handler
// receives ghost lifecycle events for the rendering collaborator; it may be
// nil.
func New(log *logrus.Logger, conf settings.Settings, h entity.Handler) *Core {
	st := store.NewGameStore(conf.Tunables())
	return &Core{
		Session: session.New(log, conf, st, h),
		Store:   st,
	}
}
