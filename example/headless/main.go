package main

import (
	"errors"
	"flag"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/driftmark/kinetic"
	"github.com/driftmark/kinetic/entity"
	"github.com/driftmark/kinetic/settings"
	"github.com/driftmark/kinetic/store"
	"github.com/driftmark/kinetic/worker"
)

// The following program runs the simulation core headless: a scripted input
// walks the local player around a small scene while a synthetic 5 Hz feed
// stands in for the network, orbiting two remote ghosts around the spawn.
func main() {
	configPath := flag.String("config", "kinetic.toml", "path to the settings file")
	statsAddr := flag.String("stats", "", "statsview listen address (empty = disabled)")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.DebugLevel

	conf, err := readConfig(*configPath)
	if err != nil {
		log.Fatalln(err)
	}

	if *statsAddr != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(*statsAddr))
		mgr := statsview.New()
		go mgr.Start()
	}

	core := kinetic.New(log, conf, ghostLogger{log: log})
	buildScene(core)

	core.Store.Playing.Set(true)
	loop := worker.StartLoop(core.Session.Step, 60)

	stopFeed := make(chan struct{})
	go snapshotFeed(core.Store, stopFeed)
	go scriptedInput(core.Store, stopFeed)

	core.Store.PlayerPosition.Subscribe(func(pos mgl32.Vec3) {
		if core.Session.Frame()%60 == 0 {
			log.WithField("pos", pos).WithField("energy", core.Store.JumpEnergy.Get()).Info("player")
		}
	})

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	close(stopFeed)
	loop.Stop()
	core.Session.Close()
}

// buildScene registers the demo obstacles: a well, two crates and a remote
// player's cube.
func buildScene(core *kinetic.Core) {
	w := core.Session.World()
	w.AddCylinder(1, 4, 0, 1, 1.5)
	w.AddBox(2, -3, 2, 1, 0.5, 1, math.Pi/6)
	w.AddBox(3, 0, -4, 2, 2, 0.5, 0)
	w.SetDynamicCube(4, mgl32.Vec3{2, 0.5, 3}, 1, true)
}

// snapshotFeed publishes remote snapshots at 5 Hz, the same order of magnitude
// as the real network transport.
func snapshotFeed(st *store.GameStore, stop <-chan struct{}) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			t := float32(now.Sub(start).Seconds())
			snaps := make(map[int64]entity.Snapshot, 2)
			for i := int64(1); i <= 2; i++ {
				phase := t*0.8 + float32(i)*math32.Pi
				snaps[i] = entity.Snapshot{
					Position: mgl32.Vec3{6 * math32.Cos(phase), 0, 6 * math32.Sin(phase)},
					Velocity: mgl32.Vec3{-4.8 * math32.Sin(phase), 0, 4.8 * math32.Cos(phase)},
				}
			}
			st.Snapshots.Set(snaps)
		}
	}
}

// scriptedInput drives the local player in a square path, jumping every few
// seconds.
func scriptedInput(st *store.GameStore, stop <-chan struct{}) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	dirs := []mgl32.Vec2{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	start := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			elapsed := now.Sub(start).Seconds()
			dir := dirs[int(elapsed/2)%len(dirs)]
			jump := int(elapsed)%4 == 0 && elapsed-math.Floor(elapsed) < 0.1
			st.Input.Set(store.Input{Move: dir, Jump: jump})
		}
	}
}

// ghostLogger logs ghost lifecycle events in place of a real rendering
// collaborator creating and releasing meshes.
type ghostLogger struct {
	entity.NopHandler
	log *logrus.Logger
}

func (g ghostLogger) OnGhostAdd(id int64, e *entity.Entity) {
	g.log.WithField("id", id).WithField("pos", e.Position()).Info("ghost appeared")
}

func (g ghostLogger) OnGhostRemove(id int64) {
	g.log.WithField("id", id).Info("ghost left")
}

// readConfig reads the configuration from the settings file, or creates the
// file if it does not yet exist.
func readConfig(path string) (settings.Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
	}
	return settings.Load(path)
}
