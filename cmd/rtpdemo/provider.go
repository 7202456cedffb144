package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/continuum-dev/rtpapi"
)

// demoWorld and demoPlayer implement the host handles just enough for the
// demo round trip.
type demoWorld struct {
	name string
}

func (w demoWorld) Name() string { return w.name }

type demoPlayer struct {
	id   uuid.UUID
	name string
}

func (p demoPlayer) UUID() uuid.UUID { return p.id }
func (p demoPlayer) Name() string    { return p.name }

// pooledScheduler runs submitted tasks on a fixed worker pool.
type pooledScheduler struct {
	tasks chan func()
}

func newPooledScheduler(workers int) *pooledScheduler {
	if workers < 1 {
		workers = 1 // an empty pool would queue tasks forever
	}
	s := &pooledScheduler{tasks: make(chan func(), 64)}
	for i := 0; i < workers; i++ {
		go s.worker()
	}
	return s
}

func (s *pooledScheduler) Async(task func()) {
	s.tasks <- task
}

func (s *pooledScheduler) worker() {
	for task := range s.tasks {
		task()
	}
}

var errNoBounds = errors.New("axis bounds not set")

// uniformProvider is a stand-in for a real search plugin: it draws uniform
// coordinates inside the requested window and never checks the actual chunk.
// Surface height is fixed at y=64.
type uniformProvider struct{}

func (uniformProvider) Teleport(_ context.Context, loc rtpapi.Location, players ...rtpapi.Player) error {
	for _, p := range players {
		slog.Debug("teleport",
			"player", p.Name(),
			"world", loc.World.Name(),
			"dest", [3]int32{loc.X, loc.Y, loc.Z})
	}
	return nil
}

func (uniformProvider) Locate(_ context.Context, world rtpapi.World, req *rtpapi.Requirements, inclusive bool) (rtpapi.Location, error) {
	if req.MinX() == rtpapi.Unbounded || req.MinZ() == rtpapi.Unbounded {
		return rtpapi.Location{}, errNoBounds
	}
	if len(req.Biomes()) == 0 {
		return rtpapi.Location{}, errors.New("empty biome set")
	}

	x := drawCoord(req.MinX(), req.MaxX(), inclusive)
	z := drawCoord(req.MinZ(), req.MaxZ(), inclusive)
	return rtpapi.NewLocation(world, x, 64, z), nil
}

func drawCoord(min, max int32, inclusive bool) int32 {
	if inclusive {
		return min + rand.Int31n(max-min+1)
	}
	return min + rand.Int31n(max-min)
}
