// Package rtpapi is the service contract for a random-teleport capability.
// A provider plugin implements Provider and registers it with the host's
// Registry; consumers look the provider up there and drive it through API,
// which layers requirement builders and future-returning conveniences over
// the two abstract operations.
//
// Usage:
//
//	api, err := registry.APIOrErr()
//	if err != nil {
//		return err
//	}
//	loc := api.LocateWith(world, func(r *rtpapi.Requirements) {
//		r.RequireBiome(biome.Desert).RequireBounds(-1000, 1000, -1000, 1000)
//	}, true)
//	took, err := rtpapi.Time(ctx, api.TeleportTo(loc, player))
package rtpapi

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/continuum-dev/rtpapi/biome"
)

// Default constraints applied by LocateDefault.
const (
	DefaultMin int32 = -10000
	DefaultMax int32 = 10000
)

// DefaultBiome is the biome required by LocateDefault.
const DefaultBiome = biome.Desert

// API layers asynchronous conveniences over a Provider. Work is offloaded
// to the host Scheduler; a nil scheduler falls back to plain goroutines.
type API struct {
	provider Provider
	sched    Scheduler
}

// New wraps a provider. sched may be nil.
func New(p Provider, sched Scheduler) *API {
	return &API{provider: p, sched: sched}
}

// Provider returns the wrapped provider.
func (a *API) Provider() Provider {
	return a.provider
}

func (a *API) async(task func()) {
	if a.sched != nil {
		a.sched.Async(task)
		return
	}
	go task()
}

// guard wraps an async task body so a panic fails the future instead of
// escaping the scheduler goroutine and killing the host.
func guard[T any](f *Future[T], task func()) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				f.Fail(fmt.Errorf("async task panicked: %v", r))
			}
		}()
		task()
	}
}

// Teleport moves players to loc on the host scheduler.
func (a *API) Teleport(loc Location, players ...Player) *Future[struct{}] {
	f := NewFuture[struct{}]()
	a.async(guard(f, func() {
		a.teleportInto(f, loc, players)
	}))
	return f
}

// TeleportTo waits for the destination to resolve, then teleports players
// there. Failure of the location future propagates unchanged.
func (a *API) TeleportTo(dest *Future[Location], players ...Player) *Future[struct{}] {
	f := NewFuture[struct{}]()
	a.async(guard(f, func() {
		loc, err := dest.Await(context.Background())
		if err != nil {
			f.Fail(err)
			return
		}
		a.teleportInto(f, loc, players)
	}))
	return f
}

func (a *API) teleportInto(f *Future[struct{}], loc Location, players []Player) {
	if err := a.provider.Teleport(context.Background(), loc, players...); err != nil {
		f.Fail(fmt.Errorf("teleport: %w", err))
		return
	}
	f.Complete(struct{}{})
}

// Locate asks the provider for a location in world satisfying req.
func (a *API) Locate(world World, req *Requirements, inclusive bool) *Future[Location] {
	f := NewFuture[Location]()
	a.async(guard(f, func() {
		loc, err := a.provider.Locate(context.Background(), world, req, inclusive)
		if err != nil {
			f.Fail(fmt.Errorf("locate: %w", err))
			return
		}
		f.Complete(loc)
	}))
	return f
}

// LocateWith builds requirements via the mutation callback and delegates.
func (a *API) LocateWith(world World, build func(*Requirements), inclusive bool) *Future[Location] {
	return a.Locate(world, a.Requirements(build), inclusive)
}

// LocateDefault locates with the stock constraints: DefaultBiome only, X
// and Z both in [DefaultMin, DefaultMax], bounds treated as exclusive.
func (a *API) LocateDefault(world World) *Future[Location] {
	return a.LocateWith(world, func(r *Requirements) {
		r.RequireBiome(DefaultBiome)
		r.Require(AxisX, DefaultMin, DefaultMax)
		r.Require(AxisZ, DefaultMin, DefaultMax)
	}, false)
}

// Requirements builds a fresh constraint object via the mutation callback.
func (a *API) Requirements(build func(*Requirements)) *Requirements {
	r := NewRequirements()
	build(r)
	return r
}

// Random draws an integer on the host scheduler. The exclusive draw covers
// [min, max). The inclusive draw widens both ends to [min-1, max], so min-1
// is a possible result; registered providers rely on that widened range.
// A degenerate range (max ≤ min for the exclusive draw) fails the future.
func (a *API) Random(min, max int, inclusive bool) *Future[int] {
	f := NewFuture[int]()
	a.async(guard(f, func() {
		if inclusive {
			f.Complete(min - 1 + rand.Intn(max-min+2))
		} else {
			f.Complete(min + rand.Intn(max-min))
		}
	}))
	return f
}

// Time awaits f and returns the elapsed wall-clock time. On failure the
// elapsed time so far is still returned alongside the wrapped cause.
func Time[T any](ctx context.Context, f *Future[T]) (time.Duration, error) {
	start := time.Now()
	if _, err := f.Await(ctx); err != nil {
		return time.Since(start), fmt.Errorf("await: %w", err)
	}
	return time.Since(start), nil
}
