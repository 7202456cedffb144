package rtpapi

import "github.com/google/uuid"

// World is the host's handle to a loaded game world.
type World interface {
	Name() string
}

// Player is the host's handle to a connected player.
type Player interface {
	UUID() uuid.UUID
	Name() string
}

// Scheduler submits work to the host's background task scheduler.
// Conveniences in this package fall back to a plain goroutine when the
// scheduler is nil.
type Scheduler interface {
	Async(task func())
}

// Location is a point in a game world.
// Value type, passed by value (immutable).
type Location struct {
	World      World
	X, Y, Z    int32
	Yaw, Pitch float32
}

// NewLocation creates a Location with zero orientation.
func NewLocation(world World, x, y, z int32) Location {
	return Location{World: world, X: x, Y: y, Z: z}
}

// NewOrientedLocation creates a Location with an explicit view direction.
func NewOrientedLocation(world World, x, y, z int32, yaw, pitch float32) Location {
	return Location{World: world, X: x, Y: y, Z: z, Yaw: yaw, Pitch: pitch}
}

// WithCoordinates returns a copy with updated coordinates.
func (l Location) WithCoordinates(x, y, z int32) Location {
	l.X = x
	l.Y = y
	l.Z = z
	return l
}

// DistanceSquared returns the squared distance to another point (no sqrt).
func (l Location) DistanceSquared(other Location) int64 {
	dx := int64(l.X - other.X)
	dy := int64(l.Y - other.Y)
	dz := int64(l.Z - other.Z)
	return dx*dx + dy*dy + dz*dz
}
