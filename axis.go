package rtpapi

import "fmt"

// Axis tags a horizontal coordinate axis in a range requirement.
type Axis uint8

const (
	AxisX Axis = iota
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("axis(%d)", uint8(a))
}
