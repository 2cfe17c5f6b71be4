package mapper

import "fmt"

// State is the controller lifecycle state.
type State int

const (
	Stopped State = iota
	Discovering
	Active
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Discovering:
		return "discovering"
	case Active:
		return "active"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
