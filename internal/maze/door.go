package maze

import "github.com/lawnchairsociety/mazegame/internal/text"

// DoorState is the open/closed state of a door
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpen
)

// String returns the string representation of a DoorState
func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Door is a passage between two rooms. It starts closed and, once opened,
// stays open. The rooms are referenced, not owned.
type Door struct {
	room1 *Room
	room2 *Room
	state DoorState
}

// NewDoor creates a closed door between r1 and r2.
// The caller is responsible for passing two distinct rooms.
func NewDoor(r1, r2 *Room) *Door {
	return &Door{
		room1: r1,
		room2: r2,
		state: DoorClosed,
	}
}

// Enter reports whether the actor passed through or found the door closed.
// It never changes the door's state.
func (d *Door) Enter() string {
	if d.state == DoorOpen {
		return text.Current().DoorPassed()
	}
	return text.Current().DoorClosed()
}

// Open opens the door. Opening an open door is allowed and reports again.
func (d *Door) Open() string {
	d.state = DoorOpen
	return text.Current().DoorOpened()
}

// IsOpen returns true once the door has been opened
func (d *Door) IsOpen() bool {
	return d.state == DoorOpen
}

// State returns the current door state
func (d *Door) State() DoorState {
	return d.state
}

// Rooms returns the two rooms the door connects, in construction order
func (d *Door) Rooms() (*Room, *Room) {
	return d.room1, d.room2
}

// OtherSide returns the room on the far side of the door from r.
// Returns false if r is not one of the door's rooms.
func (d *Door) OtherSide(r *Room) (*Room, bool) {
	switch r {
	case d.room1:
		return d.room2, true
	case d.room2:
		return d.room1, true
	default:
		return nil, false
	}
}
