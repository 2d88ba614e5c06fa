package maze

import (
	"fmt"

	"github.com/lawnchairsociety/mazegame/internal/text"
)

// Room is a numbered cell with one occupant per direction.
// The number is fixed at creation so it always matches the maze key.
type Room struct {
	number int
	sides  map[Direction]Side
}

// NewRoom creates a room with no sides bound
func NewRoom(number int) *Room {
	return &Room{
		number: number,
		sides:  make(map[Direction]Side, len(AllDirections())),
	}
}

// Number returns the room number
func (r *Room) Number() int {
	return r.number
}

// SetSide binds s to direction d, replacing whatever was there
func (r *Room) SetSide(d Direction, s Side) {
	r.sides[d] = s
}

// Side returns the occupant bound to d.
// Returns false if nothing has been bound yet.
func (r *Room) Side(d Direction) (Side, bool) {
	s, ok := r.sides[d]
	return s, ok
}

// Enter announces the room number
func (r *Room) Enter() string {
	return fmt.Sprintf(text.Current().RoomEntered(), r.number)
}

// Doors returns the doors on this room in direction order
func (r *Room) Doors() []*Door {
	doors := make([]*Door, 0)
	for _, d := range AllDirections() {
		if door, ok := r.sides[d].(*Door); ok {
			doors = append(doors, door)
		}
	}
	return doors
}

// String implements fmt.Stringer
func (r *Room) String() string {
	return fmt.Sprintf("room %d", r.number)
}
