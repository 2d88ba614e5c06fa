package builder

import (
	"fmt"

	"github.com/lawnchairsociety/mazegame/internal/logger"
	"github.com/lawnchairsociety/mazegame/internal/maze"
)

// doorSide is the side of the first room that receives a door
const doorSide = maze.East

// StandardBuilder builds rooms walled on all four sides and joins rooms
// with a door placed east of the first room and west of the second.
type StandardBuilder struct {
	current *maze.Maze
}

// NewStandardBuilder creates a builder with no maze started
func NewStandardBuilder() *StandardBuilder {
	return &StandardBuilder{}
}

// BuildMaze discards any maze in progress and starts an empty one
func (b *StandardBuilder) BuildMaze() {
	b.current = maze.NewMaze()
	logger.Debug("Started maze")
}

// BuildRoom adds a walled room unless one with that number already exists
func (b *StandardBuilder) BuildRoom(number int) error {
	if b.current == nil {
		return ErrNoMaze
	}
	if b.current.HasRoom(number) {
		logger.Debug("Room already built", "room", number)
		return nil
	}

	room := maze.NewRoom(number)
	for _, d := range maze.AllDirections() {
		room.SetSide(d, maze.NewWall())
	}
	b.current.AddRoom(room)

	logger.Debug("Built room", "room", number)
	return nil
}

// BuildDoor puts one door on the east side of room from and the west side
// of room to. Both rooms must already exist; nothing changes otherwise.
func (b *StandardBuilder) BuildDoor(from, to int) error {
	if b.current == nil {
		return ErrNoMaze
	}

	r1, err := b.current.Room(from)
	if err != nil {
		logger.Warning("Cannot build door", "from", from, "to", to, "error", err)
		return fmt.Errorf("build door %d->%d: %w", from, to, err)
	}
	r2, err := b.current.Room(to)
	if err != nil {
		logger.Warning("Cannot build door", "from", from, "to", to, "error", err)
		return fmt.Errorf("build door %d->%d: %w", from, to, err)
	}

	door := maze.NewDoor(r1, r2)
	r1.SetSide(doorSide, door)
	r2.SetSide(doorSide.Opposite(), door)

	logger.Debug("Built door", "from", from, "to", to)
	return nil
}

// Maze returns the maze in progress, or nil before BuildMaze
func (b *StandardBuilder) Maze() *maze.Maze {
	return b.current
}
