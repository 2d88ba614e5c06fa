package builder

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/lawnchairsociety/mazegame/internal/maze"
)

// CountingBuilder follows the builder protocol without building anything.
// It tallies the distinct rooms and the doors a construction sequence asks
// for, which is useful for sizing a maze before committing to it.
type CountingBuilder struct {
	started bool
	rooms   mapset.Set[int]
	doors   int
}

// NewCountingBuilder creates a counting builder with no maze started
func NewCountingBuilder() *CountingBuilder {
	return &CountingBuilder{}
}

// BuildMaze resets the counts
func (b *CountingBuilder) BuildMaze() {
	b.started = true
	b.rooms = mapset.New[int]()
	b.doors = 0
}

// BuildRoom counts a room number the first time it is seen
func (b *CountingBuilder) BuildRoom(number int) error {
	if !b.started {
		return ErrNoMaze
	}
	b.rooms.Put(number)
	return nil
}

// BuildDoor counts a door between two counted rooms
func (b *CountingBuilder) BuildDoor(from, to int) error {
	if !b.started {
		return ErrNoMaze
	}
	for _, n := range []int{from, to} {
		if !b.rooms.Has(n) {
			return fmt.Errorf("build door %d->%d: room %d: %w", from, to, n, maze.ErrNotFound)
		}
	}
	b.doors++
	return nil
}

// Maze always returns nil; a counting builder produces no maze
func (b *CountingBuilder) Maze() *maze.Maze {
	return nil
}

// Counts returns the number of distinct rooms and the number of doors
// requested since the last BuildMaze
func (b *CountingBuilder) Counts() (rooms, doors int) {
	if !b.started {
		return 0, 0
	}
	return b.rooms.Size(), b.doors
}
