// Package builder assembles mazes step by step.
//
// A Builder is driven in a fixed order: BuildMaze first, then any number of
// BuildRoom and BuildDoor calls, then Maze to collect the result.
package builder

import (
	"errors"

	"github.com/lawnchairsociety/mazegame/internal/maze"
)

// ErrNoMaze is returned by build steps called before BuildMaze
var ErrNoMaze = errors.New("maze not started: call BuildMaze first")

// Builder is the stepwise maze assembly protocol
type Builder interface {
	// BuildMaze starts a fresh, empty maze
	BuildMaze()

	// BuildRoom ensures a room with the given number exists
	BuildRoom(number int) error

	// BuildDoor connects two existing rooms with a door
	BuildDoor(from, to int) error

	// Maze returns whatever has been built so far
	Maze() *maze.Maze
}
