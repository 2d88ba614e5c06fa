package maze

import "github.com/lawnchairsociety/mazegame/internal/text"

// Side is anything that can occupy one side of a room.
// Enter returns the message the actor sees when walking into it.
type Side interface {
	Enter() string
}

// Wall is the default, impassable side of a room
type Wall struct{}

// NewWall creates a wall
func NewWall() *Wall {
	return &Wall{}
}

// Enter reports that the actor bumped into the wall
func (w *Wall) Enter() string {
	return text.Current().WallHit()
}
