// Package game drives a builder through the fixed two-room construction
// and walks the result.
package game

import (
	"errors"
	"fmt"

	"github.com/lawnchairsociety/mazegame/internal/builder"
	"github.com/lawnchairsociety/mazegame/internal/logger"
	"github.com/lawnchairsociety/mazegame/internal/maze"
)

// Room numbers of the fixed layout
const (
	FirstRoom  = 1
	SecondRoom = 2
)

// ErrNoDoor is returned by Tour when the first room has no door to the east
var ErrNoDoor = errors.New("no door on the east side")

// CreateMaze builds two rooms joined by a door and returns the maze.
// The layout is hardcoded.
func CreateMaze(b builder.Builder) (*maze.Maze, error) {
	b.BuildMaze()

	if err := b.BuildRoom(FirstRoom); err != nil {
		return nil, fmt.Errorf("create maze: %w", err)
	}
	if err := b.BuildRoom(SecondRoom); err != nil {
		return nil, fmt.Errorf("create maze: %w", err)
	}
	if err := b.BuildDoor(FirstRoom, SecondRoom); err != nil {
		return nil, fmt.Errorf("create maze: %w", err)
	}

	m := b.Maze()
	if m != nil {
		logger.Info("Maze created", "rooms", m.Len(), "doors", countDoors(m))
	}
	return m, nil
}

// countDoors counts each distinct door once, although it sits on two rooms
func countDoors(m *maze.Maze) int {
	seen := make(map[*maze.Door]bool)
	for _, room := range m.Rooms() {
		for _, door := range room.Doors() {
			seen[door] = true
		}
	}
	return len(seen)
}

// Tour walks the maze the same way every time: enter the first room, bump
// the north wall, try the east door, open it, go through, and arrive in
// the second room.
func Tour(m *maze.Maze, n *Narrator) error {
	room1, err := m.Room(FirstRoom)
	if err != nil {
		return fmt.Errorf("tour: %w", err)
	}
	room2, err := m.Room(SecondRoom)
	if err != nil {
		return fmt.Errorf("tour: %w", err)
	}

	n.Say(KindRoom, room1.Enter())

	north, ok := room1.Side(maze.North)
	if !ok {
		return fmt.Errorf("tour: %v has no %v side", room1, maze.North)
	}
	n.Say(kindOf(north), north.Enter())

	east, _ := room1.Side(maze.East)
	door, ok := east.(*maze.Door)
	if !ok {
		return fmt.Errorf("tour: %v: %w", room1, ErrNoDoor)
	}
	n.Say(KindDoor, door.Enter())
	n.Say(KindDoor, door.Open())
	n.Say(KindDoor, door.Enter())

	through, ok := door.OtherSide(room1)
	if !ok || through != room2 {
		return fmt.Errorf("tour: door east of %v does not lead to %v", room1, room2)
	}
	n.Say(KindRoom, through.Enter())
	return nil
}

func kindOf(s maze.Side) Kind {
	if _, ok := s.(*maze.Door); ok {
		return KindDoor
	}
	return KindWall
}
