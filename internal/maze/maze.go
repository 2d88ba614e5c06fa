// Package maze holds the object model of a maze: rooms keyed by number,
// each with a wall or door on every compass side.
package maze

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when a room number is not in the maze
var ErrNotFound = errors.New("room not found")

// Maze owns a set of rooms keyed by room number
type Maze struct {
	rooms map[int]*Room
}

// NewMaze creates an empty maze
func NewMaze() *Maze {
	return &Maze{
		rooms: make(map[int]*Room),
	}
}

// AddRoom stores room under its number, silently replacing any room
// already stored under that number
func (m *Maze) AddRoom(room *Room) {
	m.rooms[room.Number()] = room
}

// Room returns the room with the given number.
// The error wraps ErrNotFound if there is no such room.
func (m *Maze) Room(number int) (*Room, error) {
	room, ok := m.rooms[number]
	if !ok {
		return nil, fmt.Errorf("room %d: %w", number, ErrNotFound)
	}
	return room, nil
}

// HasRoom returns true if a room with the given number exists
func (m *Maze) HasRoom(number int) bool {
	_, ok := m.rooms[number]
	return ok
}

// Len returns the number of rooms in the maze
func (m *Maze) Len() int {
	return len(m.rooms)
}

// Rooms returns all rooms ordered by room number
func (m *Maze) Rooms() []*Room {
	rooms := make([]*Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].Number() < rooms[j].Number()
	})
	return rooms
}
