// Package text provides the player-facing messages of the maze, with
// optional overrides loaded from a YAML file.
package text

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Default messages used when no override is configured.
const (
	DefaultWallHit     = "You hit a wall!"
	DefaultDoorClosed  = "The door is closed."
	DefaultDoorPassed  = "You pass through the door."
	DefaultDoorOpened  = "You open the door."
	DefaultRoomEntered = "You are in room %d"
)

// TextData represents the structure of the text.yaml file.
type TextData struct {
	Maze MazeText `yaml:"maze"`
}

// MazeText contains the messages shown while walking the maze.
type MazeText struct {
	WallHit     string `yaml:"wall_hit"`
	DoorClosed  string `yaml:"door_closed"`
	DoorPassed  string `yaml:"door_passed"`
	DoorOpened  string `yaml:"door_opened"`
	RoomEntered string `yaml:"room_entered"`
}

// Text provides message lookup functionality.
type Text struct {
	data *TextData
	mu   sync.RWMutex
}

var (
	instance *Text
	fallback = New()
	once     sync.Once
)

// New returns a catalog holding the default messages.
func New() *Text {
	return &Text{data: &TextData{Maze: defaultMazeText()}}
}

func defaultMazeText() MazeText {
	return MazeText{
		WallHit:     DefaultWallHit,
		DoorClosed:  DefaultDoorClosed,
		DoorPassed:  DefaultDoorPassed,
		DoorOpened:  DefaultDoorOpened,
		RoomEntered: DefaultRoomEntered,
	}
}

// Load loads messages from a YAML file. Keys missing from the file keep
// their default text.
func Load(path string) (*Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read text file: %w", err)
	}

	var textData TextData
	if err := yaml.Unmarshal(data, &textData); err != nil {
		return nil, fmt.Errorf("failed to parse text file: %w", err)
	}

	merged := defaultMazeText()
	mergeString(&merged.WallHit, textData.Maze.WallHit)
	mergeString(&merged.DoorClosed, textData.Maze.DoorClosed)
	mergeString(&merged.DoorPassed, textData.Maze.DoorPassed)
	mergeString(&merged.DoorOpened, textData.Maze.DoorOpened)
	mergeString(&merged.RoomEntered, textData.Maze.RoomEntered)

	if err := checkRoomFormat(merged.RoomEntered); err != nil {
		return nil, err
	}

	return &Text{data: &TextData{Maze: merged}}, nil
}

// checkRoomFormat rejects room formats that do not render exactly one
// integer cleanly.
func checkRoomFormat(format string) error {
	if rendered := fmt.Sprintf(format, 0); strings.Contains(rendered, "%!") {
		return fmt.Errorf("room_entered is not a valid room number format, got %q", format)
	}
	return nil
}

func mergeString(dst *string, src string) {
	if s := strings.TrimSpace(src); s != "" {
		*dst = s
	}
}

// Initialize loads the text data and sets the singleton instance.
// Only the first call has any effect.
func Initialize(path string) error {
	var err error
	once.Do(func() {
		instance, err = Load(path)
	})
	return err
}

// Current returns the singleton instance, or the defaults if Initialize
// has not succeeded.
func Current() *Text {
	if instance == nil {
		return fallback
	}
	return instance
}

// WallHit returns the message for walking into a wall.
func (t *Text) WallHit() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.data.Maze.WallHit
}

// DoorClosed returns the message for walking into a closed door.
func (t *Text) DoorClosed() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.data.Maze.DoorClosed
}

// DoorPassed returns the message for walking through an open door.
func (t *Text) DoorPassed() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.data.Maze.DoorPassed
}

// DoorOpened returns the message for opening a door.
func (t *Text) DoorOpened() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.data.Maze.DoorOpened
}

// RoomEntered returns the room announcement format. It takes the room
// number as its only verb.
func (t *Text) RoomEntered() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.data.Maze.RoomEntered
}
