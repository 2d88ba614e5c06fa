package game

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lawnchairsociety/mazegame/internal/builder"
	"github.com/lawnchairsociety/mazegame/internal/maze"
)

func TestCreateMaze(t *testing.T) {
	m, err := CreateMaze(builder.NewStandardBuilder())
	if err != nil {
		t.Fatalf("CreateMaze: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}

	r1, _ := m.Room(1)
	r2, _ := m.Room(2)
	east, _ := r1.Side(maze.East)
	west, _ := r2.Side(maze.West)
	if _, ok := east.(*maze.Door); !ok || east != west {
		t.Error("rooms 1 and 2 should share a door east of room 1")
	}
}

func TestCreateMazeWithCountingBuilder(t *testing.T) {
	b := builder.NewCountingBuilder()
	m, err := CreateMaze(b)
	if err != nil {
		t.Fatalf("CreateMaze: %v", err)
	}
	if m != nil {
		t.Error("counting builder should yield no maze")
	}
	if rooms, doors := b.Counts(); rooms != 2 || doors != 1 {
		t.Errorf("Counts() = (%d, %d), want (2, 1)", rooms, doors)
	}
}

type failingBuilder struct {
	*builder.StandardBuilder
}

func (f failingBuilder) BuildDoor(from, to int) error {
	return f.StandardBuilder.BuildDoor(from, to+100)
}

func TestCreateMazePropagatesErrors(t *testing.T) {
	_, err := CreateMaze(failingBuilder{builder.NewStandardBuilder()})
	if !errors.Is(err, maze.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestTour(t *testing.T) {
	m, err := CreateMaze(builder.NewStandardBuilder())
	if err != nil {
		t.Fatalf("CreateMaze: %v", err)
	}

	var buf bytes.Buffer
	if err := Tour(m, NewNarrator(&buf, false)); err != nil {
		t.Fatalf("Tour: %v", err)
	}

	want := strings.Join([]string{
		"You are in room 1",
		"You hit a wall!",
		"The door is closed.",
		"You open the door.",
		"You pass through the door.",
		"You are in room 2",
	}, "\n") + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Tour output:\n%s\nwant:\n%s", got, want)
	}

	r1, _ := m.Room(1)
	east, _ := r1.Side(maze.East)
	if !east.(*maze.Door).IsOpen() {
		t.Error("door should be left open after the tour")
	}
}

func TestTourMissingRoom(t *testing.T) {
	m := maze.NewMaze()
	m.AddRoom(maze.NewRoom(1))

	err := Tour(m, NewNarrator(&bytes.Buffer{}, false))
	if !errors.Is(err, maze.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestTourWithoutDoor(t *testing.T) {
	b := builder.NewStandardBuilder()
	b.BuildMaze()
	b.BuildRoom(1)
	b.BuildRoom(2)

	err := Tour(b.Maze(), NewNarrator(&bytes.Buffer{}, false))
	if !errors.Is(err, ErrNoDoor) {
		t.Errorf("err = %v, want ErrNoDoor", err)
	}
}

func TestTourDoorLeadsElsewhere(t *testing.T) {
	m := maze.NewMaze()
	r1, r2, r3 := maze.NewRoom(1), maze.NewRoom(2), maze.NewRoom(3)
	for _, r := range []*maze.Room{r1, r2, r3} {
		for _, d := range maze.AllDirections() {
			r.SetSide(d, maze.NewWall())
		}
		m.AddRoom(r)
	}
	r1.SetSide(maze.East, maze.NewDoor(r1, r3))

	var buf bytes.Buffer
	err := Tour(m, NewNarrator(&buf, false))
	if err == nil {
		t.Fatal("expected error when the east door does not reach room 2")
	}
	if strings.Contains(buf.String(), "You are in room 2") {
		t.Error("tour should not announce room 2 through the wrong door")
	}
}

func TestCountDoors(t *testing.T) {
	m, err := CreateMaze(builder.NewStandardBuilder())
	if err != nil {
		t.Fatalf("CreateMaze: %v", err)
	}
	if got := countDoors(m); got != 1 {
		t.Errorf("countDoors() = %d, want 1", got)
	}
	if got := countDoors(maze.NewMaze()); got != 0 {
		t.Errorf("countDoors() on empty maze = %d, want 0", got)
	}
}

func TestNarratorColoredKeepsText(t *testing.T) {
	var buf bytes.Buffer
	NewNarrator(&buf, true).Say(KindWall, "You hit a wall!")

	if !strings.Contains(buf.String(), "You hit a wall!") {
		t.Errorf("coloured output lost the message: %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("narration line should end with a newline")
	}
}
