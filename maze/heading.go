package maze

import (
	"fmt"
	"strings"
)

// Heading is one of the four compass directions, ordered clockwise.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West

	numHeadings = 4
)

// Headings lists every heading in clockwise order starting at North.
var Headings = [numHeadings]Heading{North, East, South, West}

var headingDeltas = [numHeadings][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

var headingLabels = [numHeadings]string{North: "N", East: "E", South: "S", West: "W"}

// Clockwise returns the heading a quarter turn to the right.
func (h Heading) Clockwise() Heading {
	return (h + 1) % numHeadings
}

// CounterClockwise returns the heading a quarter turn to the left.
func (h Heading) CounterClockwise() Heading {
	return (h + numHeadings - 1) % numHeadings
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	return (h + 2) % numHeadings
}

// Delta returns the row and column offset of one step in heading h.
func (h Heading) Delta() (dRow, dCol int) {
	d := headingDeltas[h%numHeadings]
	return d[0], d[1]
}

// Valid reports whether h is one of the four defined headings.
func (h Heading) Valid() bool {
	return h < numHeadings
}

// String returns the one-letter label: N, E, S or W.
func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
	return headingLabels[h]
}

// ParseHeading accepts a one-letter label or a full compass name,
// case-insensitively.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N", "NORTH":
		return North, nil
	case "E", "EAST":
		return East, nil
	case "S", "SOUTH":
		return South, nil
	case "W", "WEST":
		return West, nil
	}
	return North, fmt.Errorf("maze: unknown heading %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (h Heading) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("maze: cannot marshal invalid heading %d", uint8(h))
	}
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Heading) UnmarshalText(text []byte) error {
	v, err := ParseHeading(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
