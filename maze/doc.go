// Package maze models a rectangular labyrinth of classified cells and
// loads it from the plain-text symbol format used by theseus.
//
// What:
//
//   - Grid wraps an R×C matrix of CellKind values (Wall, Path, Start, Destination).
//   - Heading is a cyclic compass direction with explicit clockwise and
//     counter-clockwise rotation.
//   - Parse/Load turn text into a Grid, either by counting a fixed number of
//     symbols (WithDimensions) or by reading one row per non-blank line.
//   - Regions reports the connected open areas of the maze.
//
// Rules:
//
//   - Classify never fails: positions outside the grid classify as Wall.
//   - IsWalkable is true only for Path and Destination cells. The Start
//     cell is not walkable, so an agent never steps back onto it.
//   - A Grid is immutable once built; New deep-copies its input.
//
// Input symbols:
//
//	W  wall
//	P  path
//	T  start
//	D  destination
//
// Whitespace between symbols is ignored.
//
// Complexity:
//
//   - Parse:   O(R×C) time and memory.
//   - Regions: O(R×C) time, O(R×C) memory.
//
// Errors:
//
//   - ErrLoad wraps every loader failure (I/O, ErrTruncated, ErrInvalidSymbol,
//     ErrNonRectangular, ErrEmptyGrid, ErrMultipleStarts, ErrOptionViolation).
//   - ErrStartNotFound: the grid holds no Start cell.
//   - ErrOptionViolation: an invalid Option was supplied, including
//     dimensions whose product overflows int.
package maze
