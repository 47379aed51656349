// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: value types of the maze lattice (Unit, Key, Coordinate, Cell, Connection).
// Policy:
//   - All types are immutable values; identity flows through canonical keys.
//   - No bounds validation here; the Grid construction layer owns bounds.

package grid

import (
	"iter"
	"strconv"
)

// Unit tags a Coordinate with its unit of measure.
type Unit uint8

const (
	// UnitCell measures positions in maze cells.
	UnitCell Unit = iota
	// UnitPhysical measures positions in coarse physical zones (e.g. inches of canvas).
	UnitPhysical
)

// String returns the unit suffix used inside canonical keys.
func (u Unit) String() string {
	switch u {
	case UnitCell:
		return "cells"
	case UnitPhysical:
		return "inches"
	default:
		return "unit(" + strconv.Itoa(int(u)) + ")"
	}
}

// Key is the canonical identity of a Coordinate (and of the Cell owning it).
type Key string

// Key returns k itself so that raw keys satisfy Keyed.
func (k Key) Key() Key { return k }

// Keyed is anything that resolves to a canonical cell Key:
// a Key, a Coordinate or a Cell.
type Keyed interface {
	Key() Key
}

// Coordinate is an immutable 2D position tagged with a Unit.
type Coordinate struct {
	X    int
	Y    int
	Unit Unit
}

// CellCoordinate returns a cell-unit Coordinate.
func CellCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y, Unit: UnitCell}
}

// Key renders "{x}{unit},{y}{unit}", e.g. "3cells,4cells".
// Two coordinates are equal iff their keys are equal.
func (c Coordinate) Key() Key {
	u := c.Unit.String()
	b := make([]byte, 0, 2*len(u)+24)
	b = strconv.AppendInt(b, int64(c.X), 10)
	b = append(b, u...)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(c.Y), 10)
	b = append(b, u...)
	return Key(b)
}

// String implements fmt.Stringer.
func (c Coordinate) String() string { return string(c.Key()) }

// Cell is a maze node identified by its cell-unit coordinate.
// Cells are created once while populating a Grid and never mutated.
type Cell struct {
	coord Coordinate
}

// NewCell returns the cell at (x, y).
func NewCell(x, y int) Cell {
	return Cell{coord: CellCoordinate(x, y)}
}

// Coordinate returns the cell's position.
func (c Cell) Coordinate() Coordinate { return c.coord }

// Key returns the canonical key of the cell's coordinate.
func (c Cell) Key() Key { return c.coord.Key() }

// String implements fmt.Stringer.
func (c Cell) String() string { return string(c.Key()) }

// neighborDeltas lists the axis-aligned moves in enumeration order:
// left, right, up, down.
var neighborDeltas = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NeighborCoordinates lazily yields the coordinates one step away along x or y,
// filtered to 0 <= x < maxX and 0 <= y < maxY. Exclusions are not considered.
func (c Cell) NeighborCoordinates(maxX, maxY int) iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for _, d := range neighborDeltas {
			x, y := c.coord.X+d[0], c.coord.Y+d[1]
			if x < 0 || x >= maxX || y < 0 || y >= maxY {
				continue
			}
			if !yield(Coordinate{X: x, Y: y, Unit: c.coord.Unit}) {
				return
			}
		}
	}
}

// ConnectionKey is the orientation-sensitive identity of a Connection.
type ConnectionKey string

// Connection is a passage between two adjacent cells. It is stored in one
// orientation but treated as undirected by Grid membership checks.
type Connection struct {
	From Cell
	To   Cell
}

// Key renders "{from}->{to}". The reverse connection has a different key.
func (e Connection) Key() ConnectionKey {
	return connectionKey(e.From.Key(), e.To.Key())
}

// Reverse returns the same pair in the opposite orientation.
func (e Connection) Reverse() Connection {
	return Connection{From: e.To, To: e.From}
}

// Horizontal reports whether the endpoints differ by exactly one step along x.
func (e Connection) Horizontal() bool {
	return abs(e.From.coord.X-e.To.coord.X) == 1 && e.From.coord.Y == e.To.coord.Y
}

// Vertical reports whether the endpoints differ by exactly one step along y.
func (e Connection) Vertical() bool {
	return abs(e.From.coord.Y-e.To.coord.Y) == 1 && e.From.coord.X == e.To.coord.X
}

// String implements fmt.Stringer.
func (e Connection) String() string { return string(e.Key()) }

func connectionKey(from, to Key) ConnectionKey {
	return ConnectionKey(string(from) + "->" + string(to))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
