// SPDX-License-Identifier: MIT
//
// File: grid.go
// Role: Grid container, cell and connection catalogs with membership queries.
// Determinism:
//   - Cells() and Connections() return insertion order.
// Invariants:
//   - No duplicate cell keys.
//   - Exactly one orientation of every connection is stored.
//   - Both endpoints of a connection are registered cells; no self-loops.

package grid

import "fmt"

// Grid is a collection of cells and the connections between them.
type Grid struct {
	cells     map[Key]Cell
	cellOrder []Key

	connections map[ConnectionKey]Connection
	connOrder   []ConnectionKey
}

// New returns an empty Grid.
func New() *Grid {
	return &Grid{
		cells:       make(map[Key]Cell),
		connections: make(map[ConnectionKey]Connection),
	}
}

// NewWithCapacity returns an empty Grid with catalogs presized for
// the given number of cells and connections.
func NewWithCapacity(cells, connections int) *Grid {
	return &Grid{
		cells:       make(map[Key]Cell, cells),
		cellOrder:   make([]Key, 0, cells),
		connections: make(map[ConnectionKey]Connection, connections),
		connOrder:   make([]ConnectionKey, 0, connections),
	}
}

// keyOf resolves a reference to its key; ok is false for nil or empty references.
func keyOf(ref Keyed) (Key, bool) {
	if ref == nil {
		return "", false
	}
	k := ref.Key()
	return k, k != ""
}

// HasCell reports whether a cell with ref's key is registered.
// Complexity: O(1) average.
func (g *Grid) HasCell(ref Keyed) bool {
	k, ok := keyOf(ref)
	if !ok {
		return false
	}
	_, exists := g.cells[k]
	return exists
}

// HasConnection reports whether a connection between a and b exists in either
// orientation. Both arguments must resolve to registered cells, otherwise
// ErrInvalidArgument is returned.
// Complexity: O(1) average.
func (g *Grid) HasConnection(a, b Keyed) (bool, error) {
	ka, err := g.registeredKey(a)
	if err != nil {
		return false, fmt.Errorf("HasConnection: first argument: %w", err)
	}
	kb, err := g.registeredKey(b)
	if err != nil {
		return false, fmt.Errorf("HasConnection: second argument: %w", err)
	}
	return g.linked(ka, kb), nil
}

func (g *Grid) registeredKey(ref Keyed) (Key, error) {
	k, ok := keyOf(ref)
	if !ok {
		return "", ErrInvalidArgument
	}
	if _, exists := g.cells[k]; !exists {
		return "", fmt.Errorf("cell %s not registered: %w", k, ErrInvalidArgument)
	}
	return k, nil
}

// linked checks both orientations; keys are assumed registered.
func (g *Grid) linked(a, b Key) bool {
	if _, ok := g.connections[connectionKey(a, b)]; ok {
		return true
	}
	_, ok := g.connections[connectionKey(b, a)]
	return ok
}

// AddCell registers c. Returns ErrDuplicateEntity if its key is already present.
func (g *Grid) AddCell(c Cell) error {
	k := c.Key()
	if _, exists := g.cells[k]; exists {
		return fmt.Errorf("AddCell(%s): %w", k, ErrDuplicateEntity)
	}
	g.cells[k] = c
	g.cellOrder = append(g.cellOrder, k)
	return nil
}

// AddConnection stores the connection a->b.
//
// Errors:
//   - ErrUnknownEntity if either cell is not registered.
//   - ErrInvalidArgument if a and b are the same cell.
//   - ErrDuplicateEntity if a connection between them exists in either orientation.
func (g *Grid) AddConnection(a, b Cell) error {
	ka, kb := a.Key(), b.Key()
	if _, ok := g.cells[ka]; !ok {
		return fmt.Errorf("AddConnection(%s, %s): %s: %w", ka, kb, ka, ErrUnknownEntity)
	}
	if _, ok := g.cells[kb]; !ok {
		return fmt.Errorf("AddConnection(%s, %s): %s: %w", ka, kb, kb, ErrUnknownEntity)
	}
	if ka == kb {
		return fmt.Errorf("AddConnection(%s, %s): self-loop: %w", ka, kb, ErrInvalidArgument)
	}
	if g.linked(ka, kb) {
		return fmt.Errorf("AddConnection(%s, %s): %w", ka, kb, ErrDuplicateEntity)
	}
	conn := Connection{From: g.cells[ka], To: g.cells[kb]}
	ck := conn.Key()
	g.connections[ck] = conn
	g.connOrder = append(g.connOrder, ck)
	return nil
}

// GetCell returns the registered cell for ref, or ErrNotFound.
func (g *Grid) GetCell(ref Keyed) (Cell, error) {
	k, ok := keyOf(ref)
	if !ok {
		return Cell{}, fmt.Errorf("GetCell: %w", ErrInvalidArgument)
	}
	c, exists := g.cells[k]
	if !exists {
		return Cell{}, fmt.Errorf("GetCell(%s): %w", k, ErrNotFound)
	}
	return c, nil
}

// Cells returns all cells in insertion order. The slice is a fresh copy.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cellOrder))
	for i, k := range g.cellOrder {
		out[i] = g.cells[k]
	}
	return out
}

// Connections returns all connections in insertion order. The slice is a fresh copy.
func (g *Grid) Connections() []Connection {
	out := make([]Connection, len(g.connOrder))
	for i, k := range g.connOrder {
		out[i] = g.connections[k]
	}
	return out
}

// CellCount returns the number of registered cells.
func (g *Grid) CellCount() int { return len(g.cellOrder) }

// ConnectionCount returns the number of stored connections.
func (g *Grid) ConnectionCount() int { return len(g.connOrder) }
