package layout

import "github.com/katalvlaran/lvmaze/grid"

// KeySet is a set of cell keys.
type KeySet map[grid.Key]struct{}

// Has reports whether ref's key is in the set.
func (s KeySet) Has(ref grid.Keyed) bool {
	_, ok := s[ref.Key()]
	return ok
}

// Add inserts ref's key.
func (s KeySet) Add(ref grid.Keyed) { s[ref.Key()] = struct{}{} }

// ZoneExcluded reports whether zone (x, y) is excluded. Coordinates outside
// the matrix, including negative ones, are not excluded.
func (c Config) ZoneExcluded(x, y int) bool {
	if x < 0 || x >= len(c.Exclusions) {
		return false
	}
	col := c.Exclusions[x]
	if y < 0 || y >= len(col) {
		return false
	}
	return col[y] != 0
}

// ExcludedZones lists excluded zones as physical-unit coordinates, column by column.
func (c Config) ExcludedZones() []grid.Coordinate {
	var zones []grid.Coordinate
	for x, col := range c.Exclusions {
		for y, v := range col {
			if v != 0 {
				zones = append(zones, grid.Coordinate{X: x, Y: y, Unit: grid.UnitPhysical})
			}
		}
	}
	return zones
}

// ExcludedCells expands every excluded zone into its Density×Density block of
// cell keys.
func (c Config) ExcludedCells() KeySet {
	zones := c.ExcludedZones()
	set := make(KeySet, len(zones)*c.Density*c.Density)
	for _, z := range zones {
		for i := 0; i < c.Density; i++ {
			for j := 0; j < c.Density; j++ {
				set.Add(grid.CellCoordinate(z.X*c.Density+i, z.Y*c.Density+j))
			}
		}
	}
	return set
}
