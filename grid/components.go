package grid

// Components returns the connected components of g as groups of cells.
// Components are ordered by their first cell in insertion order; cells inside
// a component are in BFS discovery order.
//
// Time:   O(V + E).
// Memory: O(V + E) for the adjacency index and visited set.
func (g *Grid) Components() [][]Cell {
	adj := make(map[Key][]Key, len(g.cellOrder))
	for _, ck := range g.connOrder {
		e := g.connections[ck]
		u, v := e.From.Key(), e.To.Key()
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	seen := make(map[Key]bool, len(g.cellOrder))
	var comps [][]Cell
	for _, start := range g.cellOrder {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []Key{start}
		seen[start] = true
		var comp []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, g.cells[u])
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
