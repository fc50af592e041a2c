package maze

// Regions finds every connected area of open cells (Path, Destination and
// Start) under 4-connectivity. Regions are listed in the row-major order of
// their first cell; cells inside a region are in BFS discovery order.
//
// Time:   O(R×C).
// Memory: O(R×C) for visited flags and output.
func (g *Grid) Regions() [][]Position {
	seen := make([]bool, len(g.cells))
	var regions [][]Position

	for i0, k := range g.cells {
		if k == Wall || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var region []Position

		for qi := 0; qi < len(queue); qi++ {
			u := g.position(queue[qi])
			region = append(region, u)
			for _, h := range Headings {
				v := u.Step(h)
				if g.Classify(v) == Wall {
					continue
				}
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// RegionOf returns the open region containing p, or nil when p is a wall
// or out of bounds.
func (g *Grid) RegionOf(p Position) []Position {
	if g.Classify(p) == Wall {
		return nil
	}
	for _, region := range g.Regions() {
		for _, q := range region {
			if q == p {
				return region
			}
		}
	}
	return nil
}
