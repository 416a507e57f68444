package canvas

// Coord addresses one cell of the grid. Valid coordinates are in
// [0, size-1] on both axes; validity is enforced by callers that own
// the grid size, not here.
type Coord struct {
	X int
	Y int
}

// Color carries upstream channel values as-is. No clamping: the
// upstream payload shape is trusted.
type Color struct {
	Red   int
	Green int
	Blue  int
}

type Cell struct {
	Coord Coord
	Color Color
	// TeamID is set only when the color came from a local edit. Nil
	// means no team association known.
	TeamID *int
}

// Coords lists every coordinate of a size×size grid in row-major
// order, so grid assembly stays deterministic.
func Coords(size int) []Coord {
	cs := make([]Coord, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cs = append(cs, Coord{X: x, Y: y})
		}
	}
	return cs
}

func InBounds(c Coord, size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}
