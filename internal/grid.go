package internal

// Grid is a row-major 2D array. Columns run along u, rows along v.
type Grid[E any] struct {
	width  int
	values []E
}

// NewGrid wraps values as rows of width entries. It reports false when
// values cannot be split into whole, non-empty rows.
func NewGrid[E any](width int, values []E) (Grid[E], bool) {
	if width <= 0 || len(values) == 0 || len(values)%width != 0 {
		return Grid[E]{}, false
	}

	return Grid[E]{width, values}, true
}

// GridWithCapacity returns an empty grid to be filled row by row with Push.
func GridWithCapacity[E any](width, height int) Grid[E] {
	return Grid[E]{width, make([]E, 0, width*height)}
}

func (g *Grid[E]) Push(value E) {
	g.values = append(g.values, value)
}

// Len is the number of columns.
func (g Grid[E]) Len() int {
	return g.width
}

// Height is the number of rows.
func (g Grid[E]) Height() int {
	return len(g.values) / g.width
}

func (g Grid[E]) Index(col, row int) int {
	return row*g.width + col
}

func (g Grid[E]) At(col, row int) E {
	return g.values[g.Index(col, row)]
}

func (g Grid[E]) Set(col, row int, value E) {
	g.values[g.Index(col, row)] = value
}

func (g Grid[E]) Row(row int) []E {
	return g.values[row*g.width : (row+1)*g.width]
}

func (g Grid[E]) Values() []E {
	return g.values
}
