package layout

// Page and badge geometry in PDF points (72 per inch).
const (
	PageWidth  = 612.0 // 8.5"
	PageHeight = 792.0 // 11"

	BadgeSize = 189.36 // 2.63"

	XGap          = 6.0
	YGap          = 4.0
	LeftPadding   = 14.0
	BottomPadding = 10.0

	Rows         = 4
	Cols         = 3
	CellsPerPage = Rows * Cols
)

// Point is a position in page space, origin at the bottom-left.
type Point struct {
	X, Y float64
}

// Cell is one badge slot on a page. Row 0 is the bottom row.
type Cell struct {
	Row int
	Col int
}

// Valid reports whether the cell lies inside the grid.
func (c Cell) Valid() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// Index returns the cell's position in fill order.
func (c Cell) Index() int {
	return c.Row*Cols + c.Col
}

// CellAt returns the cell at fill position i on its page.
// Cells fill row by row starting from the bottom-left corner.
func CellAt(i int) Cell {
	i %= CellsPerPage
	return Cell{Row: i / Cols, Col: i % Cols}
}

// Cells returns every cell of a page in fill order.
func Cells() []Cell {
	cells := make([]Cell, 0, CellsPerPage)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			cells = append(cells, Cell{Row: row, Col: col})
		}
	}
	return cells
}

// CellOrigin returns the bottom-left corner of the badge in cell c.
func CellOrigin(c Cell) Point {
	return Point{
		X: LeftPadding + float64(c.Col)*(BadgeSize+XGap),
		Y: BottomPadding + float64(c.Row)*(BadgeSize+YGap),
	}
}

// CenterX returns the horizontal center of the badge whose origin is o.
func CenterX(o Point) float64 {
	return o.X + BadgeSize/2
}

// PageCount returns the number of pages needed for n badges.
// There is always at least one page.
func PageCount(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + CellsPerPage - 1) / CellsPerPage
}
