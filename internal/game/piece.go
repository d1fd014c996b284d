package game

// Kind is one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

var AllKinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

var kindNames = [...]string{"I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "?"
	}
	return kindNames[k]
}

func (k Kind) Valid() bool {
	return k >= KindI && k <= KindL
}

var kindColors = map[Kind]int{
	KindI: 6,
	KindO: 3,
	KindT: 5,
	KindS: 2,
	KindZ: 1,
	KindJ: 4,
	KindL: 7,
}

// Color is the palette index used for this kind (never 0).
func (k Kind) Color() int {
	return kindColors[k]
}

func kindFromColor(c int) Kind {
	for k, v := range kindColors {
		if v == c {
			return k
		}
	}
	return KindI
}

// shapes holds the cell offsets from the anchor for each rotation state.
// Offsets live inside the kind's bounding box (4x4 for I, 2x2 for O, 3x3
// otherwise) and rotation is clockwise.
var shapes = map[Kind][][4]Point{
	KindI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
	},
	KindO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
	},
	KindJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	KindL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

var boxWidths = map[Kind]int{
	KindI: 4,
	KindO: 2,
	KindT: 3,
	KindS: 3,
	KindZ: 3,
	KindJ: 3,
	KindL: 3,
}

// RotationCount is the number of distinct rotation states for k.
func RotationCount(k Kind) int {
	return len(shapes[k])
}

// OccupiedCells returns the board cells covered by a piece of kind k in
// the given rotation state with its anchor at anchor.
func OccupiedCells(k Kind, rotation int, anchor Point) [4]Point {
	offsets := shapes[k][rotation%len(shapes[k])]
	var cells [4]Point
	for i, o := range offsets {
		cells[i] = Point{Col: anchor.Col + o.Col, Row: anchor.Row + o.Row}
	}
	return cells
}

// Piece is an immutable value: Rotated and Translated return new pieces.
type Piece struct {
	Kind     Kind
	Rotation int
	Col, Row int
}

// SpawnPiece places a piece of kind k at the fixed spawn anchor: centered
// horizontally on a board of the given width, top row.
func SpawnPiece(k Kind, boardWidth int) Piece {
	return Piece{
		Kind: k,
		Col:  boardWidth/2 - boxWidths[k]/2,
		Row:  0,
	}
}

func (p Piece) Anchor() Point {
	return Point{Col: p.Col, Row: p.Row}
}

func (p Piece) Cells() [4]Point {
	return OccupiedCells(p.Kind, p.Rotation, p.Anchor())
}

// Rotated returns p turned one step clockwise. Legality is not checked.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % RotationCount(p.Kind)
	return p
}

// RotatedBack returns p turned one step counter-clockwise.
func (p Piece) RotatedBack() Piece {
	n := RotationCount(p.Kind)
	p.Rotation = (p.Rotation + n - 1) % n
	return p
}

func (p Piece) Translated(dCol, dRow int) Piece {
	p.Col += dCol
	p.Row += dRow
	return p
}

// Shape renders the current rotation as a grid sized to the kind's
// bounding box, for previews.
func (p Piece) Shape() [][]bool {
	n := boxWidths[p.Kind]
	grid := make([][]bool, n)
	for i := range grid {
		grid[i] = make([]bool, n)
	}
	for _, o := range shapes[p.Kind][p.Rotation%RotationCount(p.Kind)] {
		grid[o.Row][o.Col] = true
	}
	return grid
}
