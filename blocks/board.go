package blocks

import "github.com/pautown/llizard-plugins/gamemath"

// Board dimensions. A narrow well keeps pieces readable on the small
// host display.
const (
	Cols = 10
	Rows = 16
)

// Kind enumerates the seven tetromino shapes.
type Kind int8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	KindCount
)

type cell struct{ X, Y int }

// boxSize is the rotation box per kind. I spins in a 4-box, O in a
// 2-box, the rest in 3-boxes.
var boxSize = [KindCount]int{4, 2, 3, 3, 3, 3, 3}

var baseCells = [KindCount][4]cell{
	KindI: {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	KindO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	KindT: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
	KindS: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	KindZ: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	KindJ: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	KindL: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// rotations holds every kind's cell sets for the four clockwise
// rotation states, derived from baseCells at init.
var rotations = buildRotations()

func buildRotations() [KindCount][4][4]cell {
	var out [KindCount][4][4]cell
	for k := Kind(0); k < KindCount; k++ {
		size := boxSize[k]
		cells := baseCells[k]
		for r := 0; r < 4; r++ {
			out[k][r] = cells
			next := cells
			for i, c := range cells {
				next[i] = cell{X: size - 1 - c.Y, Y: c.X}
			}
			cells = next
		}
	}
	return out
}

// Piece is the falling tetromino: a kind, a rotation state, and the
// well position of its rotation box's top-left corner.
type Piece struct {
	Kind Kind
	Rot  int
	X, Y int
}

// Cells returns the four well coordinates the piece occupies.
func (p Piece) Cells() [4]cell {
	cells := rotations[p.Kind][p.Rot]
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// lineScores pays per simultaneous clear count, multiplied by level.
var lineScores = [5]int{0, 100, 300, 500, 800}

// LinesPerLevel raises the level (and gravity) every N cleared lines.
const LinesPerLevel = 10

// Board is the pure game core: the settled grid, the falling piece,
// and the scoreboard. It knows nothing about frames or rendering; the
// plugin glue drives it with Move/Rotate/Step calls.
type Board struct {
	rng *gamemath.Rand
	bag []Kind

	// Grid holds settled cells: 0 empty, else Kind+1.
	Grid [Rows][Cols]int8

	Cur  Piece
	Next Kind

	Score int
	Lines int
	Level int

	Over bool
}

// NewBoard deals the first two pieces from a seeded bag.
func NewBoard(seed uint64) *Board {
	b := &Board{
		rng:   gamemath.NewRand(seed),
		Level: 1,
	}
	b.Next = b.draw()
	b.spawn()
	return b
}

// draw pops the next kind from a shuffled seven-bag.
func (b *Board) draw() Kind {
	if len(b.bag) == 0 {
		for k := Kind(0); k < KindCount; k++ {
			b.bag = append(b.bag, k)
		}
		b.rng.Shuffle(len(b.bag), func(i, j int) {
			b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
		})
	}
	k := b.bag[0]
	b.bag = b.bag[1:]
	return k
}

// spawn promotes Next to the falling piece at top center. A blocked
// spawn ends the game.
func (b *Board) spawn() {
	p := Piece{
		Kind: b.Next,
		X:    Cols/2 - boxSize[b.Next]/2,
		Y:    0,
	}
	b.Next = b.draw()
	if b.collides(p) {
		b.Over = true
		return
	}
	b.Cur = p
}

func (b *Board) collides(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= Cols || c.Y < 0 || c.Y >= Rows {
			return true
		}
		if b.Grid[c.Y][c.X] != 0 {
			return true
		}
	}
	return false
}

// Move shifts the falling piece horizontally, refusing at walls and
// settled cells.
func (b *Board) Move(dx int) bool {
	if b.Over {
		return false
	}
	p := b.Cur
	p.X += dx
	if b.collides(p) {
		return false
	}
	b.Cur = p
	return true
}

// rotateKicks are the horizontal nudges tried when an in-place spin
// collides. ±2 lets the I piece spin against a wall.
var rotateKicks = [...]int{0, -1, 1, -2, 2}

// Rotate spins the falling piece clockwise, kicking off walls when the
// in-place rotation is blocked.
func (b *Board) Rotate() bool {
	if b.Over {
		return false
	}
	p := b.Cur
	p.Rot = (p.Rot + 1) % 4
	for _, kick := range rotateKicks {
		try := p
		try.X += kick
		if !b.collides(try) {
			b.Cur = try
			return true
		}
	}
	return false
}

// Step is one gravity tick: the piece falls a row, or locks when it
// cannot. Returns the number of lines the lock cleared.
func (b *Board) Step() int {
	if b.Over {
		return 0
	}
	p := b.Cur
	p.Y++
	if !b.collides(p) {
		b.Cur = p
		return 0
	}
	return b.lock()
}

// SoftDrop is a player-driven Step.
func (b *Board) SoftDrop() int {
	return b.Step()
}

// HardDrop slams the piece to the floor and locks it immediately.
func (b *Board) HardDrop() int {
	if b.Over {
		return 0
	}
	for {
		p := b.Cur
		p.Y++
		if b.collides(p) {
			break
		}
		b.Cur = p
	}
	return b.lock()
}

// lock stamps the piece into the grid, settles any full lines, and
// spawns the next piece.
func (b *Board) lock() int {
	for _, c := range b.Cur.Cells() {
		b.Grid[c.Y][c.X] = int8(b.Cur.Kind) + 1
	}
	cleared := b.clearLines()
	b.spawn()
	return cleared
}

// clearLines drops full rows out of the grid and pays the scoreboard.
func (b *Board) clearLines() int {
	cleared := 0
	for y := Rows - 1; y >= 0; y-- {
		full := true
		for x := 0; x < Cols; x++ {
			if b.Grid[y][x] == 0 {
				full = false
				break
			}
		}
		if !full {
			continue
		}
		cleared++
		for yy := y; yy > 0; yy-- {
			b.Grid[yy] = b.Grid[yy-1]
		}
		b.Grid[0] = [Cols]int8{}
		y++
	}
	if cleared > 0 {
		b.Score += lineScores[cleared] * b.Level
		b.Lines += cleared
		b.Level = b.Lines/LinesPerLevel + 1
	}
	return cleared
}

// FallInterval is the gravity period for the current level. Each level
// shaves 15%, floored to keep the well playable.
func (b *Board) FallInterval() float64 {
	interval := 0.8
	for i := 1; i < b.Level; i++ {
		interval *= 0.85
	}
	if interval < 0.08 {
		interval = 0.08
	}
	return interval
}

// GhostY returns the Y the falling piece would land at, for the
// landing preview.
func (b *Board) GhostY() int {
	p := b.Cur
	for {
		next := p
		next.Y++
		if b.collides(next) {
			return p.Y
		}
		p = next
	}
}
