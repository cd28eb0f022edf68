package blocks

import (
	"math"
	"sort"
	"testing"
)

func sortedCells(p Piece) [4]cell {
	cells := p.Cells()
	sort.Slice(cells[:], func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

func TestPieceCellsStayInsideTheRotationBox(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		size := boxSize[k]
		for rot := 0; rot < 4; rot++ {
			p := Piece{Kind: k, Rot: rot}
			seen := map[cell]bool{}
			for _, c := range p.Cells() {
				if c.X < 0 || c.X >= size || c.Y < 0 || c.Y >= size {
					t.Errorf("kind %d rot %d: cell %v outside %dx%d box", k, rot, c, size, size)
				}
				if seen[c] {
					t.Errorf("kind %d rot %d: duplicate cell %v", k, rot, c)
				}
				seen[c] = true
			}
		}
	}
}

func TestFourRotationsReturnHome(t *testing.T) {
	b := NewBoard(1)
	for k := Kind(0); k < KindCount; k++ {
		b.Cur = Piece{Kind: k, X: 4, Y: 6}
		home := sortedCells(b.Cur)
		for i := 0; i < 4; i++ {
			if !b.Rotate() {
				t.Fatalf("kind %d: rotation %d refused in open space", k, i)
			}
		}
		if got := sortedCells(b.Cur); got != home {
			t.Errorf("kind %d: cells after full spin = %v, want %v", k, got, home)
		}
	}
}

func TestRotateKicksOffTheRightWall(t *testing.T) {
	b := NewBoard(1)
	// vertical I hugging the wall; in-place spin would poke past it
	b.Cur = Piece{Kind: KindI, Rot: 1, X: 7, Y: 5}

	if !b.Rotate() {
		t.Fatal("rotation refused, want wall kick")
	}
	if b.Cur.Rot != 2 {
		t.Fatalf("rot = %d, want 2", b.Cur.Rot)
	}
	if b.Cur.X != 6 {
		t.Errorf("kicked X = %d, want 6", b.Cur.X)
	}
	for _, c := range b.Cur.Cells() {
		if c.X >= Cols {
			t.Errorf("cell %v past the wall", c)
		}
	}
}

func TestMoveRefusedAtWallsAndStacks(t *testing.T) {
	b := NewBoard(1)

	b.Cur = Piece{Kind: KindO, X: 0, Y: 5}
	if b.Move(-1) {
		t.Error("moved through the left wall")
	}
	if b.Cur.X != 0 {
		t.Errorf("X = %d after refused move, want 0", b.Cur.X)
	}

	b.Cur = Piece{Kind: KindO, X: Cols - 2, Y: 5}
	if b.Move(1) {
		t.Error("moved through the right wall")
	}

	b.Cur = Piece{Kind: KindO, X: 4, Y: 5}
	b.Grid[5][3] = 1
	if b.Move(-1) {
		t.Error("moved into a settled cell")
	}
	b.Grid[5][3] = 0
	if !b.Move(-1) {
		t.Error("open move refused")
	}
}

func fillRow(b *Board, y int) {
	for x := 0; x < Cols; x++ {
		b.Grid[y][x] = 1
	}
}

func TestClearSingleLinePaysBaseScore(t *testing.T) {
	b := NewBoard(1)
	fillRow(b, Rows-1)

	if n := b.clearLines(); n != 1 {
		t.Fatalf("cleared = %d, want 1", n)
	}
	if b.Score != 100 {
		t.Errorf("score = %d, want 100", b.Score)
	}
	if b.Lines != 1 || b.Level != 1 {
		t.Errorf("lines/level = %d/%d, want 1/1", b.Lines, b.Level)
	}
}

func TestClearTableScoresByCount(t *testing.T) {
	cases := []struct {
		rows  int
		score int
	}{
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
	}
	for _, tc := range cases {
		b := NewBoard(1)
		for i := 0; i < tc.rows; i++ {
			fillRow(b, Rows-1-i)
		}
		if n := b.clearLines(); n != tc.rows {
			t.Fatalf("%d rows: cleared = %d", tc.rows, n)
		}
		if b.Score != tc.score {
			t.Errorf("%d rows: score = %d, want %d", tc.rows, b.Score, tc.score)
		}
	}
}

func TestClearCollapsesRowsAbove(t *testing.T) {
	b := NewBoard(1)
	fillRow(b, Rows-1)
	fillRow(b, Rows-2)
	b.Grid[Rows-3][2] = 3

	if n := b.clearLines(); n != 2 {
		t.Fatalf("cleared = %d, want 2", n)
	}
	if b.Grid[Rows-1][2] != 3 {
		t.Error("marker cell did not fall to the floor")
	}
	if b.Grid[Rows-3][2] != 0 {
		t.Error("marker cell left a copy behind")
	}
}

func TestClearRaisesLevelEveryTenLines(t *testing.T) {
	b := NewBoard(1)
	b.Lines = 9

	fillRow(b, Rows-1)
	b.clearLines()
	if b.Level != 2 {
		t.Fatalf("level = %d after 10 lines, want 2", b.Level)
	}
	if b.Score != 100 {
		t.Errorf("score = %d, want 100 (paid at the old level)", b.Score)
	}

	fillRow(b, Rows-1)
	b.clearLines()
	if b.Score != 100+200 {
		t.Errorf("score = %d, want 300 (level 2 doubles the pay)", b.Score)
	}
}

func TestBlockedSpawnEndsTheGame(t *testing.T) {
	b := NewBoard(1)
	for y := 0; y < 2; y++ {
		fillRow(b, y)
	}

	b.Next = KindO
	b.spawn()
	if !b.Over {
		t.Fatal("spawn into a full top did not end the game")
	}
	if b.Step() != 0 || b.Move(1) || b.Rotate() {
		t.Error("board still accepts moves after game over")
	}
}

func TestHardDropLocksAtTheFloor(t *testing.T) {
	b := NewBoard(1)
	b.Cur = Piece{Kind: KindO, X: 4, Y: 0}

	b.HardDrop()

	for _, c := range [...]cell{{4, Rows - 2}, {5, Rows - 2}, {4, Rows - 1}, {5, Rows - 1}} {
		if b.Grid[c.Y][c.X] != int8(KindO)+1 {
			t.Errorf("cell %v not stamped after hard drop", c)
		}
	}
	if b.Over {
		t.Error("hard drop on an empty well ended the game")
	}
}

func TestGhostPredictsTheLandingRow(t *testing.T) {
	b := NewBoard(1)
	b.Cur = Piece{Kind: KindO, X: 4, Y: 0}

	if got := b.GhostY(); got != Rows-2 {
		t.Errorf("ghost Y = %d, want %d", got, Rows-2)
	}

	b.Grid[Rows-1][4] = 1
	if got := b.GhostY(); got != Rows-3 {
		t.Errorf("ghost Y over a stack = %d, want %d", got, Rows-3)
	}
}

func TestBagDealsEachKindOnceBeforeRepeating(t *testing.T) {
	b := NewBoard(7)

	seen := map[Kind]int{}
	seen[b.Cur.Kind]++
	seen[b.Next]++
	for i := 0; i < int(KindCount)-2; i++ {
		seen[b.draw()]++
	}

	if len(seen) != int(KindCount) {
		t.Fatalf("first bag dealt %d distinct kinds, want %d", len(seen), KindCount)
	}
	for k, n := range seen {
		if n != 1 {
			t.Errorf("kind %d dealt %d times in one bag", k, n)
		}
	}
}

func TestFallIntervalSpeedsUpAndFloors(t *testing.T) {
	b := NewBoard(1)

	if got := b.FallInterval(); got != 0.8 {
		t.Errorf("level 1 interval = %v, want 0.8", got)
	}
	b.Level = 2
	if got := b.FallInterval(); math.Abs(got-0.8*0.85) > 1e-9 {
		t.Errorf("level 2 interval = %v, want %v", got, 0.8*0.85)
	}
	b.Level = 50
	if got := b.FallInterval(); got != 0.08 {
		t.Errorf("deep level interval = %v, want the 0.08 floor", got)
	}
}

func TestGravityStepLocksOnTheFloor(t *testing.T) {
	b := NewBoard(1)
	b.Cur = Piece{Kind: KindO, X: 4, Y: Rows - 3}

	if n := b.Step(); n != 0 {
		t.Fatalf("falling step cleared %d lines", n)
	}
	if b.Cur.Y != Rows-2 {
		t.Fatalf("Y = %d after step, want %d", b.Cur.Y, Rows-2)
	}

	b.Step()
	if b.Grid[Rows-1][4] == 0 {
		t.Error("piece on the floor did not lock on the next step")
	}
}
