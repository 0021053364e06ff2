package board

import (
	"testing"
)

func TestShiftNeverWraps(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		for _, d := range Directions {
			got := SquareBB(sq).Shift(d)

			file, rank := sq.File(), sq.Rank()
			df, dr := 0, 0
			switch d {
			case North, NorthEast, NorthWest:
				dr = 1
			case South, SouthEast, SouthWest:
				dr = -1
			}
			switch d {
			case East, NorthEast, SouthEast:
				df = 1
			case West, NorthWest, SouthWest:
				df = -1
			}

			want := Empty
			if to := NewSquare(file+df, rank+dr); to != NoSquare {
				want = SquareBB(to)
			}
			if got != want {
				t.Errorf("%s shifted %s: expected\n%sgot\n%s", sq, d, want, got)
			}
		}
	}
}

func TestShiftEdges(t *testing.T) {
	tests := []struct {
		name string
		bb   Bitboard
		d    Direction
		want Bitboard
	}{
		{"h-file east", FileH, East, Empty},
		{"a-file west", FileA, West, Empty},
		{"rank 8 north", Rank8, North, Empty},
		{"rank 1 south", Rank1, South, Empty},
		{"a-file east", FileA, East, FileB},
		{"h-file northwest", FileH, NorthWest, FileG &^ Rank1},
		{"universe southeast", Universe, SouthEast, Universe &^ FileA &^ Rank8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bb.Shift(tt.d); got != tt.want {
				t.Errorf("expected\n%sgot\n%s", tt.want, got)
			}
		})
	}
}

func TestRay(t *testing.T) {
	tests := []struct {
		name     string
		from     Square
		d        Direction
		blockers Bitboard
		want     Bitboard
	}{
		{"open north from a1", A1, North, Empty, FileA &^ SquareBB(A1)},
		{"blocked east from a1", A1, East, SquareBB(D1) | SquareBB(F1), SquareBB(B1) | SquareBB(C1) | SquareBB(D1)},
		{"adjacent blocker", E4, NorthEast, SquareBB(F5), SquareBB(F5)},
		{"blocker behind is ignored", E4, West, SquareBB(F4), SquareBB(D4) | SquareBB(C4) | SquareBB(B4) | SquareBB(A4)},
		{"edge square", H4, East, Empty, Empty},
		{"long diagonal", A1, NorthEast, SquareBB(H8), SquareBB(B2) | SquareBB(C3) | SquareBB(D4) | SquareBB(E5) | SquareBB(F6) | SquareBB(G7) | SquareBB(H8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SquareBB(tt.from).Ray(tt.d, tt.blockers); got != tt.want {
				t.Errorf("expected\n%sgot\n%s", tt.want, got)
			}
		})
	}
}

func TestNextSubset(t *testing.T) {
	masks := []Bitboard{
		Empty,
		SquareBB(E4),
		FileD &^ Rank1 &^ Rank8,
		0x007E7E7E7E7E7E00 & (Rank2 | FileB),
	}

	for _, mask := range masks {
		seen := make(map[Bitboard]bool)
		subset := Empty
		for {
			if subset&^mask != 0 {
				t.Fatalf("subset %#x escapes mask %#x", uint64(subset), uint64(mask))
			}
			if seen[subset] {
				t.Fatalf("subset %#x visited twice", uint64(subset))
			}
			seen[subset] = true
			subset = NextSubset(mask, subset)
			if subset == Empty {
				break
			}
		}

		if want := 1 << mask.PopCount(); len(seen) != want {
			t.Errorf("mask with %d bits: expected %d subsets, got %d", mask.PopCount(), want, len(seen))
		}
	}
}

func TestBitOps(t *testing.T) {
	bb := Empty.Set(C3).Set(F6).Set(A1)

	if bb.PopCount() != 3 {
		t.Errorf("Expected 3 bits, got %d", bb.PopCount())
	}
	if !bb.IsSet(F6) || bb.IsSet(F5) {
		t.Error("IsSet disagrees with Set")
	}
	if !bb.MoreThanOne() || SquareBB(E4).MoreThanOne() || Empty.MoreThanOne() {
		t.Error("MoreThanOne wrong")
	}
	if bb.LSB() != A1 {
		t.Errorf("Expected LSB a1, got %s", bb.LSB())
	}

	var order []Square
	for b := bb; b != 0; {
		order = append(order, b.PopLSB())
	}
	if len(order) != 3 || order[0] != A1 || order[1] != C3 || order[2] != F6 {
		t.Errorf("Expected pop order a1 c3 f6, got %v", order)
	}

	if got := bb.Clear(C3); got != SquareBB(A1)|SquareBB(F6) {
		t.Errorf("Clear failed:\n%s", got)
	}
	if sqs := bb.Squares(); len(sqs) != 3 || sqs[2] != F6 {
		t.Errorf("Squares returned %v", sqs)
	}
}

func TestLSBEmpty(t *testing.T) {
	if Debug {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic for LSB of empty bitboard")
			}
		}()
	}
	if sq := Empty.LSB(); !Debug && sq != NoSquare {
		t.Errorf("Expected NoSquare, got %d", sq)
	}
}

func BenchmarkRay(b *testing.B) {
	occ := Rank2 | Rank7
	for i := 0; i < b.N; i++ {
		_ = SquareBB(D4).Ray(North, occ)
	}
}
