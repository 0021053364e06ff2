package board

import (
	"testing"
)

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		sq         Square
		file, rank int
		name       string
	}{
		{A1, 0, 0, "a1"},
		{H1, 7, 0, "h1"},
		{E4, 4, 3, "e4"},
		{A8, 0, 7, "a8"},
		{H8, 7, 7, "h8"},
	}

	for _, tt := range tests {
		if tt.sq.File() != tt.file || tt.sq.Rank() != tt.rank {
			t.Errorf("%s: expected file %d rank %d, got %d %d", tt.name, tt.file, tt.rank, tt.sq.File(), tt.sq.Rank())
		}
		if tt.sq.String() != tt.name {
			t.Errorf("Expected %s, got %s", tt.name, tt.sq)
		}
		if NewSquare(tt.file, tt.rank) != tt.sq {
			t.Errorf("NewSquare(%d, %d) != %s", tt.file, tt.rank, tt.name)
		}
		if sq, err := ParseSquare(tt.name); err != nil || sq != tt.sq {
			t.Errorf("ParseSquare(%q) = %v, %v", tt.name, sq, err)
		}
	}
}

func TestSquareInvalid(t *testing.T) {
	if NewSquare(8, 0) != NoSquare || NewSquare(0, -1) != NoSquare {
		t.Error("Expected NoSquare for out-of-range coordinates")
	}
	for _, s := range []string{"", "e", "i1", "a9", "e44"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("Expected error for %q", s)
		}
	}
	if NoSquare.IsValid() || !H8.IsValid() {
		t.Error("IsValid wrong")
	}
	if NoSquare.String() != "-" {
		t.Errorf("Expected - for NoSquare, got %s", NoSquare)
	}
}

func TestSquareOrientation(t *testing.T) {
	if E2.Flip() != E7 || A1.Flip() != A8 {
		t.Error("Flip wrong")
	}
	if A1.Mirror() != H1 || D5.Mirror() != E5 {
		t.Error("Mirror wrong")
	}
	if E2.Relative(White) != E2 || E2.Relative(Black) != E7 {
		t.Error("Relative wrong")
	}
	if E7.RelativeRank(Black) != 1 || E7.RelativeRank(White) != 6 {
		t.Error("RelativeRank wrong")
	}
	if E4.Add(North) != E5 || E4.Add(SouthWest) != D3 {
		t.Error("Add wrong")
	}
}

func TestDirections(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d || d.Opposite() == d {
			t.Errorf("Opposite of %s wrong", d)
		}
		// Shifting there and back keeps an interior square.
		if got := SquareBB(D4).Shift(d).Shift(d.Opposite()); got != SquareBB(D4) {
			t.Errorf("%s then %s lost d4", d, d.Opposite())
		}
	}
	if Forward(White) != North || Forward(Black) != South {
		t.Error("Forward wrong")
	}
}

func TestPieceEncoding(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p := NewPiece(pt, c)
			if p.Type() != pt || p.Color() != c {
				t.Errorf("NewPiece(%s, %s) decodes to %s %s", pt, c, p.Type(), p.Color())
			}
			if PieceFromChar(p.String()[0]) != p {
				t.Errorf("Character round trip failed for %s", p)
			}
		}
	}
	if NewPiece(NoPieceType, White) != NoPiece || PieceFromChar('x') != NoPiece {
		t.Error("Expected NoPiece")
	}
	if ParsePieceType("N") != Knight || ParsePieceType("queen") != Queen || ParsePieceType("z") != NoPieceType {
		t.Error("ParsePieceType wrong")
	}
	if !Queen.IsSlider() || Knight.IsSlider() {
		t.Error("IsSlider wrong")
	}
}
