// Package board implements the bit-set algebra and square geometry the attack
// tables are built from.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
// NoSquare is the "none" value; File, Rank and the orientation helpers must
// not be called on it.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// NumSquares is the number of real squares on the board.
const NumSquares = 64

// NewSquare creates a square from file and rank (0-indexed).
// Out-of-range coordinates yield NoSquare.
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	sq := NewSquare(int(s[0])-'a', int(s[1])-'1')
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return sq, nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

func (sq Square) mustBeValid() {
	if Debug && !sq.IsValid() {
		panic(fmt.Sprintf("board: operation on invalid square %d", uint8(sq)))
	}
}

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	sq.mustBeValid()
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	sq.mustBeValid()
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// Flip returns the square mirrored vertically (a1 <-> a8).
func (sq Square) Flip() Square {
	sq.mustBeValid()
	return sq ^ 56
}

// Mirror returns the square mirrored horizontally (a1 <-> h1).
func (sq Square) Mirror() Square {
	sq.mustBeValid()
	return sq ^ 7
}

// Relative orients the square to c's point of view: unchanged for White,
// flipped vertically for Black.
func (sq Square) Relative(c Color) Square {
	sq.mustBeValid()
	return sq ^ Square(56*int(c&1))
}

// RelativeRank returns the rank from a given color's perspective.
func (sq Square) RelativeRank(c Color) int {
	return sq.Relative(c).Rank()
}

// Add steps the square by a raw index delta. The caller guarantees the result
// stays on the board; Shift is the edge-safe alternative.
func (sq Square) Add(d Direction) Square {
	sq.mustBeValid()
	to := int(sq) + int(d)
	if Debug && (to < 0 || to >= NumSquares) {
		panic(fmt.Sprintf("board: %s%+d leaves the board", sq, int(d)))
	}
	return Square(to)
}
