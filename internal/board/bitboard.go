package board

import (
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (Little-Endian Rank-File Mapping).
type Bitboard uint64

// File masks
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = 0x0202020202020202
	FileC Bitboard = 0x0404040404040404
	FileD Bitboard = 0x0808080808080808
	FileE Bitboard = 0x1010101010101010
	FileF Bitboard = 0x2020202020202020
	FileG Bitboard = 0x4040404040404040
	FileH Bitboard = 0x8080808080808080
)

// Rank masks
const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = 0x000000000000FF00
	Rank3 Bitboard = 0x0000000000FF0000
	Rank4 Bitboard = 0x00000000FF000000
	Rank5 Bitboard = 0x000000FF00000000
	Rank6 Bitboard = 0x0000FF0000000000
	Rank7 Bitboard = 0x00FF000000000000
	Rank8 Bitboard = 0xFF00000000000000
)

// Special masks
const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	NotFileA Bitboard = ^FileA
	NotFileH Bitboard = ^FileH
)

// FileMask returns the file mask for a given file (0-7).
var FileMask = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// RankMask returns the rank mask for a given rank (0-7).
var RankMask = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	sq.mustBeValid()
	return 1 << sq
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | SquareBB(sq)
}

// Clear clears a bit at the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ SquareBB(sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// MoreThanOne returns true if at least two bits are set.
func (b Bitboard) MoreThanOne() bool {
	return b&(b-1) != 0
}

// LSB returns the least significant bit (lowest square index).
// Calling it on an empty bitboard is a precondition violation; NoSquare is
// returned unless assertions are enabled.
func (b Bitboard) LSB() Square {
	if b == 0 {
		if Debug {
			panic("board: LSB of empty bitboard")
		}
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Shift moves every set bit one step in direction d. Bits that would wrap
// around the a/h edge are dropped before shifting.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch {
	case d.east():
		b &= NotFileH
	case d.west():
		b &= NotFileA
	}
	if d > 0 {
		return b << uint(d)
	}
	return b >> uint(-d)
}

// Ray casts from every set bit in direction d until the board edge. A square
// in blockers ends the ray but is itself included. With blockers == Empty this
// is the unobstructed pseudo ray.
func (b Bitboard) Ray(d Direction, blockers Bitboard) Bitboard {
	var ray Bitboard
	for front := b.Shift(d); front != 0; front = (front &^ blockers).Shift(d) {
		ray |= front
	}
	return ray
}

// NextSubset returns the subset of mask following cur in carry-rippler
// order. Starting from Empty, the sequence visits every subset of mask once
// and returns to Empty after the last one.
func NextSubset(mask, cur Bitboard) Bitboard {
	return (cur - mask) & mask
}

// North shifts the bitboard one rank up (toward rank 8).
func (b Bitboard) North() Bitboard { return b.Shift(North) }

// South shifts the bitboard one rank down (toward rank 1).
func (b Bitboard) South() Bitboard { return b.Shift(South) }

// East shifts the bitboard one file right (toward file h).
func (b Bitboard) East() Bitboard { return b.Shift(East) }

// West shifts the bitboard one file left (toward file a).
func (b Bitboard) West() Bitboard { return b.Shift(West) }

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}
