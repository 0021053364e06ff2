package attack

import (
	"github.com/hailam/chessattacks/internal/board"
)

// Index widths of the slider tables. They are the largest relevant-mask
// popcounts over all squares, so every square fits; squares with smaller
// masks leave part of their window unused.
const (
	BishopBits = 9
	RookBits   = 12
)

// Magic holds the magic bitboard data for a single square.
type Magic struct {
	Mask   board.Bitboard // Relevant occupancy mask (excludes ray ends)
	Magic  uint64         // Magic multiplier
	Shift  uint8          // Bits to shift right
	Offset uint32         // Start of the square's window in the attack table
}

// index maps an occupancy to the table slot holding its attack set.
func (m *Magic) index(occupied board.Bitboard) uint32 {
	return m.Offset + uint32((uint64(occupied&m.Mask)*m.Magic)>>m.Shift)
}

// MagicSet is one multiplier per square for each slider kind.
type MagicSet struct {
	Seed   int64      `json:"seed"`
	Bishop [64]uint64 `json:"bishop"`
	Rook   [64]uint64 `json:"rook"`
}

// of returns the multipliers for the given slider kind.
func (ms *MagicSet) of(pt board.PieceType) *[64]uint64 {
	if pt == board.Bishop {
		return &ms.Bishop
	}
	return &ms.Rook
}

// sliderDirections returns the ray directions of a bishop or rook.
func sliderDirections(pt board.PieceType) [4]board.Direction {
	if pt == board.Bishop {
		return board.Diagonal
	}
	return board.Orthogonal
}

// sliderBits returns the table index width of a bishop or rook.
func sliderBits(pt board.PieceType) uint {
	if pt == board.Bishop {
		return BishopBits
	}
	return RookBits
}

// RelevantMask returns the squares whose occupancy can change the attack set
// of a bishop or rook on sq. The last square of each ray is left out since
// nothing lies behind it.
func RelevantMask(pt board.PieceType, sq board.Square) board.Bitboard {
	from := board.SquareBB(sq)
	var mask board.Bitboard
	for _, d := range sliderDirections(pt) {
		ray := from.Ray(d, board.Empty)
		mask |= ray & ray.Shift(d.Opposite())
	}
	return mask
}

// SlidingAttacks computes bishop or rook attacks by ray casting. It is the
// reference the magic tables are filled from.
func SlidingAttacks(pt board.PieceType, sq board.Square, occupied board.Bitboard) board.Bitboard {
	from := board.SquareBB(sq)
	var attacks board.Bitboard
	for _, d := range sliderDirections(pt) {
		attacks |= from.Ray(d, occupied)
	}
	return attacks
}
