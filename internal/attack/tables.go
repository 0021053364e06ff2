// Package attack builds the magic bitboard attack tables and answers attack,
// line and check/pin queries from them.
//
// A *Tables value is immutable once Build returns and may be shared by any
// number of goroutines without locking.
package attack

import (
	"github.com/hailam/chessattacks/internal/board"
)

// sliderTable is the magic-hashed attack table of one slider kind.
type sliderTable struct {
	magics [64]Magic
	pseudo [64]board.Bitboard // attacks on an empty board
	table  []board.Bitboard   // 64 windows of 1<<bits entries
}

func (s *sliderTable) attacks(sq board.Square, occupied board.Bitboard) board.Bitboard {
	return s.table[s.magics[sq].index(occupied)]
}

// Tables holds every precomputed attack table.
type Tables struct {
	magics MagicSet

	bishop sliderTable
	rook   sliderTable

	pawn   [2][64]board.Bitboard // [Color][Square]
	knight [64]board.Bitboard
	king   [64]board.Bitboard

	between [64][64]board.Bitboard // Squares strictly between two squares
	line    [64][64]board.Bitboard // Full line through two squares (including endpoints)
}

// Magics returns the multipliers the tables were built from.
func (t *Tables) Magics() MagicSet {
	return t.magics
}

// Magic returns the magic entry of a bishop or rook on sq.
func (t *Tables) Magic(pt board.PieceType, sq board.Square) Magic {
	if pt == board.Bishop {
		return t.bishop.magics[sq]
	}
	return t.rook.magics[sq]
}

// KnightAttacks returns the knight attack bitboard for a square.
func (t *Tables) KnightAttacks(sq board.Square) board.Bitboard {
	return t.knight[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func (t *Tables) KingAttacks(sq board.Square) board.Bitboard {
	return t.king[sq]
}

// PawnAttacks returns the squares a pawn of color c on sq captures on.
func (t *Tables) PawnAttacks(c board.Color, sq board.Square) board.Bitboard {
	return t.pawn[c][sq]
}

// BishopAttacks returns the bishop attack bitboard for a square with given occupancy.
func (t *Tables) BishopAttacks(sq board.Square, occupied board.Bitboard) board.Bitboard {
	return t.bishop.attacks(sq, occupied)
}

// RookAttacks returns the rook attack bitboard for a square with given occupancy.
func (t *Tables) RookAttacks(sq board.Square, occupied board.Bitboard) board.Bitboard {
	return t.rook.attacks(sq, occupied)
}

// QueenAttacks returns the queen attack bitboard for a square with given occupancy.
func (t *Tables) QueenAttacks(sq board.Square, occupied board.Bitboard) board.Bitboard {
	return t.bishop.attacks(sq, occupied) | t.rook.attacks(sq, occupied)
}

// Attacks returns the attack set of a piece of type pt and color c on sq.
// Occupancy only matters for sliders; c only matters for pawns.
func (t *Tables) Attacks(pt board.PieceType, c board.Color, sq board.Square, occupied board.Bitboard) board.Bitboard {
	switch pt {
	case board.Pawn:
		return t.pawn[c][sq]
	case board.Knight:
		return t.knight[sq]
	case board.Bishop:
		return t.bishop.attacks(sq, occupied)
	case board.Rook:
		return t.rook.attacks(sq, occupied)
	case board.Queen:
		return t.QueenAttacks(sq, occupied)
	case board.King:
		return t.king[sq]
	}
	return board.Empty
}

// PseudoAttacks returns the attack set on an empty board.
func (t *Tables) PseudoAttacks(pt board.PieceType, c board.Color, sq board.Square) board.Bitboard {
	switch pt {
	case board.Bishop:
		return t.bishop.pseudo[sq]
	case board.Rook:
		return t.rook.pseudo[sq]
	case board.Queen:
		return t.bishop.pseudo[sq] | t.rook.pseudo[sq]
	}
	return t.Attacks(pt, c, sq, board.Empty)
}

// RelevantMask returns the relevant occupancy mask of a bishop or rook on sq.
func (t *Tables) RelevantMask(pt board.PieceType, sq board.Square) board.Bitboard {
	switch pt {
	case board.Bishop:
		return t.bishop.magics[sq].Mask
	case board.Rook:
		return t.rook.magics[sq].Mask
	}
	return board.Empty
}

// Between returns the bitboard of squares strictly between two squares.
// Returns empty if squares are not aligned (not on same rank, file, or diagonal).
func (t *Tables) Between(sq1, sq2 board.Square) board.Bitboard {
	return t.between[sq1][sq2]
}

// Line returns the bitboard of the full line through two squares.
// Returns empty if squares are not aligned.
func (t *Tables) Line(sq1, sq2 board.Square) board.Bitboard {
	return t.line[sq1][sq2]
}

// Aligned returns true if three squares are on the same line.
func (t *Tables) Aligned(sq1, sq2, sq3 board.Square) bool {
	return t.line[sq1][sq2].IsSet(sq3)
}

// AttackersTo returns the pieces of both colors attacking sq, with sliders
// blocked by occupied.
func (t *Tables) AttackersTo(sq board.Square, occupied board.Bitboard, pieces *[2][6]board.Bitboard) board.Bitboard {
	w, b := &pieces[board.White], &pieces[board.Black]
	return (t.pawn[board.Black][sq] & w[board.Pawn]) |
		(t.pawn[board.White][sq] & b[board.Pawn]) |
		(t.knight[sq] & (w[board.Knight] | b[board.Knight])) |
		(t.king[sq] & (w[board.King] | b[board.King])) |
		(t.BishopAttacks(sq, occupied) & (w[board.Bishop] | b[board.Bishop] | w[board.Queen] | b[board.Queen])) |
		(t.RookAttacks(sq, occupied) & (w[board.Rook] | b[board.Rook] | w[board.Queen] | b[board.Queen]))
}
