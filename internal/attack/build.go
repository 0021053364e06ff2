package attack

import (
	"github.com/hailam/chessattacks/internal/board"
)

// New builds the attack tables from the shipped multipliers.
func New() *Tables {
	return Build(DefaultMagics())
}

// Build constructs every table from the supplied multipliers. The
// multipliers are trusted: a bad one makes two occupancies share a slot and
// the later one silently wins. Run (*MagicSet).Validate first when the set
// comes from an untrusted source.
func Build(ms *MagicSet) *Tables {
	t := &Tables{magics: *ms}

	t.bishop.init(board.Bishop, &ms.Bishop)
	t.rook.init(board.Rook, &ms.Rook)

	for sq := board.A1; sq <= board.H8; sq++ {
		initLeapers(t, sq)
	}

	// Line and Between read the slider tables, so they go last.
	for a := board.A1; a <= board.H8; a++ {
		for b := board.A1; b <= board.H8; b++ {
			initLine(t, a, b)
		}
	}

	return t
}

// init fills the slider's magic entries and shared attack table.
func (s *sliderTable) init(pt board.PieceType, magics *[64]uint64) {
	bits := sliderBits(pt)
	s.table = make([]board.Bitboard, board.NumSquares<<bits)

	for sq := board.A1; sq <= board.H8; sq++ {
		mask := RelevantMask(pt, sq)
		s.magics[sq] = Magic{
			Mask:   mask,
			Magic:  magics[sq],
			Shift:  uint8(64 - bits),
			Offset: uint32(sq) << bits,
		}
		s.pseudo[sq] = SlidingAttacks(pt, sq, board.Empty)

		m := &s.magics[sq]
		for subset := board.Empty; ; {
			s.table[m.index(subset)] = SlidingAttacks(pt, sq, subset)
			subset = board.NextSubset(mask, subset)
			if subset == board.Empty {
				break
			}
		}
	}
}

// initLeapers fills the pawn, knight and king tables for sq.
func initLeapers(t *Tables, sq board.Square) {
	bb := board.SquareBB(sq)

	t.pawn[board.White][sq] = bb.Shift(board.NorthEast) | bb.Shift(board.NorthWest)
	t.pawn[board.Black][sq] = bb.Shift(board.SouthEast) | bb.Shift(board.SouthWest)

	// One orthogonal step followed by a diagonal step away from it.
	north, south := bb.Shift(board.North), bb.Shift(board.South)
	east, west := bb.Shift(board.East), bb.Shift(board.West)
	t.knight[sq] = north.Shift(board.NorthEast) | north.Shift(board.NorthWest) |
		south.Shift(board.SouthEast) | south.Shift(board.SouthWest) |
		east.Shift(board.NorthEast) | east.Shift(board.SouthEast) |
		west.Shift(board.NorthWest) | west.Shift(board.SouthWest)

	var king board.Bitboard
	for _, d := range board.Directions {
		king |= bb.Shift(d)
	}
	t.king[sq] = king
}

// initLine fills Line and Between for the pair (a, b).
func initLine(t *Tables, a, b board.Square) {
	if a == b {
		return
	}
	ends := board.SquareBB(a) | board.SquareBB(b)

	var s *sliderTable
	switch {
	case t.rook.pseudo[a].IsSet(b):
		s = &t.rook
	case t.bishop.pseudo[a].IsSet(b):
		s = &t.bishop
	default:
		return
	}

	t.between[a][b] = s.attacks(a, ends) & s.attacks(b, ends)
	t.line[a][b] = s.pseudo[a]&s.pseudo[b] | ends
}
