package attack

import (
	"github.com/hailam/chessattacks/internal/board"
)

// Snapshot is the part of a position the check/pin analysis reads. It must
// describe the board after the latest mutation; nothing here detects
// staleness.
type Snapshot struct {
	Us        board.Color       // side to move
	King      board.Square      // side to move's king
	Own       board.Bitboard    // side to move's pieces, king included
	Opp       board.Bitboard    // opponent's pieces
	OppPieces [6]board.Bitboard // opponent's pieces by type
}

// CheckInfo is the result of Analyze.
type CheckInfo struct {
	// Checkers are the opponent pieces attacking the king.
	Checkers board.Bitboard
	// CheckMask holds the squares a non-king move must land on to resolve
	// the check. Universe when not in check.
	CheckMask board.Bitboard
	// Pinned are own pieces that would expose the king by leaving their line.
	Pinned board.Bitboard
}

// InCheck reports whether the king is attacked.
func (ci CheckInfo) InCheck() bool {
	return ci.Checkers != 0
}

// DoubleCheck reports whether two or more pieces give check, in which case
// only king moves can be legal.
func (ci CheckInfo) DoubleCheck() bool {
	return ci.Checkers.MoreThanOne()
}

// IsPinned reports whether the piece on sq is pinned.
func (ci CheckInfo) IsPinned(sq board.Square) bool {
	return ci.Pinned.IsSet(sq)
}

// Analyze computes checkers, the check mask and pinned pieces for s.Us.
func (t *Tables) Analyze(s Snapshot) CheckInfo {
	var ci CheckInfo

	// Pawn and knight checks touch the king, nothing lies between.
	ci.Checkers = t.pawn[s.Us][s.King]&s.OppPieces[board.Pawn] |
		t.knight[s.King]&s.OppPieces[board.Knight]
	ci.CheckMask = ci.Checkers

	// Slider rays are cast from the king with only the opponent's pieces as
	// blockers. Own pieces are left transparent so that counting them on
	// each ray separates checks (none), pins (one) and neither (two or more).
	bishops := s.OppPieces[board.Bishop] | s.OppPieces[board.Queen]
	rooks := s.OppPieces[board.Rook] | s.OppPieces[board.Queen]
	snipers := t.BishopAttacks(s.King, s.Opp)&bishops |
		t.RookAttacks(s.King, s.Opp)&rooks

	for snipers != 0 {
		sq := snipers.PopLSB()
		between := t.between[sq][s.King]
		blockers := between & s.Own

		switch {
		case blockers == 0:
			ci.Checkers |= board.SquareBB(sq)
			ci.CheckMask |= board.SquareBB(sq) | between
		case !blockers.MoreThanOne():
			ci.Pinned |= blockers
		}
	}

	if ci.Checkers == 0 {
		ci.CheckMask = board.Universe
	}
	return ci
}
