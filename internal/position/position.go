// Package position is a minimal board owner: it holds piece placement, reads
// and writes FEN, and keeps the check/pin masks the attack package derives.
package position

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hailam/chessattacks/internal/attack"
	"github.com/hailam/chessattacks/internal/board"
)

// CastleSide selects the king-side or queen-side rook.
type CastleSide uint8

const (
	KingSide CastleSide = iota
	QueenSide
)

var (
	ErrOccupied      = errors.New("position: square occupied")
	ErrNoPiece       = errors.New("position: no piece")
	ErrInvalidSquare = errors.New("position: invalid square")
)

// Position represents a chess position.
//
// Checkers, CheckMask and Pinned describe the side to move and are only
// valid after UpdateMasks. Put, Remove and Move leave them stale.
type Position struct {
	// Piece bitboards: [Color][PieceType]
	Pieces [2][6]board.Bitboard

	// Occupancy bitboards
	Occupied    [2]board.Bitboard
	AllOccupied board.Bitboard

	SideToMove     board.Color
	CastleRooks    [2][2]board.Square // [Color][CastleSide], NoSquare when the right is gone
	EnPassant      board.Square
	HalfMoveClock  int
	FullMoveNumber int

	KingSquare [2]board.Square

	Checkers  board.Bitboard
	CheckMask board.Bitboard
	Pinned    board.Bitboard

	tables *attack.Tables
}

// New returns an empty board with White to move.
func New(t *attack.Tables) *Position {
	p := &Position{tables: t}
	p.Clear()
	return p
}

// NewStart returns the standard starting position.
func NewStart(t *attack.Tables) *Position {
	p, err := ParseFEN(t, StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// Tables returns the attack tables the position analyses with.
func (p *Position) Tables() *attack.Tables {
	return p.tables
}

// Clear resets the position to an empty board.
func (p *Position) Clear() {
	*p = Position{
		tables:         p.tables,
		EnPassant:      board.NoSquare,
		FullMoveNumber: 1,
		KingSquare:     [2]board.Square{board.NoSquare, board.NoSquare},
		CheckMask:      board.Universe,
	}
	for c := range p.CastleRooks {
		p.CastleRooks[c] = [2]board.Square{board.NoSquare, board.NoSquare}
	}
}

// Copy creates a deep copy of the position. The tables are shared.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq board.Square) board.Piece {
	bb := board.SquareBB(sq)
	if p.AllOccupied&bb == 0 {
		return board.NoPiece
	}

	c := board.Black
	if p.Occupied[board.White]&bb != 0 {
		c = board.White
	}
	for pt := board.Pawn; pt <= board.King; pt++ {
		if p.Pieces[c][pt]&bb != 0 {
			return board.NewPiece(pt, c)
		}
	}
	return board.NoPiece
}

// Put places a piece on an empty square.
func (p *Position) Put(piece board.Piece, sq board.Square) error {
	if piece == board.NoPiece || !sq.IsValid() {
		return fmt.Errorf("position: cannot put %q on %s", piece, sq)
	}
	if p.AllOccupied.IsSet(sq) {
		return fmt.Errorf("%w: %s", ErrOccupied, sq)
	}

	c, pt := piece.Color(), piece.Type()
	bb := board.SquareBB(sq)
	p.Pieces[c][pt] |= bb
	p.Occupied[c] |= bb
	p.AllOccupied |= bb
	if pt == board.King {
		p.KingSquare[c] = sq
	}
	return nil
}

// Remove takes the piece off sq and returns it, or NoPiece if sq was empty.
func (p *Position) Remove(sq board.Square) board.Piece {
	piece := p.PieceAt(sq)
	if piece == board.NoPiece {
		return board.NoPiece
	}

	c, pt := piece.Color(), piece.Type()
	bb := board.SquareBB(sq)
	p.Pieces[c][pt] &^= bb
	p.Occupied[c] &^= bb
	p.AllOccupied &^= bb
	if pt == board.King {
		p.KingSquare[c] = board.NoSquare
		if kings := p.Pieces[c][board.King]; kings != 0 {
			p.KingSquare[c] = kings.LSB()
		}
	}
	return piece
}

// Move relocates the piece on from to to, capturing whatever stands there.
// It returns the captured piece. No legality is checked. On error the
// position is unchanged.
func (p *Position) Move(from, to board.Square) (board.Piece, error) {
	if !from.IsValid() || !to.IsValid() {
		return board.NoPiece, fmt.Errorf("%w: %s to %s", ErrInvalidSquare, from, to)
	}
	piece := p.PieceAt(from)
	if piece == board.NoPiece {
		return board.NoPiece, fmt.Errorf("%w on %s", ErrNoPiece, from)
	}
	if from == to {
		return board.NoPiece, nil
	}

	p.Remove(from)
	captured := p.Remove(to)
	if err := p.Put(piece, to); err != nil {
		// Unreachable with both squares checked; restore anyway.
		if captured != board.NoPiece {
			_ = p.Put(captured, to)
		}
		_ = p.Put(piece, from)
		return board.NoPiece, err
	}
	return captured, nil
}

// Snapshot extracts the analyzer input for the side to move.
func (p *Position) Snapshot() attack.Snapshot {
	us := p.SideToMove
	them := us.Other()
	return attack.Snapshot{
		Us:        us,
		King:      p.KingSquare[us],
		Own:       p.Occupied[us],
		Opp:       p.Occupied[them],
		OppPieces: p.Pieces[them],
	}
}

// UpdateMasks recomputes Checkers, CheckMask and Pinned. It must be called
// after every change to the placement or the side to move.
func (p *Position) UpdateMasks() {
	if p.Pieces[p.SideToMove][board.King] == 0 {
		p.Checkers, p.CheckMask, p.Pinned = board.Empty, board.Universe, board.Empty
		return
	}
	ci := p.tables.Analyze(p.Snapshot())
	p.Checkers, p.CheckMask, p.Pinned = ci.Checkers, ci.CheckMask, ci.Pinned
}

// CheckInfo returns the masks as last computed by UpdateMasks.
func (p *Position) CheckInfo() attack.CheckInfo {
	return attack.CheckInfo{Checkers: p.Checkers, CheckMask: p.CheckMask, Pinned: p.Pinned}
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return p.Checkers != 0
}

// AttackersByColor returns the pieces of color c attacking sq.
func (p *Position) AttackersByColor(sq board.Square, c board.Color) board.Bitboard {
	return p.tables.AttackersTo(sq, p.AllOccupied, &p.Pieces) & p.Occupied[c]
}

// IsSquareAttacked returns true if the square is attacked by the given color.
func (p *Position) IsSquareAttacked(sq board.Square, by board.Color) bool {
	return p.AttackersByColor(sq, by) != 0
}

// Validate checks if the position is valid.
func (p *Position) Validate() error {
	if p.Pieces[board.White][board.King].PopCount() != 1 {
		return fmt.Errorf("white must have exactly one king")
	}
	if p.Pieces[board.Black][board.King].PopCount() != 1 {
		return fmt.Errorf("black must have exactly one king")
	}
	if (p.Pieces[board.White][board.Pawn]|p.Pieces[board.Black][board.Pawn])&(board.Rank1|board.Rank8) != 0 {
		return fmt.Errorf("pawns cannot be on rank 1 or 8")
	}

	them := p.SideToMove.Other()
	if p.IsSquareAttacked(p.KingSquare[them], p.SideToMove) {
		return fmt.Errorf("%s king can be captured", them)
	}
	return nil
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(board.NewSquare(file, rank))
			if piece == board.NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.SideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.castlingString())
	fmt.Fprintf(&sb, "En passant: %s\n", p.EnPassant)
	fmt.Fprintf(&sb, "Checkers: %s\n", squareList(p.Checkers))
	fmt.Fprintf(&sb, "Pinned: %s\n", squareList(p.Pinned))
	return sb.String()
}

func squareList(bb board.Bitboard) string {
	if bb == 0 {
		return "-"
	}
	names := make([]string, 0, bb.PopCount())
	for _, sq := range bb.Squares() {
		names = append(names, sq.String())
	}
	return strings.Join(names, " ")
}
