package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/chessattacks/internal/attack"
	"github.com/hailam/chessattacks/internal/board"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string and returns a Position with fresh masks.
// Castling accepts KQkq as well as rook files (Shredder-FEN, "HAha").
func ParseFEN(t *attack.Tables, fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	pos := New(t)

	// Parse piece placement (field 0)
	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}
	for c := board.White; c <= board.Black; c++ {
		if n := pos.Pieces[c][board.King].PopCount(); n != 1 {
			return nil, fmt.Errorf("invalid FEN: %s has %d kings", c, n)
		}
	}

	// Parse side to move (field 1)
	switch parts[1] {
	case "w":
		pos.SideToMove = board.White
	case "b":
		pos.SideToMove = board.Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	// Parse castling rights (field 2)
	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	// Parse en passant square (field 3)
	if parts[3] != "-" {
		sq, err := board.ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		pos.EnPassant = sq
	}

	// Parse half-move clock (field 4, optional)
	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		pos.HalfMoveClock = hmc
	}

	// Parse full-move number (field 5, optional)
	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		pos.FullMoveNumber = fmn
	}

	pos.UpdateMasks()
	return pos, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := board.PieceFromChar(byte(c))
			if piece == board.NoPiece {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			if err := pos.Put(piece, board.NewSquare(file, rank)); err != nil {
				return err
			}
			file++
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
// K/Q mean the h-file/a-file rook; a file letter names the rook directly and
// its side follows from where it stands relative to the king.
func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		return nil
	}

	for _, ch := range castling {
		c := board.White
		if ch >= 'a' && ch <= 'z' {
			c = board.Black
			ch -= 'a' - 'A'
		}

		var file int
		switch {
		case ch == 'K':
			file = 7
		case ch == 'Q':
			file = 0
		case ch >= 'A' && ch <= 'H':
			file = int(ch - 'A')
		default:
			return fmt.Errorf("invalid castling character: %c", ch)
		}

		backRank := 0
		if c == board.Black {
			backRank = 7
		}
		side := KingSide
		if file < pos.KingSquare[c].File() {
			side = QueenSide
		}
		pos.CastleRooks[c][side] = board.NewSquare(file, backRank)
	}

	return nil
}

// castlingString renders castling rights, using KQkq for a- and h-file rooks
// and file letters otherwise.
func (p *Position) castlingString() string {
	var sb strings.Builder
	for c := board.White; c <= board.Black; c++ {
		for _, side := range []CastleSide{KingSide, QueenSide} {
			sq := p.CastleRooks[c][side]
			if sq == board.NoSquare {
				continue
			}
			var ch byte
			switch {
			case side == KingSide && sq.File() == 7:
				ch = 'K'
			case side == QueenSide && sq.File() == 0:
				ch = 'Q'
			default:
				ch = byte('A' + sq.File())
			}
			if c == board.Black {
				ch += 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// ToFEN returns the FEN representation of the position.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	// Piece placement
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(board.NewSquare(file, rank))
			if piece == board.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingString())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}
