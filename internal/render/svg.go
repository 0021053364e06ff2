// Package render draws bitboards and check/pin masks as board diagrams.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/chessattacks/internal/board"
)

// Layout in SVG user units.
const (
	squareSize = 60
	margin     = 24
	boardSize  = 8*squareSize + 2*margin
)

// Colors
const (
	lightSquare   = "#f0d9b5"
	darkSquare    = "#b58863"
	highlightFill = "#6fa8dc"
	checkerStroke = "#cc0000"
	pinnedStroke  = "#e69138"
	focusStroke   = "#38761d"
	whitePiece    = "#fafafa"
	blackPiece    = "#202020"
	labelFill     = "#404040"
)

// Diagram describes one board picture. All layers are optional.
type Diagram struct {
	Title     string
	Pieces    map[board.Square]board.Piece
	Highlight board.Bitboard // attack set or check mask, tinted
	Checkers  board.Bitboard // ringed red
	Pinned    board.Bitboard // ringed orange
	Focus     board.Bitboard // ringed green
	Labels    bool           // file/rank coordinates and piece letters
}

// squareOrigin returns the top-left corner of sq, rank 8 at the top.
func squareOrigin(sq board.Square) (int, int) {
	return margin + sq.File()*squareSize, margin + (7-sq.Rank())*squareSize
}

// WriteSVG writes d as a standalone SVG document.
func WriteSVG(w io.Writer, d Diagram) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startview(boardSize, boardSize, 0, 0, boardSize, boardSize)
	if d.Title != "" {
		canvas.Title(d.Title)
	}

	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := squareOrigin(sq)
		fill := darkSquare
		if (sq.File()+sq.Rank())%2 == 1 {
			fill = lightSquare
		}
		canvas.Rect(x, y, squareSize, squareSize, fmt.Sprintf(`fill="%s"`, fill))
		if d.Highlight.IsSet(sq) {
			canvas.Rect(x, y, squareSize, squareSize, fmt.Sprintf(`fill="%s" fill-opacity="0.55"`, highlightFill))
		}
	}

	ring(canvas, d.Focus, focusStroke)
	ring(canvas, d.Pinned, pinnedStroke)
	ring(canvas, d.Checkers, checkerStroke)

	for sq := board.A1; sq <= board.H8; sq++ {
		if piece, ok := d.Pieces[sq]; ok && piece != board.NoPiece {
			drawPiece(canvas, sq, piece, d.Labels)
		}
	}

	if d.Labels {
		for i := 0; i < 8; i++ {
			canvas.Text(margin+i*squareSize+squareSize/2, boardSize-margin/3,
				string(rune('a'+i)), fmt.Sprintf(`fill="%s" font-size="14" text-anchor="middle"`, labelFill))
			canvas.Text(margin/2, margin+(7-i)*squareSize+squareSize/2+5,
				string(rune('1'+i)), fmt.Sprintf(`fill="%s" font-size="14" text-anchor="middle"`, labelFill))
		}
	}

	canvas.End()
	return ew.err
}

// ring outlines every square in bb.
func ring(canvas *svg.SVG, bb board.Bitboard, stroke string) {
	for bb != 0 {
		x, y := squareOrigin(bb.PopLSB())
		canvas.Rect(x+3, y+3, squareSize-6, squareSize-6,
			fmt.Sprintf(`fill="none" stroke="%s" stroke-width="5"`, stroke))
	}
}

// drawPiece draws a disc in the piece's color, sized by piece type.
func drawPiece(canvas *svg.SVG, sq board.Square, piece board.Piece, label bool) {
	x, y := squareOrigin(sq)
	cx, cy := x+squareSize/2, y+squareSize/2
	r := squareSize/5 + int(piece.Type())*2

	fill, stroke, text := whitePiece, blackPiece, blackPiece
	if piece.Color() == board.Black {
		fill, stroke, text = blackPiece, whitePiece, whitePiece
	}
	canvas.Circle(cx, cy, r, fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="2"`, fill, stroke))
	if label {
		canvas.Text(cx, cy+6, piece.String(),
			fmt.Sprintf(`fill="%s" font-size="18" font-weight="bold" text-anchor="middle"`, text))
	}
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
