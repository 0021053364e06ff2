package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/hailam/chessattacks/internal/board"
)

func sampleDiagram() Diagram {
	return Diagram{
		Title: "rook on d4",
		Pieces: map[board.Square]board.Piece{
			board.D4: board.WhiteRook,
			board.D7: board.BlackPawn,
			board.E1: board.WhiteKing,
		},
		Highlight: board.FileD | board.Rank4,
		Checkers:  board.SquareBB(board.D7),
		Focus:     board.SquareBB(board.D4),
		Labels:    true,
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, sampleDiagram()); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("Output is not an SVG document")
	}
	if !strings.Contains(out, "viewBox") {
		t.Error("Expected a viewBox so the diagram can be rasterized")
	}
	if !strings.Contains(out, "rook on d4") {
		t.Error("Expected title in output")
	}

	// 15 highlighted squares on the d-file and 4th rank
	if n := strings.Count(out, highlightFill); n != 15 {
		t.Errorf("Expected 15 highlighted squares, got %d", n)
	}
	if n := strings.Count(out, checkerStroke); n != 1 {
		t.Errorf("Expected 1 checker ring, got %d", n)
	}
	if n := strings.Count(out, "<circle"); n != 3 {
		t.Errorf("Expected 3 pieces, got %d", n)
	}
}

func TestWriteSVGNoLabels(t *testing.T) {
	d := sampleDiagram()
	d.Labels = false

	var buf bytes.Buffer
	if err := WriteSVG(&buf, d); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}
	if strings.Contains(buf.String(), "<text") {
		t.Error("Expected no text elements without labels")
	}
}

func TestWritePNG(t *testing.T) {
	const size = 96

	var buf bytes.Buffer
	if err := WritePNG(&buf, sampleDiagram(), size); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		t.Errorf("Expected %dx%d image, got %dx%d", size, size, b.Dx(), b.Dy())
	}

	// The board covers the middle of the image, so it must not be transparent.
	if _, _, _, a := img.At(size/2, size/2).RGBA(); a == 0 {
		t.Error("Expected an opaque pixel in the board center")
	}
}

func TestRasterizeInvalidSize(t *testing.T) {
	if _, err := Rasterize([]byte("<svg/>"), 0); err == nil {
		t.Error("Expected error for zero size")
	}
}
