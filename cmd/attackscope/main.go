// attackscope prints the attack sets and check/pin masks of a position and
// optionally draws them as an SVG or PNG diagram.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hailam/chessattacks/internal/attack"
	"github.com/hailam/chessattacks/internal/board"
	"github.com/hailam/chessattacks/internal/position"
	"github.com/hailam/chessattacks/internal/render"
	"github.com/hailam/chessattacks/internal/storage"
)

var (
	fenFlag    = flag.String("fen", position.StartFEN, "position to analyse")
	squareFlag = flag.String("square", "", "square whose attacks to show (e.g. d4)")
	pieceFlag  = flag.String("piece", "", "piece type to place on -square instead of the one there (p n b r q k)")
	svgFlag    = flag.String("svg", "", "write an SVG diagram to file")
	pngFlag    = flag.String("png", "", "write a PNG diagram to file")
	sizeFlag   = flag.Int("size", 480, "PNG edge length in pixels")
	dbFlag     = flag.String("db", "", "magic store directory (\"default\" for the platform data dir)")
	seedFlag   = flag.Int64("seed", 0, "magic search seed (0 uses the built-in magics)")
)

func main() {
	flag.Parse()

	ms, err := loadMagics(*dbFlag, *seedFlag)
	if err != nil {
		log.Fatalf("could not load magics: %v", err)
	}
	tables := attack.Build(ms)

	pos, err := position.ParseFEN(tables, *fenFlag)
	if err != nil {
		log.Fatalf("bad FEN: %v", err)
	}
	if err := pos.Validate(); err != nil {
		log.Printf("Warning: %v", err)
	}
	fmt.Print(pos)

	d := render.Diagram{
		Title:    pos.ToFEN(),
		Pieces:   pieces(pos),
		Checkers: pos.Checkers,
		Pinned:   pos.Pinned,
		Labels:   true,
	}
	if pos.InCheck() {
		d.Highlight = pos.CheckMask
		fmt.Printf("Check mask:\n%s\n", pos.CheckMask)
	}

	if *squareFlag != "" {
		sq, err := board.ParseSquare(*squareFlag)
		if err != nil {
			log.Fatal(err)
		}
		pt, c := board.NoPieceType, pos.SideToMove
		if piece := pos.PieceAt(sq); piece != board.NoPiece {
			pt, c = piece.Type(), piece.Color()
		}
		if *pieceFlag != "" {
			pt = board.ParsePieceType(*pieceFlag)
		}
		if pt == board.NoPieceType {
			log.Fatalf("no piece on %s; use -piece to pick one", sq)
		}

		attacks := tables.Attacks(pt, c, sq, pos.AllOccupied)
		fmt.Printf("%s %s on %s attacks %d squares:\n%s\n", c, pt, sq, attacks.PopCount(), attacks)
		if pt.IsSlider() {
			printMagic(tables, pt, sq)
		}
		d.Highlight = attacks
		d.Focus = board.SquareBB(sq)
	}

	if *svgFlag != "" {
		if err := writeFile(*svgFlag, func(w io.Writer) error { return render.WriteSVG(w, d) }); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s", *svgFlag)
	}
	if *pngFlag != "" {
		if err := writeFile(*pngFlag, func(w io.Writer) error { return render.WritePNG(w, d, *sizeFlag) }); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s", *pngFlag)
	}
}

// loadMagics picks the multipliers: the built-in set for seed 0, otherwise
// the store when dir is given or a fresh search.
func loadMagics(dir string, seed int64) (*attack.MagicSet, error) {
	if seed == 0 {
		return attack.DefaultMagics(), nil
	}
	if dir == "" {
		return attack.SearchMagics(seed)
	}

	var (
		store *storage.Storage
		err   error
	)
	if dir == "default" {
		store, err = storage.OpenDefault()
	} else {
		store, err = storage.Open(dir)
	}
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.LoadOrSearch(seed)
}

func pieces(pos *position.Position) map[board.Square]board.Piece {
	m := make(map[board.Square]board.Piece)
	for bb := pos.AllOccupied; bb != 0; {
		sq := bb.PopLSB()
		m[sq] = pos.PieceAt(sq)
	}
	return m
}

func printMagic(t *attack.Tables, pt board.PieceType, sq board.Square) {
	if pt == board.Queen {
		printMagic(t, board.Bishop, sq)
		printMagic(t, board.Rook, sq)
		return
	}
	m := t.Magic(pt, sq)
	fmt.Printf("%s magic %#016x shift %d offset %d, relevant mask (%d bits):\n%s\n",
		pt, m.Magic, m.Shift, m.Offset, m.Mask.PopCount(), m.Mask)
}

// writeFile creates path and fills it with write. The close error is
// reported so a failed flush is not lost.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close %s: %w", path, err)
	}
	return nil
}
