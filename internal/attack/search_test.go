package attack

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/hailam/chessattacks/internal/board"
)

func TestDefaultMagicsValid(t *testing.T) {
	ms := DefaultMagics()
	if err := ms.Validate(); err != nil {
		t.Fatalf("Shipped magics failed validation: %v", err)
	}

	// Callers get their own copy.
	ms.Rook[board.A1] = 0
	if DefaultMagics().Rook[board.A1] == 0 {
		t.Error("Modifying a returned set changed the shipped magics")
	}
}

func TestNewUsesShippedMagics(t *testing.T) {
	tt := New()
	if tt.Magics() != *DefaultMagics() {
		t.Error("New did not build from the shipped magics")
	}
	if got := tt.Magic(board.Rook, board.H8).Magic; got != 0x2084002112428402 {
		t.Errorf("Expected rook h8 multiplier 0x2084002112428402, got %#016x", got)
	}
}

func TestSearchDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping magic search in short mode")
	}

	first, err := SearchMagics(DefaultSeed)
	if err != nil {
		t.Fatalf("SearchMagics failed: %v", err)
	}
	second, err := SearchMagics(DefaultSeed)
	if err != nil {
		t.Fatalf("SearchMagics failed: %v", err)
	}
	if *first != *second {
		t.Error("Same seed produced a different magic set")
	}
	if first.Seed != DefaultSeed {
		t.Errorf("Expected seed %d recorded, got %d", DefaultSeed, first.Seed)
	}
	if err := first.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestSearchOtherSeed(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping magic search in short mode")
	}

	ms, err := SearchMagics(12345)
	if err != nil {
		t.Fatalf("SearchMagics failed: %v", err)
	}
	if err := ms.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ms.Rook == DefaultMagics().Rook {
		t.Error("Different seeds produced identical rook magics")
	}

	// Any valid set gives the same answers.
	tt, ref := Build(ms), testTables()
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 10000; i++ {
		sq := board.Square(rng.Intn(64))
		occ := board.Bitboard(rng.Uint64() & rng.Uint64())
		if tt.QueenAttacks(sq, occ) != ref.QueenAttacks(sq, occ) {
			t.Fatalf("queen on %s: tables from different seeds disagree", sq)
		}
	}
}

func TestValidateDetectsCollision(t *testing.T) {
	corrupt := *DefaultMagics()
	corrupt.Rook[board.E4] = 0

	err := corrupt.Validate()
	if !errors.Is(err, ErrMagicCollision) {
		t.Fatalf("Expected ErrMagicCollision, got %v", err)
	}
	t.Log(err)
}

func TestBuildTrustsMagics(t *testing.T) {
	corrupt := *DefaultMagics()
	corrupt.Rook[board.E4] = 0

	// Every occupancy lands in one slot; the full mask is enumerated last
	// and overwrites the rest.
	tt := Build(&corrupt)
	want := SlidingAttacks(board.Rook, board.E4, RelevantMask(board.Rook, board.E4))
	if got := tt.RookAttacks(board.E4, board.Empty); got != want {
		t.Errorf("expected the last written entry\n%sgot\n%s", want, got)
	}
}

func TestMagicLayout(t *testing.T) {
	tt := testTables()
	for sq := board.A1; sq <= board.H8; sq++ {
		b := tt.Magic(board.Bishop, sq)
		if b.Offset != uint32(sq)<<BishopBits || b.Shift != 64-BishopBits {
			t.Errorf("bishop on %s: offset %d shift %d", sq, b.Offset, b.Shift)
		}
		r := tt.Magic(board.Rook, sq)
		if r.Offset != uint32(sq)<<RookBits || r.Shift != 64-RookBits {
			t.Errorf("rook on %s: offset %d shift %d", sq, r.Offset, r.Shift)
		}
		if r.Magic != tt.Magics().Rook[sq] || b.Magic != tt.Magics().Bishop[sq] {
			t.Errorf("%s: entry does not carry the set's multiplier", sq)
		}
	}
}

func TestEnumerateCount(t *testing.T) {
	set := enumerate(board.Rook, board.A1)
	if len(set.occupancy) != 1<<12 || len(set.reference) != 1<<12 {
		t.Errorf("Expected 4096 rook subsets on a1, got %d", len(set.occupancy))
	}
	set = enumerate(board.Bishop, board.D4)
	if len(set.occupancy) != 1<<9 {
		t.Errorf("Expected 512 bishop subsets on d4, got %d", len(set.occupancy))
	}
}

func BenchmarkSearchMagics(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := SearchMagics(int64(i)); err != nil {
			b.Fatal(err)
		}
	}
}
