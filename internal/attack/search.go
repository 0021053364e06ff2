package attack

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/hailam/chessattacks/internal/board"
)

// DefaultSeed is the seed cmd/magicgen and the store search with when none is given.
const DefaultSeed int64 = 0x5EED_B0A4D

// maxAttempts bounds the candidates tried for a single square.
const maxAttempts = 1 << 24

var (
	// ErrMagicNotFound is returned when no multiplier was found within maxAttempts.
	ErrMagicNotFound = errors.New("attack: magic search exhausted")
	// ErrMagicCollision is returned by Validate when two occupancies with
	// different attack sets share a slot.
	ErrMagicCollision = errors.New("attack: destructive magic collision")
)

// occupancySet is every subset of a square's relevant mask together with the
// attack set it produces.
type occupancySet struct {
	occupancy []board.Bitboard
	reference []board.Bitboard
}

// enumerate fills the set using the carry-rippler walk over mask.
func enumerate(pt board.PieceType, sq board.Square) occupancySet {
	mask := RelevantMask(pt, sq)
	n := 1 << mask.PopCount()
	set := occupancySet{
		occupancy: make([]board.Bitboard, 0, n),
		reference: make([]board.Bitboard, 0, n),
	}
	for subset := board.Empty; ; {
		set.occupancy = append(set.occupancy, subset)
		set.reference = append(set.reference, SlidingAttacks(pt, sq, subset))
		subset = board.NextSubset(mask, subset)
		if subset == board.Empty {
			break
		}
	}
	return set
}

// wizard searches multipliers for one slider kind. The epoch array avoids
// clearing the scratch table between candidates.
type wizard struct {
	pt    board.PieceType
	bits  uint
	rng   *rand.Rand
	used  []board.Bitboard
	epoch []int
	round int
}

func newWizard(pt board.PieceType, rng *rand.Rand) *wizard {
	n := 1 << sliderBits(pt)
	return &wizard{
		pt:    pt,
		bits:  sliderBits(pt),
		rng:   rng,
		used:  make([]board.Bitboard, n),
		epoch: make([]int, n),
	}
}

// randMagic returns a sparse random candidate.
func (w *wizard) randMagic() uint64 {
	return w.rng.Uint64() & w.rng.Uint64() & w.rng.Uint64()
}

// try reports whether magic hashes set without destructive collisions.
func (w *wizard) try(set occupancySet, magic uint64) bool {
	w.round++
	shift := 64 - w.bits
	for i, occ := range set.occupancy {
		idx := (uint64(occ) * magic) >> shift
		if w.epoch[idx] < w.round {
			w.epoch[idx] = w.round
			w.used[idx] = set.reference[i]
		} else if w.used[idx] != set.reference[i] {
			return false
		}
	}
	return true
}

func (w *wizard) search(sq board.Square) (uint64, error) {
	set := enumerate(w.pt, sq)
	mask := RelevantMask(w.pt, sq)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		magic := w.randMagic()
		// Candidates that spread too few mask bits into the top byte rarely work.
		if bits.OnesCount64((uint64(mask)*magic)>>56) < 6 {
			continue
		}
		if w.try(set, magic) {
			return magic, nil
		}
	}
	return 0, fmt.Errorf("%w: %s on %s", ErrMagicNotFound, w.pt, sq)
}

// SearchMagics finds a collision-free multiplier for every square and slider
// kind. The result depends only on seed.
func SearchMagics(seed int64) (*MagicSet, error) {
	rng := rand.New(rand.NewSource(seed))
	ms := &MagicSet{Seed: seed}
	for _, pt := range []board.PieceType{board.Bishop, board.Rook} {
		w := newWizard(pt, rng)
		magics := ms.of(pt)
		for sq := board.A1; sq <= board.H8; sq++ {
			magic, err := w.search(sq)
			if err != nil {
				return nil, err
			}
			magics[sq] = magic
		}
	}
	return ms, nil
}

// Validate exhaustively checks every square and occupancy subset for
// destructive collisions. Build never calls it.
func (ms *MagicSet) Validate() error {
	for _, pt := range []board.PieceType{board.Bishop, board.Rook} {
		w := newWizard(pt, nil)
		magics := ms.of(pt)
		for sq := board.A1; sq <= board.H8; sq++ {
			if !w.try(enumerate(pt, sq), magics[sq]) {
				return fmt.Errorf("%w: %s on %s (magic %#016x)", ErrMagicCollision, pt, sq, magics[sq])
			}
		}
	}
	return nil
}
