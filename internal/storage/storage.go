package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chessattacks/internal/attack"
)

const keyPrefix = "magics/"

// ErrNotFound is returned when no magic set is stored for a seed.
var ErrNotFound = errors.New("storage: magic set not found")

// Record is a stored magic set with its provenance.
type Record struct {
	Magics    attack.MagicSet `json:"magics"`
	Validated bool            `json:"validated"`
	Elapsed   time.Duration   `json:"elapsed"`
	CreatedAt time.Time       `json:"created_at"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dir, err)
	}

	return &Storage{db: db}, nil
}

// OpenDefault opens the database in the platform data directory.
func OpenDefault() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func seedKey(seed int64) []byte {
	return []byte(keyPrefix + strconv.FormatInt(seed, 10))
}

// SaveMagics stores rec under its seed, replacing any earlier record.
func (s *Storage) SaveMagics(rec *Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(seedKey(rec.Magics.Seed), data)
	})
}

// LoadMagics returns the record stored for seed, or ErrNotFound.
func (s *Storage) LoadMagics(seed int64) (*Record, error) {
	rec := &Record{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(seedKey(seed))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: seed %d", ErrNotFound, seed)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ListSeeds returns the seeds of all stored records in ascending order.
func (s *Storage) ListSeeds() ([]int64, error) {
	var seeds []int64

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := strings.TrimPrefix(string(it.Item().Key()), keyPrefix)
			seed, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				return fmt.Errorf("storage: malformed key %q: %w", key, err)
			}
			seeds = append(seeds, seed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(seeds, func(i, j int) bool { return seeds[i] < seeds[j] })
	return seeds, nil
}

// DeleteMagics removes the record for seed. Deleting a missing seed is not an error.
func (s *Storage) DeleteMagics(seed int64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(seedKey(seed))
	})
}

// LoadOrSearch returns the stored set for seed. A stored set is validated
// before it is returned. On a miss it runs the search, validates the result
// and stores it.
func (s *Storage) LoadOrSearch(seed int64) (*attack.MagicSet, error) {
	rec, err := s.LoadMagics(seed)
	if err == nil {
		if err := rec.Magics.Validate(); err != nil {
			return nil, fmt.Errorf("storage: seed %d: %w", seed, err)
		}
		if !rec.Validated {
			rec.Validated = true
			if err := s.SaveMagics(rec); err != nil {
				return nil, err
			}
		}
		return &rec.Magics, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	start := time.Now()
	ms, err := attack.SearchMagics(seed)
	if err != nil {
		return nil, err
	}
	if err := ms.Validate(); err != nil {
		return nil, err
	}
	rec = &Record{Magics: *ms, Validated: true, Elapsed: time.Since(start)}
	if err := s.SaveMagics(rec); err != nil {
		return nil, err
	}
	log.Printf("Stored magics for seed %d (search took %v)", seed, rec.Elapsed)

	return ms, nil
}
