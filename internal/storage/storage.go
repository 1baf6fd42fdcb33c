package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// keyPrefix namespaces perft results in the database.
const keyPrefix = "perft/"

// ErrNotFound is returned when no result is stored for a position and depth.
var ErrNotFound = errors.New("storage: result not found")

// Result is one verified perft count.
type Result struct {
	FEN        string        `json:"fen"`
	Depth      int           `json:"depth"`
	Nodes      uint64        `json:"nodes"`
	Elapsed    time.Duration `json:"elapsed"`
	RecordedAt time.Time     `json:"recorded_at"`
}

// NPS returns nodes per second for the recorded run.
func (r Result) NPS() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Nodes) / r.Elapsed.Seconds()
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

// OpenDefault opens the database in the platform data directory.
func OpenDefault() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open result store: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func resultKey(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("%s%02d/%s", keyPrefix, depth, strings.Join(strings.Fields(fen), " ")))
}

// Save stores a result, replacing any earlier count for the same FEN and depth.
// A zero RecordedAt is set to the current time.
func (s *Storage) Save(r Result) error {
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(resultKey(r.FEN, r.Depth), data)
	})
}

// Lookup returns the stored result for fen at depth, or ErrNotFound.
func (s *Storage) Lookup(fen string, depth int) (Result, error) {
	var r Result

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(resultKey(fen, depth))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})

	return r, err
}

// All returns every stored result ordered by depth, then FEN.
func (s *Storage) All() ([]Result, error) {
	var results []Result

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var r Result
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			results = append(results, r)
		}
		return nil
	})

	return results, err
}

// Delete removes the result for fen at depth. Deleting a missing key is not an error.
func (s *Storage) Delete(fen string, depth int) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(resultKey(fen, depth))
	})
}
