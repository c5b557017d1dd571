// Package store persists board documents in BadgerDB.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/daystram/chessboard/board"
)

const keyPrefixBoard = "board/"

var (
	ErrNotFound    = errors.New("board not found")
	ErrInvalidName = errors.New("invalid board name")
)

// Store wraps BadgerDB. It is safe for concurrent use; the boards it returns
// are not.
type Store struct {
	db *badger.DB
}

type storeConfig struct {
	inMemory bool
	logger   badger.Logger
}

type Option func(*storeConfig)

// WithInMemory keeps everything in memory and ignores the directory.
func WithInMemory() Option {
	return func(cfg *storeConfig) {
		cfg.inMemory = true
	}
}

// WithLogger enables Badger's internal logging. It is disabled by default.
func WithLogger(l badger.Logger) Option {
	return func(cfg *storeConfig) {
		cfg.logger = l
	}
}

func Open(dir string, opts ...Option) (*Store, error) {
	cfg := &storeConfig{}
	for _, f := range opts {
		f(cfg)
	}

	bopts := badger.DefaultOptions(dir)
	if cfg.inMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	bopts.Logger = cfg.logger

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Save(name string, b *board.Board) error {
	key, err := boardKey(name)
	if err != nil {
		return err
	}
	data, err := json.Marshal(b.MarshalDocument())
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// Load decodes the named board. Options are passed to board.NewBoard so the
// caller can attach a random source for later re-initialisation.
func (s *Store) Load(name string, opts ...board.BoardOption) (*board.Board, error) {
	key, err := boardKey(name)
	if err != nil {
		return nil, err
	}

	var d board.Document
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &d)
		})
	})
	if err != nil {
		return nil, err
	}

	b := board.NewBoard(opts...)
	if err := b.UnmarshalDocument(d); err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return b, nil
}

func (s *Store) Delete(name string) error {
	key, err := boardKey(name)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// List returns the saved board names in key order.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefixBoard)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), keyPrefixBoard))
		}
		return nil
	})
	return names, err
}

func boardKey(name string) ([]byte, error) {
	if name == "" || strings.ContainsAny(name, "/\x00") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return []byte(keyPrefixBoard + name), nil
}
