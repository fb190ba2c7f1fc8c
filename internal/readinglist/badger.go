// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package readinglist

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/shelfwise/internal/logging"
	"github.com/tomtom215/shelfwise/internal/metrics"
)

// Key prefixes for BadgerDB storage
const (
	ratingKeyPrefix  = "rating:"
	readingKeyPrefix = "reading:"
)

// Options configures OpenBadgerStore.
type Options struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory. Intended for tests and demos.
	InMemory bool

	// SyncWrites fsyncs every write.
	SyncWrites bool
}

// BadgerStore implements Store using BadgerDB.
type BadgerStore struct {
	db     *badger.DB
	ownsDB bool
	now    func() time.Time
}

// NewBadgerStore creates a store over an existing BadgerDB. Close does not
// close db.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db, now: time.Now}
}

// OpenBadgerStore opens (or creates) a BadgerDB and returns a store that
// owns it.
func OpenBadgerStore(opts Options) (*BadgerStore, error) {
	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Path == "" {
			return nil, errors.New("store path is required")
		}
		bopts = badger.DefaultOptions(opts.Path)
	}
	bopts.SyncWrites = opts.SyncWrites
	bopts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for reading lists: %w", err)
	}

	logging.Info().
		Str("path", opts.Path).
		Bool("in_memory", opts.InMemory).
		Msg("reading-list store opened")

	return &BadgerStore{db: db, ownsDB: true, now: time.Now}, nil
}

func ratingKey(userID, bookID int) []byte {
	return []byte(ratingKeyPrefix + strconv.Itoa(userID) + ":" + strconv.Itoa(bookID))
}

func readingKey(userID, bookID int) []byte {
	return []byte(readingKeyPrefix + strconv.Itoa(userID) + ":" + strconv.Itoa(bookID))
}

func readingUserPrefix(userID int) []byte {
	return []byte(readingKeyPrefix + strconv.Itoa(userID) + ":")
}

// observe records the operation's latency. Missing records are not failures.
func observe(op string, start time.Time, err error) {
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	metrics.RecordStoreOperation(op, time.Since(start), err)
}

// PutRating inserts or replaces a rating.
func (s *BadgerStore) PutRating(ctx context.Context, rec RatingRecord) (err error) {
	start := time.Now()
	defer func() { observe("put_rating", start, err) }()

	if err = validateRecord(&rec); err != nil {
		return err
	}
	rec.UpdatedAt = s.now().UTC()

	data, err := json.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("marshal rating: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(ratingKey(rec.UserID, rec.BookID), data)
	})
	if err != nil {
		return fmt.Errorf("set rating: %w", err)
	}
	return nil
}

// GetRating retrieves a rating.
func (s *BadgerStore) GetRating(ctx context.Context, userID, bookID int) (rec RatingRecord, err error) {
	start := time.Now()
	defer func() { observe("get_rating", start, err) }()

	err = s.get(ratingKey(userID, bookID), &rec)
	return rec, err
}

// SetStatus inserts or replaces a reading-list entry.
func (s *BadgerStore) SetStatus(ctx context.Context, userID, bookID int, status Status) (err error) {
	start := time.Now()
	defer func() { observe("set_status", start, err) }()

	entry := ReadingEntry{
		UserID: userID,
		BookID: bookID,
		Status: status,
	}
	if err = validateRecord(&entry); err != nil {
		return err
	}
	entry.UpdatedAt = s.now().UTC()

	data, err := json.Marshal(&entry)
	if err != nil {
		return fmt.Errorf("marshal reading entry: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(readingKey(userID, bookID), data)
	})
	if err != nil {
		return fmt.Errorf("set reading entry: %w", err)
	}
	return nil
}

// GetStatus retrieves a reading-list entry.
func (s *BadgerStore) GetStatus(ctx context.Context, userID, bookID int) (entry ReadingEntry, err error) {
	start := time.Now()
	defer func() { observe("get_status", start, err) }()

	err = s.get(readingKey(userID, bookID), &entry)
	return entry, err
}

// RemoveStatus deletes a reading-list entry if present.
func (s *BadgerStore) RemoveStatus(ctx context.Context, userID, bookID int) (err error) {
	start := time.Now()
	defer func() { observe("remove_status", start, err) }()

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(readingKey(userID, bookID)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete reading entry: %w", err)
	}
	return nil
}

// List returns every reading-list entry for a user, ordered by book id.
func (s *BadgerStore) List(ctx context.Context, userID int) (entries []ReadingEntry, err error) {
	start := time.Now()
	defer func() { observe("list", start, err) }()

	entries = []ReadingEntry{}
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := readingUserPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var entry ReadingEntry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list reading entries: %w", err)
	}

	// Keys sort lexically ("10" < "9"), so order numerically here.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].BookID < entries[j].BookID
	})
	return entries, nil
}

// RunGC runs one value-log garbage collection pass. badger.ErrNoRewrite
// means there was nothing to collect and is not reported.
func (s *BadgerStore) RunGC(discardRatio float64) error {
	err := s.db.RunValueLogGC(discardRatio)
	if err == nil || errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
		return nil
	}
	return err
}

// Close closes the database if the store opened it.
func (s *BadgerStore) Close() error {
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}

func (s *BadgerStore) get(key []byte, dst interface{}) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dst)
		})
	})
	return err
}
