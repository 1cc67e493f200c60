package corpus

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/opencatalog/z3950/std/log"
)

// BadgerStore is a Store persisted with badger.
type BadgerStore struct {
	db *badger.DB
	tx *badger.Txn
}

// NewBadgerStore opens the store at path. An empty path keeps the store in
// memory.
func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(badgerLogger{})
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	s := &BadgerStore{db: db}
	log.Debug(s, "Opened corpus", "path", path)
	return s, nil
}

func (s *BadgerStore) String() string {
	return "badger-store"
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func (s *BadgerStore) Get(key Key) (wire []byte, err error) {
	err = s.view(func(txn *badger.Txn) error {
		item, err := txn.Get(key.bytes())
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		wire, err = item.ValueCopy(nil)
		return err
	})
	return
}

func (s *BadgerStore) Put(wire []byte) (Key, error) {
	key := KeyOf(wire)
	return key, s.update(func(txn *badger.Txn) error {
		return txn.Set(key.bytes(), slices.Clone(wire))
	})
}

func (s *BadgerStore) Remove(key Key) error {
	return s.update(func(txn *badger.Txn) error {
		return txn.Delete(key.bytes())
	})
}

func (s *BadgerStore) Walk(fn func(key Key, wire []byte) error) error {
	return s.view(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key, ok := keyFromBytes(item.Key())
			if !ok {
				log.Warn(s, "Skipping foreign key", "key", fmt.Sprintf("%x", item.Key()))
				continue
			}
			wire, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := fn(key, wire); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BadgerStore) Len() (count int, err error) {
	err = s.view(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // keys only
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return
}

func (s *BadgerStore) Begin() (Store, error) {
	if s.tx != nil {
		panic("Begin() called within a write transaction")
	}
	tx := s.db.NewTransaction(true)
	return &BadgerStore{db: s.db, tx: tx}, nil
}

func (s *BadgerStore) Commit() error {
	if s.tx == nil {
		panic("Commit() called without a write transaction")
	}
	return s.tx.Commit()
}

func (s *BadgerStore) Rollback() error {
	if s.tx == nil {
		panic("Rollback() called without a write transaction")
	}
	s.tx.Discard()
	return nil
}

func (s *BadgerStore) view(f func(tx *badger.Txn) error) error {
	if s.tx != nil {
		return f(s.tx)
	}
	return s.db.View(f)
}

func (s *BadgerStore) update(f func(tx *badger.Txn) error) error {
	if s.tx != nil {
		return f(s.tx)
	}
	return s.db.Update(f)
}

// badgerLogger routes badger's own messages to the default logger.
type badgerLogger struct{}

func (badgerLogger) String() string {
	return "badger"
}

func (l badgerLogger) Errorf(format string, v ...any) {
	log.Error(l, fmt.Sprintf(format, v...))
}

func (l badgerLogger) Warningf(format string, v ...any) {
	log.Warn(l, fmt.Sprintf(format, v...))
}

func (l badgerLogger) Infof(format string, v ...any) {
	log.Debug(l, fmt.Sprintf(format, v...))
}

func (l badgerLogger) Debugf(format string, v ...any) {
	log.Trace(l, fmt.Sprintf(format, v...))
}
