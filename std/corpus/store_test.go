package corpus_test

import (
	"errors"
	"testing"

	"github.com/opencatalog/z3950/std/corpus"
	tu "github.com/opencatalog/z3950/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

var (
	closeWire  = tu.Hex("bf 30 0b 9f 81 53 01 07 83 04 69 64 6c 65")
	searchWire = tu.Hex("b7 0c 97 01 05 98 01 00 99 01 01 96 01 ff")
	initWire   = tu.Hex("b4 0d 83 02 05 e0 84 01 00 85 01 01 86 01 01")
)

func TestKey(t *testing.T) {
	tu.SetT(t)

	k := corpus.KeyOf(closeWire)
	require.Equal(t, k, corpus.KeyOf(append([]byte{}, closeWire...)))
	require.NotEqual(t, k, corpus.KeyOf(searchWire))
	require.Len(t, k.String(), 16)
	require.Equal(t, k, tu.NoErr(corpus.ParseKey(k.String())))
	require.Error(t, tu.Err(corpus.ParseKey("not-a-key")))
}

func testStoreBasic(t *testing.T, store corpus.Store) {
	// empty
	data, err := store.Get(corpus.KeyOf(closeWire))
	require.NoError(t, err)
	require.Nil(t, data)
	require.Equal(t, 0, tu.NoErr(store.Len()))

	k1 := tu.NoErr(store.Put(closeWire))
	k2 := tu.NoErr(store.Put(searchWire))
	require.Equal(t, corpus.KeyOf(closeWire), k1)
	require.Equal(t, closeWire, tu.NoErr(store.Get(k1)))
	require.Equal(t, searchWire, tu.NoErr(store.Get(k2)))

	// same octets are stored once
	require.Equal(t, k1, tu.NoErr(store.Put(closeWire)))
	require.Equal(t, 2, tu.NoErr(store.Len()))

	// walk in key order
	tu.NoErr(store.Put(initWire))
	keys := []corpus.Key{}
	require.NoError(t, store.Walk(func(key corpus.Key, wire []byte) error {
		require.Equal(t, key, corpus.KeyOf(wire))
		keys = append(keys, key)
		return nil
	}))
	require.Len(t, keys, 3)
	require.IsIncreasing(t, keys)

	// walk stops at the first error
	stop := errors.New("stop")
	visited := 0
	err = store.Walk(func(corpus.Key, []byte) error {
		visited++
		return stop
	})
	require.Equal(t, stop, err)
	require.Equal(t, 1, visited)

	require.NoError(t, store.Remove(k2))
	require.Nil(t, tu.NoErr(store.Get(k2)))
	require.Equal(t, 2, tu.NoErr(store.Len()))
}

func testStoreTxn(t *testing.T, store corpus.Store) {
	extra := []byte{0x05, 0x00}

	// writes are invisible until commit, except to the transaction
	tx, err := store.Begin()
	require.NoError(t, err)
	key := tu.NoErr(tx.Put(extra))
	require.Equal(t, extra, tu.NoErr(tx.Get(key)))
	require.Nil(t, tu.NoErr(store.Get(key)))
	require.NoError(t, tx.Commit())
	require.Equal(t, extra, tu.NoErr(store.Get(key)))

	// removal is undone by rollback
	tx, err = store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.Remove(key))
	require.Nil(t, tu.NoErr(tx.Get(key)))
	require.Equal(t, extra, tu.NoErr(store.Get(key)))
	require.NoError(t, tx.Rollback())
	require.Equal(t, extra, tu.NoErr(store.Get(key)))

	// and applied by commit
	tx, err = store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.Remove(key))
	require.NoError(t, tx.Commit())
	require.Nil(t, tu.NoErr(store.Get(key)))

	// the stored value does not alias the caller's buffer
	buf := []byte{0x05, 0x00}
	tx, err = store.Begin()
	require.NoError(t, err)
	key = tu.NoErr(tx.Put(buf))
	buf[0] = 0xff
	require.NoError(t, tx.Commit())
	require.Equal(t, extra, tu.NoErr(store.Get(key)))
	require.NoError(t, store.Remove(key))

	// and dropped by rollback
	tx, err = store.Begin()
	require.NoError(t, err)
	key = tu.NoErr(tx.Put(extra))
	require.NoError(t, tx.Rollback())
	require.Nil(t, tu.NoErr(store.Get(key)))

	// plain put after the transaction
	tu.NoErr(store.Put(extra))
	require.Equal(t, extra, tu.NoErr(store.Get(key)))
}

func TestMemoryStore(t *testing.T) {
	tu.SetT(t)
	store := corpus.NewMemoryStore()
	testStoreBasic(t, store)
	testStoreTxn(t, store)
	require.Positive(t, store.MemSize())
	require.NoError(t, store.Close())
}

func TestBadgerStore(t *testing.T) {
	tu.SetT(t)

	store := tu.NoErr(corpus.NewBadgerStore(t.TempDir()))
	testStoreBasic(t, store)
	testStoreTxn(t, store)
	require.NoError(t, store.Close())
}

func TestBadgerStoreReopen(t *testing.T) {
	tu.SetT(t)

	dir := t.TempDir()
	store := tu.NoErr(corpus.NewBadgerStore(dir))
	key := tu.NoErr(store.Put(closeWire))
	require.NoError(t, store.Close())

	store = tu.NoErr(corpus.NewBadgerStore(dir))
	require.Equal(t, closeWire, tu.NoErr(store.Get(key)))
	require.NoError(t, store.Close())

	mem := tu.NoErr(corpus.NewBadgerStore(""))
	require.Equal(t, 0, tu.NoErr(mem.Len()))
	require.NoError(t, mem.Close())
}
