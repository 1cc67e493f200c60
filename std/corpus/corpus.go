// Package corpus stores captured BER units, keyed by a fingerprint of their
// octets, so that decoding can be re-checked against real traffic.
package corpus

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash"
)

// Key is the xxhash fingerprint of a stored unit.
type Key uint64

// KeyOf returns the key wire is stored under.
func KeyOf(wire []byte) Key {
	return Key(xxhash.Sum64(wire))
}

func (k Key) String() string {
	return fmt.Sprintf("%016x", uint64(k))
}

// ParseKey parses the hexadecimal form produced by String.
func ParseKey(s string) (Key, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid corpus key %q: %w", s, err)
	}
	return Key(v), nil
}

// bytes is the big-endian form, which sorts like the key itself.
func (k Key) bytes() []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(k))
}

func keyFromBytes(b []byte) (Key, bool) {
	if len(b) != 8 {
		return 0, false
	}
	return Key(binary.BigEndian.Uint64(b)), true
}

// Store holds captured units.
//
// Get returns nil for an absent key. Put is idempotent: storing the same
// octets twice keeps one copy. Walk visits units in ascending key order and
// stops at the first error returned by fn.
//
// Begin starts a write transaction. Writes through the returned store are
// invisible to readers until Commit, and dropped by Rollback.
type Store interface {
	Get(key Key) ([]byte, error)
	Put(wire []byte) (Key, error)
	Remove(key Key) error
	Walk(fn func(key Key, wire []byte) error) error
	Len() (int, error)

	Begin() (Store, error)
	Commit() error
	Rollback() error

	Close() error
}
