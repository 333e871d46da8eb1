package chaintable

import (
	"fmt"
	"hash/maphash"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"
)

// HashAlgorithm selects how string keys are hashed
type HashAlgorithm int

const (
	// XXHash hashes string keys with 64-bit xxHash
	XXHash HashAlgorithm = iota
	// XXH3 hashes string keys with XXH3-64
	XXH3
	// MapHash hashes string keys with the runtime's maphash, seeded per table
	MapHash
)

// DefaultHash is the algorithm used when no WithHash option is given
const DefaultHash = XXHash

func (a HashAlgorithm) String() string {
	switch a {
	case XXHash:
		return "xxhash"
	case XXH3:
		return "xxh3"
	case MapHash:
		return "maphash"
	}
	return fmt.Sprintf("HashAlgorithm(%d)", int(a))
}

func (a HashAlgorithm) valid() bool {
	return a >= XXHash && a <= MapHash
}

// ParseHashAlgorithm converts a name such as "xxh3" to its HashAlgorithm
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	for _, a := range []HashAlgorithm{XXHash, XXH3, MapHash} {
		if strings.EqualFold(name, a.String()) {
			return a, nil
		}
	}
	return DefaultHash, errors.Wrapf(ErrInvalidArgument, "unknown hash algorithm %q", name)
}

// hashFn maps a key to an unsigned 64-bit hash. Equal keys must produce equal hashes.
type hashFn[K comparable] func(key K) uint64

// newHashFn builds the key hash for a table. String keys go through the
// selected algorithm, every other comparable key through maphash.Comparable,
// which hashes exactly what == compares.
func newHashFn[K comparable](alg HashAlgorithm) hashFn[K] {
	seed := maphash.MakeSeed()

	var zero K
	if _, ok := any(zero).(string); ok {
		switch alg {
		case XXH3:
			return func(key K) uint64 {
				return xxh3.HashString(any(key).(string))
			}
		case MapHash:
			return func(key K) uint64 {
				return maphash.String(seed, any(key).(string))
			}
		default:
			return func(key K) uint64 {
				return xxhash.Sum64String(any(key).(string))
			}
		}
	}

	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}
