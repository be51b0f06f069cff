package Go_SymTab

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key to an unreduced hash value. Tables reduce it modulo their capacity, so a Hasher never needs to know the table size.
type Hasher func(key string) uint

// CodeSum sums the Unicode code points of key. It's order independent, so anagrams always collide. This is the default hash of ProbeMap.
func CodeSum(key string) uint {
	var v uint
	for _, r := range key {
		v += uint(r)
	}
	return v
}

// XXHash hashes key with xxhash64.
func XXHash(key string) uint {
	return uint(xxhash.Sum64String(key))
}

// Seeded returns a Hasher backed by maphash using seed. Different seeds give unrelated probe sequences, which is useful for shaking out order dependent tests.
func Seeded(seed maphash.Seed) Hasher {
	return func(key string) uint {
		return uint(maphash.String(seed, key))
	}
}
