package ProbeMap

import (
	"fmt"
	"io"
	"os"
	"strings"

	Go_SymTab "github.com/g-m-twostay/go-symtab"
	"github.com/g-m-twostay/go-symtab/Maps"
)

const (
	DefaultCap      = 7
	Null       rune = 0 //the absent value. Get returns it for missing keys and Put treats it as a delete request.
)

// New ProbeMap with capacity slots hashed by Go_SymTab.CodeSum.
func New(capacity int) (*ProbeMap, error) {
	return NewWith(capacity, Go_SymTab.CodeSum)
}

// NewDefault ProbeMap with DefaultCap slots.
func NewDefault() *ProbeMap {
	u, _ := New(DefaultCap)
	return u
}

// NewWith uses h instead of the code point sum. A nil h falls back to Go_SymTab.CodeSum.
func NewWith(capacity int, h Go_SymTab.Hasher) (*ProbeMap, error) {
	if capacity <= 0 {
		return nil, &InvalidCapacityError{Capacity: capacity}
	}
	if h == nil {
		h = Go_SymTab.CodeSum
	}
	return &ProbeMap{
		keys:  make([]string, capacity),
		vals:  make([]rune, capacity),
		used:  Go_SymTab.NewBitArray(uint(capacity)),
		hashF: h,
	}, nil
}

// ProbeMap is a fixed capacity hash table resolving collisions by linear probing, without tombstones.
// Keys and values live in two parallel slot arrays; a slot is empty iff its bit in used is clear.
// The table never grows and always keeps one slot empty, so every probe sequence ends.
// It isn't safe for concurrent use.
type ProbeMap struct {
	keys  []string
	vals  []rune
	used  Go_SymTab.BitArray
	sz    int
	hashF Go_SymTab.Hasher
}

var _ Maps.Table = (*ProbeMap)(nil)

// Cap is the number of slots, fixed at construction.
func (u *ProbeMap) Cap() int {
	return len(u.keys)
}

// Size is the number of stored keys.
func (u *ProbeMap) Size() int {
	return u.sz
}

func (u *ProbeMap) IsEmpty() bool {
	return u.sz == 0
}

// Hash of key reduced to a slot index in [0,Cap()).
func (u *ProbeMap) Hash(key string) int {
	return int(u.hashF(key) % uint(len(u.keys)))
}

// probe walks from Hash(key) until it finds key or an empty slot. It returns the slot it stopped at, the number of slots inspected, and whether key was found.
// i is -1 only if every slot is occupied by other keys.
func (u *ProbeMap) probe(key string) (i, steps int, found bool) {
	m := len(u.keys)
	for i = u.Hash(key); steps < m; i = Maps.Wrap(i, 1, m) {
		steps++
		if !u.used.Get(i) {
			return i, steps, false
		}
		if u.keys[i] == key {
			return i, steps, true
		}
	}
	return -1, steps, false
}

func (u *ProbeMap) fill(i int, key string, val rune) {
	u.keys[i], u.vals[i] = key, val
	u.used.Set(i)
}

func (u *ProbeMap) clear(i int) {
	u.keys[i], u.vals[i] = "", Null
	u.used.Clr(i)
}

// Get the value of key. Returns Null, false if key isn't present.
func (u *ProbeMap) Get(key string) (rune, bool) {
	if i, _, ok := u.probe(key); ok {
		return u.vals[i], true
	}
	return Null, false
}

// Contains is true iff Get finds a value for key.
func (u *ProbeMap) Contains(key string) bool {
	_, ok := u.Get(key)
	return ok
}

// Put associates val with key, overwriting any previous value in place.
// Putting Null deletes key, and is a no-op when key is absent, so Null is never stored.
// A new key is refused with *CapacityExceededError when only one empty slot is left.
func (u *ProbeMap) Put(key string, val rune) error {
	i, _, ok := u.probe(key)
	if ok {
		if val == Null {
			u.remove(i)
		} else {
			u.vals[i] = val
		}
		return nil
	}
	if val == Null {
		return nil
	}
	if u.sz >= len(u.keys)-1 {
		return &CapacityExceededError{Key: key, Capacity: len(u.keys)}
	}
	u.fill(i, key, val)
	u.sz++
	return nil
}

// Delete key and its value. Deleting an absent key does nothing.
func (u *ProbeMap) Delete(key string) {
	if i, _, ok := u.probe(key); ok {
		u.remove(i)
	}
}

// remove clears slot i then reinserts every following entry of its cluster, so that keys probing past i can still be reached.
// A reinserted entry always lands at or before its old slot, so the walk ends at the empty slot that closed the cluster.
func (u *ProbeMap) remove(i int) {
	u.clear(i)
	u.sz--
	m := len(u.keys)
	for j := Maps.Wrap(i, 1, m); u.used.Get(j); j = Maps.Wrap(j, 1, m) {
		k, v := u.keys[j], u.vals[j]
		u.clear(j)
		e, _, _ := u.probe(k)
		u.fill(e, k, v)
	}
}

// Probe is the number of slots a lookup of key inspects, including the one it stops at.
func (u *ProbeMap) Probe(key string) int {
	_, steps, _ := u.probe(key)
	return steps
}

// Range calls f on every entry in slot order until f returns false.
func (u *ProbeMap) Range(f func(key string, val rune) bool) {
	for i := range u.keys {
		if u.used.Get(i) && !f(u.keys[i], u.vals[i]) {
			return
		}
	}
}

// Keys in slot order.
func (u *ProbeMap) Keys() []string {
	ks := make([]string, 0, u.sz)
	u.Range(func(key string, _ rune) bool {
		ks = append(ks, key)
		return true
	})
	return ks
}

// DumpTo writes one line per slot: "i. v key (hash)" for occupied slots and "i. null -" for empty ones.
func (u *ProbeMap) DumpTo(w io.Writer) error {
	for i := range u.keys {
		var err error
		if u.used.Get(i) {
			_, err = fmt.Fprintf(w, "%d. %c %s (%d)\n", i, u.vals[i], u.keys[i], u.Hash(u.keys[i]))
		} else {
			_, err = fmt.Fprintf(w, "%d. null -\n", i)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Dump the slots to stdout.
func (u *ProbeMap) Dump() {
	_ = u.DumpTo(os.Stdout)
}

func (u *ProbeMap) String() string {
	var sb strings.Builder
	_ = u.DumpTo(&sb)
	return sb.String()
}
