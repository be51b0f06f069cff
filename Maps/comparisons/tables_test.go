package comparisons

import (
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	godsmap "github.com/emirpasic/gods/maps/hashmap"
	"github.com/g-m-twostay/go-symtab/Maps"
	"github.com/g-m-twostay/go-symtab/Maps/ProbeMap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/puzpuzpuz/xsync/v3"
)

// Adapters giving the reference containers the Table behaviour, including Put(k, Null) meaning delete.

type godsTable struct{ m *godsmap.Map }

func newGods() *godsTable { return &godsTable{godsmap.New()} }

func (u *godsTable) Put(key string, val rune) error {
	if val == ProbeMap.Null {
		u.m.Remove(key)
	} else {
		u.m.Put(key, val)
	}
	return nil
}
func (u *godsTable) Get(key string) (rune, bool) {
	if v, ok := u.m.Get(key); ok {
		return v.(rune), true
	}
	return ProbeMap.Null, false
}
func (u *godsTable) Contains(key string) bool { _, ok := u.m.Get(key); return ok }
func (u *godsTable) Delete(key string)        { u.m.Remove(key) }
func (u *godsTable) Size() int                { return u.m.Size() }
func (u *godsTable) IsEmpty() bool            { return u.m.Empty() }

type entry struct {
	k string
	v rune
}

type btreeTable struct{ t *btree.BTreeG[entry] }

func newBTree() *btreeTable {
	return &btreeTable{btree.NewG[entry](4, func(a, b entry) bool { return a.k < b.k })}
}

func (u *btreeTable) Put(key string, val rune) error {
	if val == ProbeMap.Null {
		u.t.Delete(entry{k: key})
	} else {
		u.t.ReplaceOrInsert(entry{key, val})
	}
	return nil
}
func (u *btreeTable) Get(key string) (rune, bool) {
	e, ok := u.t.Get(entry{k: key})
	return e.v, ok
}
func (u *btreeTable) Contains(key string) bool { return u.t.Has(entry{k: key}) }
func (u *btreeTable) Delete(key string)        { u.t.Delete(entry{k: key}) }
func (u *btreeTable) Size() int                { return u.t.Len() }
func (u *btreeTable) IsEmpty() bool            { return u.t.Len() == 0 }

// sorted keys in ascending order.
func (u *btreeTable) sorted() []string {
	ks := make([]string, 0, u.t.Len())
	u.t.Ascend(func(e entry) bool {
		ks = append(ks, e.k)
		return true
	})
	return ks
}

type llrbEntry entry

func (e llrbEntry) Less(than llrb.Item) bool { return e.k < than.(llrbEntry).k }

type llrbTable struct{ t *llrb.LLRB }

func newLLRB() *llrbTable { return &llrbTable{llrb.New()} }

func (u *llrbTable) Put(key string, val rune) error {
	if val == ProbeMap.Null {
		u.t.Delete(llrbEntry{k: key})
	} else {
		u.t.ReplaceOrInsert(llrbEntry{key, val})
	}
	return nil
}
func (u *llrbTable) Get(key string) (rune, bool) {
	if i := u.t.Get(llrbEntry{k: key}); i != nil {
		return i.(llrbEntry).v, true
	}
	return ProbeMap.Null, false
}
func (u *llrbTable) Contains(key string) bool { return u.t.Has(llrbEntry{k: key}) }
func (u *llrbTable) Delete(key string)        { u.t.Delete(llrbEntry{k: key}) }
func (u *llrbTable) Size() int                { return u.t.Len() }
func (u *llrbTable) IsEmpty() bool            { return u.t.Len() == 0 }

func (u *llrbTable) sorted() []string {
	ks := make([]string, 0, u.t.Len())
	//the empty key sorts first; llrb.Inf can't be compared by llrbEntry.Less.
	u.t.AscendGreaterOrEqual(llrbEntry{}, func(i llrb.Item) bool {
		ks = append(ks, i.(llrbEntry).k)
		return true
	})
	return ks
}

type haxTable struct{ m *haxmap.Map[string, rune] }

func newHax() *haxTable { return &haxTable{haxmap.New[string, rune]()} }

func (u *haxTable) Put(key string, val rune) error {
	if val == ProbeMap.Null {
		u.m.Del(key)
	} else {
		u.m.Set(key, val)
	}
	return nil
}
// Get normalizes haxmap, which can report a stale value alongside ok == false once the key is deleted.
func (u *haxTable) Get(key string) (rune, bool) {
	if v, ok := u.m.Get(key); ok {
		return v, true
	}
	return ProbeMap.Null, false
}
func (u *haxTable) Contains(key string) bool    { _, ok := u.m.Get(key); return ok }
func (u *haxTable) Delete(key string)           { u.m.Del(key) }
func (u *haxTable) Size() int                   { return int(u.m.Len()) }
func (u *haxTable) IsEmpty() bool               { return u.m.Len() == 0 }

type cornelkTable struct{ m *hashmap.Map[string, rune] }

func newCornelk() *cornelkTable { return &cornelkTable{hashmap.New[string, rune]()} }

func (u *cornelkTable) Put(key string, val rune) error {
	if val == ProbeMap.Null {
		u.m.Del(key)
	} else {
		u.m.Set(key, val)
	}
	return nil
}
func (u *cornelkTable) Get(key string) (rune, bool) { return u.m.Get(key) }
func (u *cornelkTable) Contains(key string) bool    { _, ok := u.m.Get(key); return ok }
func (u *cornelkTable) Delete(key string)           { u.m.Del(key) }
func (u *cornelkTable) Size() int                   { return u.m.Len() }
func (u *cornelkTable) IsEmpty() bool               { return u.m.Len() == 0 }

type xsyncTable struct{ m *xsync.MapOf[string, rune] }

func newXsync() *xsyncTable { return &xsyncTable{xsync.NewMapOf[string, rune]()} }

func (u *xsyncTable) Put(key string, val rune) error {
	if val == ProbeMap.Null {
		u.m.Delete(key)
	} else {
		u.m.Store(key, val)
	}
	return nil
}
func (u *xsyncTable) Get(key string) (rune, bool) { return u.m.Load(key) }
func (u *xsyncTable) Contains(key string) bool    { _, ok := u.m.Load(key); return ok }
func (u *xsyncTable) Delete(key string)           { u.m.Delete(key) }
func (u *xsyncTable) Size() int                   { return u.m.Size() }
func (u *xsyncTable) IsEmpty() bool               { return u.m.Size() == 0 }

var (
	_ Maps.Table = (*godsTable)(nil)
	_ Maps.Table = (*btreeTable)(nil)
	_ Maps.Table = (*llrbTable)(nil)
	_ Maps.Table = (*haxTable)(nil)
	_ Maps.Table = (*cornelkTable)(nil)
	_ Maps.Table = (*xsyncTable)(nil)
)
