package store

import (
	"bytes"
	"fmt"
	"sort"
	"testing"

	"github.com/iov-one/custody/weavetest/assert"
)

// Suite runs the same savepoint scenarios against any cacheable store, so
// the in memory btree and the iavl adapter are held to one behaviour.
type Suite struct {
	open Opener
}

// Opener returns a fresh empty store and a function releasing it.
type Opener func() (base CacheableKVStore, release func())

func NewSuite(open Opener) *Suite {
	return &Suite{open: open}
}

// Savepoint checks that a cache wrap behaves like an all or nothing
// transaction: writes are visible only inside it until Write, Discard drops
// them, and a discarded inner savepoint leaves the outer one intact.
func (s *Suite) Savepoint(t *testing.T) {
	base, release := s.open()
	defer release()

	holding, vault, record := []byte("holdings:maker"), []byte("holdings:vault"), []byte("escrows:1")
	assert.Nil(t, base.Set(holding, []byte("1000")))

	open := base.CacheWrap()
	assert.Nil(t, open.Set(holding, []byte("0")))
	assert.Nil(t, open.Set(vault, []byte("1000")))
	assert.Nil(t, open.Set(record, []byte("open")))
	s.expect(t, open, holding, []byte("0"))
	s.expect(t, base, holding, []byte("1000"))
	s.expect(t, base, vault, nil)
	open.Discard()
	s.expect(t, base, holding, []byte("1000"))
	s.expect(t, base, record, nil)

	open = base.CacheWrap()
	assert.Nil(t, open.Set(vault, []byte("1000")))
	assert.Nil(t, open.Set(record, []byte("open")))

	cancel := open.CacheWrap()
	assert.Nil(t, cancel.Delete(vault))
	assert.Nil(t, cancel.Delete(record))
	s.expect(t, cancel, record, nil)
	cancel.Discard()
	s.expect(t, open, record, []byte("open"))

	assert.Nil(t, open.Write())
	s.expect(t, base, vault, []byte("1000"))
	s.expect(t, base, record, []byte("open"))

	settle := base.CacheWrap()
	assert.Nil(t, settle.Delete(vault))
	assert.Nil(t, settle.Delete(record))
	assert.Nil(t, settle.Write())
	s.expect(t, base, vault, nil)
	s.expect(t, base, record, nil)
}

// Overlay checks reads through a cache that overwrites and deletes values
// of its parent.
func (s *Suite) Overlay(t *testing.T) {
	k := func(n int) []byte { return []byte(fmt.Sprintf("accounts:%02d", n)) }
	v := func(n int) []byte { return []byte(fmt.Sprintf("lamports:%d", n)) }

	cases := map[string]struct {
		parent []Op
		child  []Op
		// reads maps a key to the expected value in parent and child,
		// nil meaning absent.
		reads []struct{ key, parent, child []byte }
	}{
		"overwrite, delete and add": {
			parent: []Op{SetOp(k(1), v(1)), SetOp(k(2), v(2))},
			child:  []Op{SetOp(k(1), v(10)), DelOp(k(2)), SetOp(k(3), v(3))},
			reads: []struct{ key, parent, child []byte }{
				{k(1), v(1), v(10)},
				{k(2), v(2), nil},
				{k(3), nil, v(3)},
			},
		},
		"set again after delete": {
			parent: []Op{SetOp(k(1), v(1))},
			child:  []Op{DelOp(k(1)), SetOp(k(1), v(5))},
			reads: []struct{ key, parent, child []byte }{
				{k(1), v(1), v(5)},
			},
		},
		"delete a missing key": {
			child: []Op{DelOp(k(4))},
			reads: []struct{ key, parent, child []byte }{
				{k(4), nil, nil},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			parent, release := s.open()
			defer release()
			for _, op := range tc.parent {
				assert.Nil(t, op.Apply(parent))
			}
			child := parent.CacheWrap()
			for _, op := range tc.child {
				assert.Nil(t, op.Apply(child))
			}
			for _, r := range tc.reads {
				s.expect(t, parent, r.key, r.parent)
				s.expect(t, child, r.key, r.child)
			}
			assert.Nil(t, child.Write())
			for _, r := range tc.reads {
				s.expect(t, parent, r.key, r.child)
			}
		})
	}
}

// PrefixScan checks forward and reverse iteration over one bucket prefix
// while a cache holds pending writes and deletes on top of its parent.
func (s *Suite) PrefixScan(t *testing.T) {
	base, release := s.open()
	defer release()

	// reference keeps the expected content of the child after all writes.
	reference := make(map[string][]byte)
	set := func(kv KVStore, key string, value []byte) {
		assert.Nil(t, kv.Set([]byte(key), value))
		reference[key] = value
	}
	del := func(kv KVStore, key string) {
		assert.Nil(t, kv.Delete([]byte(key)))
		delete(reference, key)
	}

	for i := 0; i < 30; i++ {
		set(base, fmt.Sprintf("holdings:%03d", i*2), []byte{byte(i)})
		set(base, fmt.Sprintf("escrows:%03d", i), []byte{byte(i)})
	}
	child := base.CacheWrap()
	for i := 0; i < 30; i++ {
		switch i % 3 {
		case 0:
			del(child, fmt.Sprintf("holdings:%03d", i*2))
		case 1:
			set(child, fmt.Sprintf("holdings:%03d", i*2+1), []byte{0xff, byte(i)})
		default:
			set(child, fmt.Sprintf("holdings:%03d", i*2), []byte{0xee, byte(i)})
		}
	}

	want := func(start, end []byte) []Model {
		var res []Model
		for k, v := range reference {
			key := []byte(k)
			if bytes.Compare(key, start) >= 0 && (end == nil || bytes.Compare(key, end) < 0) {
				res = append(res, Pair(key, v))
			}
		}
		sort.Slice(res, func(i, j int) bool { return bytes.Compare(res[i].Key, res[j].Key) < 0 })
		return res
	}

	ranges := []struct{ start, end []byte }{
		{[]byte("holdings:"), []byte("holdings;")},
		{[]byte("holdings:010"), []byte("holdings:031")},
		{[]byte("escrows:"), []byte("escrows;")},
		{[]byte("holdings:050"), nil},
	}
	for _, r := range ranges {
		expected := want(r.start, r.end)

		it, err := child.Iterator(r.start, r.end)
		assert.Nil(t, err)
		s.drain(t, it, expected)

		reversed := make([]Model, len(expected))
		for i, m := range expected {
			reversed[len(expected)-1-i] = m
		}
		it, err = child.ReverseIterator(r.start, r.end)
		assert.Nil(t, err)
		s.drain(t, it, reversed)
	}
}

func (s *Suite) expect(t testing.TB, kv ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, want, got)
	has, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, want != nil, has)
}

func (s *Suite) drain(t testing.TB, it Iterator, want []Model) {
	t.Helper()
	defer it.Close()
	for i, m := range want {
		if !it.Valid() {
			t.Fatalf("iterator done after %d of %d entries", i, len(want))
		}
		if !bytes.Equal(m.Key, it.Key()) {
			t.Fatalf("entry %d: want key %q, got %q", i, m.Key, it.Key())
		}
		assert.Equal(t, m.Value, it.Value())
		assert.Nil(t, it.Next())
	}
	if it.Valid() {
		t.Fatalf("unexpected key %q", it.Key())
	}
}
