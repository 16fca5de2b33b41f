package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/custody/errors"
)

// freeListSize bounds the nodes kept for reuse by all caches stacked on one
// base store.
const freeListSize = btree.DefaultFreeListSize

// BTreeCacheable gives a plain KVStore savepoints backed by a btree cache.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.NewBatch(), nil)
}

// MemStore is an in memory store with nothing underneath. Writes stay in the
// btree, which makes it the base of every unit test.
func MemStore() CacheableKVStore {
	return NewBTreeCacheWrap(void{}, NewQueue(void{}), nil)
}

// RecordingStore is a MemStore that also returns the queue of every write
// made to it, in order.
func RecordingStore() (CacheableKVStore, *Queue) {
	q := NewQueue(void{})
	return NewBTreeCacheWrap(void{}, q, nil), q
}

// BTreeCacheWrap holds pending writes in a btree over a read only parent.
// Reads check the btree first. Write flushes the batch to the parent.
type BTreeCacheWrap struct {
	tree   *btree.BTree
	free   *btree.FreeList
	parent ReadOnlyKVStore
	batch  Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap caches over parent. All writes must go through batch,
// which is what Write flushes. A nil free list allocates a new one.
func NewBTreeCacheWrap(parent ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(freeListSize)
	}
	return BTreeCacheWrap{
		tree:   btree.NewWithFreeList(2, free),
		free:   free,
		parent: parent,
		batch:  batch,
	}
}

// CacheWrap opens a nested savepoint sharing our free list.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

func (b BTreeCacheWrap) NewBatch() Batch {
	return NewQueue(b)
}

// Write flushes the pending writes to the parent and empties the cache.
func (b BTreeCacheWrap) Write() error {
	defer b.Discard()
	return b.batch.Write()
}

// Discard drops the pending writes.
func (b BTreeCacheWrap) Discard() {
	b.tree.Clear(true)
}

func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.tree.ReplaceOrInsert(setItem{bkey{key}, value})
	return b.batch.Set(key, value)
}

func (b BTreeCacheWrap) Delete(key []byte) error {
	b.tree.ReplaceOrInsert(deletedItem{bkey{key}})
	return b.batch.Delete(key)
}

func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	item, cached, err := b.cached(key)
	switch {
	case err != nil:
		return nil, err
	case !cached:
		return b.parent.Get(key)
	}
	if set, ok := item.(setItem); ok {
		return set.value, nil
	}
	return nil, nil
}

func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	item, cached, err := b.cached(key)
	if err != nil {
		return false, err
	}
	if !cached {
		return b.parent.Has(key)
	}
	_, ok := item.(setItem)
	return ok, nil
}

// cached looks key up in the btree. cached is false when the parent must
// answer.
func (b BTreeCacheWrap) cached(key []byte) (item keyer, cached bool, err error) {
	switch t := b.tree.Get(bkey{key}).(type) {
	case nil:
		return nil, false, nil
	case setItem, deletedItem:
		return t.(keyer), true, nil
	default:
		return nil, false, errors.Wrapf(errors.ErrDatabase, "btree item %T", t)
	}
}

func (b BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	parent, err := b.parent.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return newMergeIterator(collectRange(b.tree, start, end), parent, false)
}

func (b BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	parent, err := b.parent.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	items := collectRange(b.tree, start, end)
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return newMergeIterator(items, parent, true)
}

// collectRange returns all cached items (set and deleted) with a key in
// [start, end), in ascending order. A nil bound is unlimited.
func collectRange(tree *btree.BTree, start, end []byte) []keyer {
	var items []keyer
	collect := func(i btree.Item) bool {
		items = append(items, i.(keyer))
		return true
	}
	switch {
	case start == nil && end == nil:
		tree.Ascend(collect)
	case start == nil:
		tree.AscendLessThan(bkey{end}, collect)
	case end == nil:
		tree.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		tree.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return items
}

// keyer is implemented by every item in the btree.
type keyer interface {
	Key() []byte
}

// bkey orders btree items by key. On its own it is the lookup needle.
type bkey struct {
	key []byte
}

var _ btree.Item = bkey{}

func (k bkey) Key() []byte { return k.key }

func (k bkey) Less(than btree.Item) bool {
	return bytes.Compare(k.key, than.(keyer).Key()) < 0
}

// deletedItem hides the parent's value for its key.
type deletedItem struct {
	bkey
}

type setItem struct {
	bkey
	value []byte
}
