package store

import (
	"bytes"

	"github.com/iov-one/custody/errors"
)

// mergeIterator walks the pending items of a cache together with the
// parent's iterator. A pending write shadows the parent's value for the
// same key and a pending delete hides it.
type mergeIterator struct {
	pending []keyer
	parent  Iterator
	reverse bool
}

var _ Iterator = (*mergeIterator)(nil)

func newMergeIterator(pending []keyer, parent Iterator, reverse bool) (*mergeIterator, error) {
	it := &mergeIterator{pending: pending, parent: parent, reverse: reverse}
	if err := it.settle(); err != nil {
		it.Close()
		return nil, err
	}
	return it, nil
}

// step tells which sides hold the current key. Both are set when the
// cache and the parent share it.
type step struct {
	cache, parent bool
}

func (i *mergeIterator) current() step {
	c := len(i.pending) > 0
	p := i.parent != nil && i.parent.Valid()
	if !c || !p {
		return step{cache: c, parent: p}
	}
	cmp := bytes.Compare(i.pending[0].Key(), i.parent.Key())
	if i.reverse {
		cmp = -cmp
	}
	return step{cache: cmp <= 0, parent: cmp >= 0}
}

// advance moves past the current key on every side that holds it.
func (i *mergeIterator) advance(s step) error {
	if s.cache {
		i.pending = i.pending[1:]
	}
	if s.parent {
		return i.parent.Next()
	}
	return nil
}

// settle skips pending deletes together with the parent keys they hide.
func (i *mergeIterator) settle() error {
	for {
		s := i.current()
		if !s.cache {
			return nil
		}
		if _, deleted := i.pending[0].(deletedItem); !deleted {
			return nil
		}
		if err := i.advance(s); err != nil {
			return err
		}
	}
}

func (i *mergeIterator) Valid() bool {
	s := i.current()
	return s.cache || s.parent
}

func (i *mergeIterator) Next() error {
	s := i.current()
	if !s.cache && !s.parent {
		return errors.Wrap(errors.ErrDatabase, "iterator advanced past the end")
	}
	if err := i.advance(s); err != nil {
		return err
	}
	return i.settle()
}

func (i *mergeIterator) Key() []byte {
	switch s := i.current(); {
	case s.cache:
		return i.pending[0].Key()
	case s.parent:
		return i.parent.Key()
	}
	panic("iterator advanced past the end")
}

func (i *mergeIterator) Value() []byte {
	switch s := i.current(); {
	case s.cache:
		return i.pending[0].(setItem).value
	case s.parent:
		return i.parent.Value()
	}
	panic("iterator advanced past the end")
}

func (i *mergeIterator) Close() {
	if i.parent != nil {
		i.parent.Close()
	}
	i.pending = nil
}
