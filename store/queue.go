package store

import (
	"github.com/iov-one/custody/errors"
)

type opKind uint8

const (
	opSet opKind = iota + 1
	opDelete
)

// Op is one pending write: a set with its value or a delete.
type Op struct {
	kind  opKind
	key   []byte
	value []byte
}

func SetOp(key, value []byte) Op { return Op{kind: opSet, key: key, value: value} }

func DelOp(key []byte) Op { return Op{kind: opDelete, key: key} }

// Apply runs the op against out.
func (o Op) Apply(out SetDeleter) error {
	switch o.kind {
	case opSet:
		return out.Set(o.key, o.value)
	case opDelete:
		return out.Delete(o.key)
	}
	return errors.Wrapf(errors.ErrDatabase, "op kind %d", o.kind)
}

// Queue is a Batch that records ops in order and replays them on Write.
// It gives no atomicity, so it only fronts stores that are themselves
// committed as a whole (a btree cache or an iavl working tree).
type Queue struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*Queue)(nil)

func NewQueue(out SetDeleter) *Queue {
	return &Queue{out: out}
}

func (q *Queue) Set(key, value []byte) error {
	q.ops = append(q.ops, SetOp(key, value))
	return nil
}

func (q *Queue) Delete(key []byte) error {
	q.ops = append(q.ops, DelOp(key))
	return nil
}

// Write replays every queued op and empties the queue. On failure the ops
// not yet replayed stay queued.
func (q *Queue) Write() error {
	for i, op := range q.ops {
		if err := op.Apply(q.out); err != nil {
			q.ops = q.ops[i:]
			return err
		}
	}
	q.ops = nil
	return nil
}

// Pending lists the ops not written yet.
func (q *Queue) Pending() []Op {
	return q.ops
}
