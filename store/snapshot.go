package store

import (
	"github.com/iov-one/custody/errors"
)

// Snapshot iterates over models collected up front, in the order given.
// Stores that only expose callback iteration use it to satisfy Iterator.
type Snapshot struct {
	models []Model
	pos    int
}

var _ Iterator = (*Snapshot)(nil)

func NewSnapshot(models []Model) *Snapshot {
	return &Snapshot{models: models}
}

func (s *Snapshot) Valid() bool {
	return s.pos < len(s.models)
}

func (s *Snapshot) Next() error {
	if !s.Valid() {
		return errors.Wrap(errors.ErrDatabase, "snapshot exhausted")
	}
	s.pos++
	return nil
}

func (s *Snapshot) Key() []byte {
	return s.current().Key
}

func (s *Snapshot) Value() []byte {
	return s.current().Value
}

func (s *Snapshot) Close() {
	s.models, s.pos = nil, 0
}

func (s *Snapshot) current() Model {
	if !s.Valid() {
		panic("snapshot exhausted")
	}
	return s.models[s.pos]
}

// void is the empty base under MemStore. Reads find nothing and writes
// reaching it are dropped.
type void struct{}

func (void) Get([]byte) ([]byte, error)                    { return nil, nil }
func (void) Has([]byte) (bool, error)                      { return false, nil }
func (void) Set(_, _ []byte) error                         { return nil }
func (void) Delete([]byte) error                           { return nil }
func (void) Iterator(_, _ []byte) (Iterator, error)        { return NewSnapshot(nil), nil }
func (void) ReverseIterator(_, _ []byte) (Iterator, error) { return NewSnapshot(nil), nil }
