package orm

import (
	"bytes"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

const indexPrefix = "_i."

// index maintains a mapping from an index value to the primary keys of all
// models that produce it.
type index struct {
	name    string
	prefix  []byte
	indexer IndexFn
	unique  bool
}

func newIndex(bucket, name string, indexer IndexFn, unique bool) *index {
	return &index{
		name:    name,
		prefix:  []byte(indexPrefix + bucket + "_" + name + ":"),
		indexer: indexer,
		unique:  unique,
	}
}

func (i *index) dbKey(value []byte) []byte {
	return append(append(make([]byte, 0, len(i.prefix)+len(value)), i.prefix...), value...)
}

// update moves the primary key from the previous index value to the next
// one. Either model can be nil for an insert or a delete.
func (i *index) update(db custody.KVStore, pk []byte, prev, next Model) error {
	prevVal, err := i.value(prev)
	if err != nil {
		return err
	}
	nextVal, err := i.value(next)
	if err != nil {
		return err
	}
	if prev != nil && next != nil && bytes.Equal(prevVal, nextVal) {
		return nil
	}
	if prevVal != nil {
		if err := i.remove(db, prevVal, pk); err != nil {
			return err
		}
	}
	if nextVal != nil {
		if err := i.insert(db, nextVal, pk); err != nil {
			return err
		}
	}
	return nil
}

func (i *index) value(m Model) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return i.indexer(m)
}

func (i *index) refs(db custody.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	ref, err := i.load(db, value)
	if err != nil {
		return nil, err
	}
	return ref.Refs, nil
}

func (i *index) load(db custody.ReadOnlyKVStore, value []byte) (*MultiRef, error) {
	raw, err := db.Get(i.dbKey(value))
	if err != nil {
		return nil, errors.Wrap(err, "cannot load index")
	}
	var ref MultiRef
	if raw == nil {
		return &ref, nil
	}
	if err := ref.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal index")
	}
	return &ref, nil
}

func (i *index) insert(db custody.KVStore, value, pk []byte) error {
	ref, err := i.load(db, value)
	if err != nil {
		return err
	}
	if i.unique && len(ref.Refs) > 0 {
		return errors.Wrapf(errors.ErrDuplicate, "unique index %q: %X", i.name, value)
	}
	if err := ref.Add(pk); err != nil {
		return err
	}
	return i.save(db, value, ref)
}

func (i *index) remove(db custody.KVStore, value, pk []byte) error {
	ref, err := i.load(db, value)
	if err != nil {
		return err
	}
	if err := ref.Remove(pk); err != nil {
		return err
	}
	if len(ref.Refs) == 0 {
		return db.Delete(i.dbKey(value))
	}
	return i.save(db, value, ref)
}

func (i *index) save(db custody.KVStore, value []byte, ref *MultiRef) error {
	raw, err := ref.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal index")
	}
	return db.Set(i.dbKey(value), raw)
}
