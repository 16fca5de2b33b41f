package orm

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// bucketQuery answers queries by primary key or by primary key prefix.
type bucketQuery struct {
	prefix []byte
}

var _ custody.QueryHandler = bucketQuery{}

func (q bucketQuery) Query(db custody.ReadOnlyKVStore, mod string, data []byte) ([]custody.Model, error) {
	key := append(append([]byte{}, q.prefix...), data...)
	switch mod {
	case custody.KeyQueryMod:
		val, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		if val == nil {
			return nil, nil
		}
		return []custody.Model{custody.Pair(key, val)}, nil
	case custody.PrefixQueryMod:
		itr, err := db.Iterator(prefixRange(key))
		if err != nil {
			return nil, err
		}
		return ConsumeIterator(itr)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

// indexQuery answers queries by an exact index value, returning the
// referenced models.
type indexQuery struct {
	idx    *index
	prefix []byte
}

var _ custody.QueryHandler = indexQuery{}

func (q indexQuery) Query(db custody.ReadOnlyKVStore, mod string, data []byte) ([]custody.Model, error) {
	if mod != custody.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unsupported mod: %s", mod)
	}
	refs, err := q.idx.refs(db, data)
	if err != nil {
		return nil, err
	}
	res := make([]custody.Model, 0, len(refs))
	for _, pk := range refs {
		key := append(append([]byte{}, q.prefix...), pk...)
		val, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		if val == nil {
			return nil, errors.Wrapf(errors.ErrHuman, "index %q references missing %X", q.idx.name, pk)
		}
		res = append(res, custody.Pair(key, val))
	}
	return res, nil
}

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr custody.Iterator) ([]custody.Model, error) {
	defer itr.Close()

	var res []custody.Model
	for itr.Valid() {
		res = append(res, custody.Pair(itr.Key(), itr.Value()))
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// prefixRange turns a prefix into (start, end) to create
// an iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed?....
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}

	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}
