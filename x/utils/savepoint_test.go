package utils

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/weavetest"
	"github.com/iov-one/custody/weavetest/assert"
)

// writeDecorator writes a value before calling the next handler.
type writeDecorator struct {
	key, value []byte
}

func (d writeDecorator) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Checker) (*custody.CheckResult, error) {
	if err := db.Set(d.key, d.value); err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

func (d writeDecorator) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Deliverer) (*custody.DeliverResult, error) {
	if err := db.Set(d.key, d.value); err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func TestSavepoint(t *testing.T) {
	// always write ok, ov before calling functions
	ok, ov := []byte("demo"), []byte("data")
	// some key, value to try to write
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}

	cases := map[string]struct {
		save    custody.Decorator
		handler custody.Handler
		check   bool
		wantErr *errors.Error
		written [][]byte
		missing [][]byte
	}{
		"savepoint not active on check": {
			save:    NewSavepoint(),
			handler: &weavetest.WriteHandler{Key: nk, Value: nv, Err: errors.ErrState},
			check:   true,
			wantErr: errors.ErrState,
			written: [][]byte{ok, nk},
		},
		"savepoint active on check": {
			save:    NewSavepoint().OnCheck(),
			handler: &weavetest.WriteHandler{Key: nk, Value: nv, Err: errors.ErrState},
			check:   true,
			wantErr: errors.ErrState,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint active on deliver": {
			save:    NewSavepoint().OnDeliver(),
			handler: &weavetest.WriteHandler{Key: nk, Value: nv, Err: errors.ErrAmount},
			wantErr: errors.ErrAmount,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"double activation keeps both": {
			save:    NewSavepoint().OnDeliver().OnCheck(),
			handler: &weavetest.WriteHandler{Key: nk, Value: nv, Err: errors.ErrAmount},
			wantErr: errors.ErrAmount,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"check savepoint does not affect deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: &weavetest.WriteHandler{Key: nk, Value: nv, Err: errors.ErrAmount},
			wantErr: errors.ErrAmount,
			written: [][]byte{ok, nk},
		},
		"success is written": {
			save:    NewSavepoint().OnCheck().OnDeliver(),
			handler: &weavetest.WriteHandler{Key: nk, Value: nv},
			written: [][]byte{ok, nk},
		},
		"without savepoint every write stays": {
			save:    writeDecorator{key: []byte{1}, value: []byte{2}},
			handler: &weavetest.WriteHandler{Key: nk, Value: nv, Err: errors.ErrAmount},
			wantErr: errors.ErrAmount,
			written: [][]byte{ok, nk, {1}},
		},
		"panic is not written": {
			save:    NewSavepoint().OnDeliver(),
			handler: weavetest.Decorate(weavetest.PanicHandler{Value: "boom"}, NewRecovery()),
			wantErr: errors.ErrPanic,
			written: [][]byte{ok},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			kv := store.MemStore()
			assert.Nil(t, kv.Set(ok, ov))

			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, kv, nil, tc.handler)
			} else {
				_, err = tc.save.Deliver(ctx, kv, nil, tc.handler)
			}
			assert.IsErr(t, tc.wantErr, err)

			for _, k := range tc.written {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, true, has)
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, false, has)
			}
		})
	}
}
