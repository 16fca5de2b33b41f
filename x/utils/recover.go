package utils

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// Recovery turns a panic below it into an ErrPanic result and logs it, so
// a faulty message fails alone instead of halting the node.
type Recovery struct{}

var _ custody.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Checker) (res *custody.CheckResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			res, err = nil, panicked(ctx, tx, p)
		}
	}()
	return next.Check(ctx, db, tx)
}

func (Recovery) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Deliverer) (res *custody.DeliverResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			res, err = nil, panicked(ctx, tx, p)
		}
	}()
	return next.Deliver(ctx, db, tx)
}

func panicked(ctx custody.Context, tx custody.Tx, p interface{}) error {
	err := errors.Wrapf(errors.ErrPanic, "%v", p)
	custody.GetLogger(ctx).Error("Transaction panicked", "path", msgPath(tx), "err", err)
	return err
}
