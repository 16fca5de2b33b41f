package app

import (
	"reflect"

	"github.com/iov-one/custody"
)

// Decorators is an ordered list of decorators waiting for the handler they
// wrap. The first decorator sees a transaction first.
//
//	app.ChainDecorators(
//		utils.NewLogging(),
//		utils.NewRecovery(),
//		sigs.NewDecorator(),
//		utils.NewSavepoint().OnDeliver(),
//	).WithHandler(router)
type Decorators struct {
	chain []custody.Decorator
}

// ChainDecorators skips nil entries, so optional decorators can be passed
// unconditionally.
func ChainDecorators(chain ...custody.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a new list with chain appended. The receiver is unchanged.
func (d Decorators) Chain(chain ...custody.Decorator) Decorators {
	out := make([]custody.Decorator, len(d.chain), len(d.chain)+len(chain))
	copy(out, d.chain)
	for _, dec := range chain {
		if !isNil(dec) {
			out = append(out, dec)
		}
	}
	return Decorators{chain: out}
}

func isNil(d custody.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler closes the chain over h.
func (d Decorators) WithHandler(h custody.Handler) custody.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = link{dec: d.chain[i], next: h}
	}
	return h
}

// link runs one decorator in front of the rest of the chain.
type link struct {
	dec  custody.Decorator
	next custody.Handler
}

var _ custody.Handler = link{}

func (l link) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	return l.dec.Check(ctx, db, tx, l.next)
}

func (l link) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	return l.dec.Deliver(ctx, db, tx, l.next)
}
