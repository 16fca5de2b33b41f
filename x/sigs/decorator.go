package sigs

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// signatureVerifyCost is the gas charged per verified signature on check.
const signatureVerifyCost = 500

// RegisterQuery exposes the signer sequences under /auth.
func RegisterQuery(qr custody.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator verifies the signatures of a SignedTx and passes their signers
// down the chain, where Authenticate reads them. By default a transaction
// needs at least one signature. Transactions that are not SignedTx pass
// unauthenticated.
type Decorator struct {
	optional bool
}

var _ custody.Decorator = Decorator{}

func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs returns a Decorator that also accepts unsigned
// transactions.
func (d Decorator) AllowMissingSigs() Decorator {
	d.optional = true
	return d
}

func (d Decorator) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Checker) (*custody.CheckResult, error) {
	ctx, signers, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.GasAllocated += int64(len(signers)) * signatureVerifyCost
	return res, nil
}

func (d Decorator) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Deliverer) (*custody.DeliverResult, error) {
	ctx, _, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func (d Decorator) authenticate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (custody.Context, []custody.Address, error) {
	signed, ok := tx.(SignedTx)
	if !ok {
		return ctx, nil, nil
	}
	signers, err := VerifyTx(db, signed, custody.GetChainID(ctx))
	if err != nil {
		return nil, nil, errors.Wrap(err, "verify signatures")
	}
	if len(signers) == 0 && !d.optional {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), signers, nil
}
