package system

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/x"
)

func RegisterRoutes(r custody.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(&TransferMsg{}, TransferHandler{auth: auth, ctrl: ctrl})
}

// RegisterQuery serves accounts under "/accounts".
func RegisterQuery(qr custody.QueryRouter) {
	NewBucket().Register("accounts", qr)
}

// TransferHandler moves lamports out of an account its owner signed for.
type TransferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ custody.Handler = TransferHandler{}

func (h TransferHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: transferCost}, nil
}

func (h TransferHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Transfer(ctx, db, h.auth, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &custody.DeliverResult{}, nil
}

// validate only checks the signature. Ownership and balance are checked by
// the controller on deliver.
func (h TransferHandler) validate(ctx custody.Context, tx custody.Tx) (*TransferMsg, error) {
	var msg *TransferMsg
	switch err := custody.LoadMsg(tx, &msg); {
	case err != nil:
		return nil, errors.Wrap(err, "load msg")
	case !h.auth.HasAddress(ctx, msg.Source):
		return nil, errors.ErrUnauthorized.Newf("no signature of %s", msg.Source)
	}
	return msg, nil
}
