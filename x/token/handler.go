package token

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/x"
)

const (
	createMintCost    int64 = 100
	mintToCost        int64 = 10
	createHoldingCost int64 = 50
	transferCost      int64 = 10
	closeHoldingCost  int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r custody.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(&CreateMintMsg{}, CreateMintHandler{auth: auth, ctrl: ctrl})
	r.Handle(&MintToMsg{}, MintToHandler{auth: auth, ctrl: ctrl})
	r.Handle(&CreateHoldingMsg{}, CreateHoldingHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferMsg{}, TransferHandler{auth: auth, ctrl: ctrl})
	r.Handle(&CloseHoldingMsg{}, CloseHoldingHandler{auth: auth, ctrl: ctrl})
}

// RegisterQuery will register the buckets as "/mints" and "/holdings"
func RegisterQuery(qr custody.QueryRouter) {
	NewMintBucket().Register("mints", qr)
	NewHoldingBucket().Register("holdings", qr)
}

// CreateMintHandler allocates mints.
type CreateMintHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ custody.Handler = CreateMintHandler{}

func (h CreateMintHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: createMintCost}, nil
}

func (h CreateMintHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.CreateMint(ctx, db, h.auth, msg.Payer, msg.Mint, msg.Decimals, msg.MintAuthority); err != nil {
		return nil, err
	}
	return &custody.DeliverResult{Data: msg.Mint}, nil
}

func (h CreateMintHandler) validate(ctx custody.Context, tx custody.Tx) (*CreateMintMsg, error) {
	var msg *CreateMintMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Payer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "payer signature missing")
	}
	if !h.auth.HasAddress(ctx, msg.Mint) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "mint signature missing")
	}
	return msg, nil
}

// MintToHandler issues new units of a mint.
type MintToHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ custody.Handler = MintToHandler{}

func (h MintToHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: mintToCost}, nil
}

func (h MintToHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MintTo(ctx, db, h.auth, msg.Mint, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &custody.DeliverResult{}, nil
}

func (h MintToHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*MintToMsg, error) {
	var msg *MintToMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	m, err := h.ctrl.Mint(db, msg.Mint)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, m.MintAuthority) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "mint authority signature missing")
	}
	return msg, nil
}

// CreateHoldingHandler allocates associated holdings.
type CreateHoldingHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ custody.Handler = CreateHoldingHandler{}

func (h CreateHoldingHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: createHoldingCost}, nil
}

func (h CreateHoldingHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	create := h.ctrl.CreateHolding
	if msg.Idempotent {
		create = h.ctrl.CreateHoldingIdempotent
	}
	addr, err := create(ctx, db, h.auth, msg.Payer, msg.Owner, msg.Mint)
	if err != nil {
		return nil, err
	}
	return &custody.DeliverResult{Data: addr}, nil
}

func (h CreateHoldingHandler) validate(ctx custody.Context, tx custody.Tx) (*CreateHoldingMsg, error) {
	var msg *CreateHoldingMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Payer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "payer signature missing")
	}
	return msg, nil
}

// TransferHandler moves an amount between holdings.
type TransferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ custody.Handler = TransferHandler{}

func (h TransferHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: transferCost}, nil
}

func (h TransferHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.TransferChecked(ctx, db, h.auth, msg.Source, msg.Destination, msg.Mint, msg.Amount, msg.Decimals); err != nil {
		return nil, err
	}
	return &custody.DeliverResult{}, nil
}

func (h TransferHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*TransferMsg, error) {
	var msg *TransferMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	src, err := h.ctrl.Holding(db, msg.Source)
	if err != nil {
		return nil, errors.Wrap(err, "source")
	}
	if !h.auth.HasAddress(ctx, src.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source owner signature missing")
	}
	return msg, nil
}

// CloseHoldingHandler releases empty holdings.
type CloseHoldingHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ custody.Handler = CloseHoldingHandler{}

func (h CloseHoldingHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: closeHoldingCost}, nil
}

func (h CloseHoldingHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.CloseHolding(ctx, db, h.auth, msg.Holding, msg.Destination); err != nil {
		return nil, err
	}
	return &custody.DeliverResult{}, nil
}

func (h CloseHoldingHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*CloseHoldingMsg, error) {
	var msg *CloseHoldingMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	holding, err := h.ctrl.Holding(db, msg.Holding)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, holding.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return msg, nil
}
