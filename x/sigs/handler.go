package sigs

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/x"
)

func RegisterRoutes(r custody.Registry, auth x.Authenticator) {
	r.Handle(&BumpSequenceMsg{}, bumpSequenceHandler{users: NewBucket(), auth: auth})
}

// bumpSequenceHandler moves the sequence of the signer forward, voiding
// any transaction signed for the skipped sequences.
type bumpSequenceHandler struct {
	users orm.ModelBucket
	auth  x.Authenticator
}

func (h bumpSequenceHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.load(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{}, nil
}

func (h bumpSequenceHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	user, msg, err := h.load(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// Verifying the signature of this very transaction already added one.
	if extra := int64(msg.Increment) - 1; extra > 0 {
		user.Sequence += extra
		if err := h.users.Put(db, user.Pubkey.Address(), user); err != nil {
			return nil, errors.Wrap(err, "save user")
		}
	}
	return &custody.DeliverResult{}, nil
}

func (h bumpSequenceHandler) load(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*UserData, *BumpSequenceMsg, error) {
	var msg *BumpSequenceMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	var user UserData
	if err := h.users.One(db, signer, &user); err != nil {
		return nil, nil, errors.Wrap(err, "signer sequence")
	}
	if user.Sequence+int64(msg.Increment)-1 > maxSequence {
		return nil, nil, errors.Wrap(errors.ErrOverflow, "signer sequence")
	}
	return &user, msg, nil
}
