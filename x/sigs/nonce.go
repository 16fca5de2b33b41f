package sigs

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// NextNonce is the sequence the next transaction of signer must be signed
// with. A signer that never signed starts at zero.
func NextNonce(db custody.ReadOnlyKVStore, signer custody.Address) (int64, error) {
	var user UserData
	err := NewBucket().One(db, signer, &user)
	switch {
	case errors.ErrNotFound.Is(err):
		return 0, nil
	case err != nil:
		return 0, errors.Wrap(err, "load signer")
	}
	return user.Sequence, nil
}
