package system

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferHandler(t *testing.T) {
	alice := weavetest.NewAddress()
	bob := weavetest.NewAddress()

	cases := map[string]struct {
		signer       custody.Address
		msg          *TransferMsg
		wantCheckErr *errors.Error
		wantErr      *errors.Error
		wantAlice    uint64
		wantBob      uint64
	}{
		"success": {
			signer: alice,
			msg: &TransferMsg{
				Metadata:    &custody.Metadata{Schema: 1},
				Source:      alice,
				Destination: bob,
				Amount:      40,
			},
			wantAlice: 60,
			wantBob:   40,
		},
		"missing signature": {
			signer: bob,
			msg: &TransferMsg{
				Metadata:    &custody.Metadata{Schema: 1},
				Source:      alice,
				Destination: bob,
				Amount:      40,
			},
			wantCheckErr: errors.ErrUnauthorized,
			wantErr:      errors.ErrUnauthorized,
			wantAlice:    100,
		},
		"invalid message": {
			signer: alice,
			msg: &TransferMsg{
				Metadata:    &custody.Metadata{Schema: 1},
				Source:      alice,
				Destination: bob,
			},
			wantCheckErr: errors.ErrAmount,
			wantErr:      errors.ErrAmount,
			wantAlice:    100,
		},
		"insufficient funds is detected on deliver": {
			signer: alice,
			msg: &TransferMsg{
				Metadata:    &custody.Metadata{Schema: 1},
				Source:      alice,
				Destination: bob,
				Amount:      1000,
			},
			wantErr:   errors.ErrAmount,
			wantAlice: 100,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := newStore(t)
			fund(t, db, alice, 100)
			ctrl := NewController(NewBucket())
			h := TransferHandler{auth: &weavetest.Auth{Signer: tc.signer}, ctrl: ctrl}
			tx := &weavetest.Tx{Msg: tc.msg}

			cache := db.CacheWrap()
			_, err := h.Check(context.Background(), cache, tx)
			cache.Discard()
			if tc.wantCheckErr != nil {
				assert.True(t, tc.wantCheckErr.Is(err), "unexpected check error: %s", err)
			} else {
				require.NoError(t, err)
			}

			_, err = h.Deliver(context.Background(), db, tx)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "unexpected deliver error: %s", err)
			} else {
				require.NoError(t, err)
			}
			assertBalance(t, ctrl, db, alice, tc.wantAlice)
			assertBalance(t, ctrl, db, bob, tc.wantBob)
		})
	}
}
