package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/crypto"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type router map[string]custody.Handler

func (r router) Handle(m custody.Msg, h custody.Handler) {
	r[m.Path()] = h
}

func TestBumpSequence(t *testing.T) {
	bobKey := crypto.GenPrivKeyEd25519()
	bob := bobKey.PublicKey().Address()
	aliceKey := crypto.GenPrivKeyEd25519()
	alice := aliceKey.PublicKey().Address()

	cases := map[string]struct {
		signer    custody.Address
		increment uint32
		initial   int64
		wantErr   *errors.Error
		wantSeq   int64
	}{
		"increment by one": {
			signer:    bob,
			increment: 1,
			initial:   5,
			wantSeq:   5,
		},
		"increment by many": {
			signer:    bob,
			increment: 100,
			initial:   5,
			wantSeq:   104,
		},
		"zero increment is invalid": {
			signer:    bob,
			increment: 0,
			initial:   5,
			wantErr:   errors.ErrMsg,
			wantSeq:   5,
		},
		"increment too big": {
			signer:    bob,
			increment: maxSequenceIncrement + 1,
			initial:   5,
			wantErr:   errors.ErrMsg,
			wantSeq:   5,
		},
		"past the largest sequence": {
			signer:    bob,
			increment: 20,
			initial:   maxSequence - 10,
			wantErr:   errors.ErrOverflow,
			wantSeq:   maxSequence - 10,
		},
		"signer without sequence": {
			signer:    alice,
			increment: 1,
			initial:   5,
			wantErr:   errors.ErrNotFound,
			wantSeq:   5,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			b := NewBucket()
			user := &UserData{
				Metadata: &custody.Metadata{Schema: 1},
				Pubkey:   bobKey.PublicKey(),
				Sequence: tc.initial,
			}
			require.NoError(t, b.Put(db, bob, user))

			r := make(router)
			auth := &weavetest.Auth{Signer: tc.signer}
			RegisterRoutes(r, auth)
			h := r[pathBumpSequenceMsg]

			tx := &weavetest.Tx{Msg: &BumpSequenceMsg{
				Metadata:  &custody.Metadata{Schema: 1},
				Increment: tc.increment,
			}}
			ctx := context.Background()
			cache := db.CacheWrap()
			_, err := h.Check(ctx, cache, tx)
			cache.Discard()
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "unexpected check error: %s", err)
			} else {
				assert.NoError(t, err)
			}

			_, err = h.Deliver(ctx, db, tx)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "unexpected deliver error: %s", err)
			} else {
				assert.NoError(t, err)
			}

			seq, err := NextNonce(db, bob)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSeq, seq)
		})
	}
}
