package token

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type router map[string]custody.Handler

func (r router) Handle(m custody.Msg, h custody.Handler) {
	r[m.Path()] = h
}

func TestHandlers(t *testing.T) {
	f := newFixture(t)
	alice := weavetest.NewAddress()
	bob := weavetest.NewAddress()

	auth := &weavetest.CtxAuth{Key: "auth"}
	r := make(router)
	RegisterRoutes(r, auth, f.ctrl)

	meta := &custody.Metadata{Schema: 1}
	aliceHolding, err := AssociatedAddress(alice, f.mint)
	require.NoError(t, err)
	bobHolding, err := AssociatedAddress(bob, f.mint)
	require.NoError(t, err)

	steps := []struct {
		name    string
		signers []custody.Address
		msg     custody.Msg
		wantErr *errors.Error
	}{
		{
			name:    "create holding for alice",
			signers: []custody.Address{f.payer},
			msg:     &CreateHoldingMsg{Metadata: meta, Payer: f.payer, Owner: alice, Mint: f.mint},
		},
		{
			name:    "create holding for alice again",
			signers: []custody.Address{f.payer},
			msg:     &CreateHoldingMsg{Metadata: meta, Payer: f.payer, Owner: alice, Mint: f.mint},
			wantErr: errors.ErrDuplicate,
		},
		{
			name:    "create holding for alice idempotent",
			signers: []custody.Address{f.payer},
			msg:     &CreateHoldingMsg{Metadata: meta, Payer: f.payer, Owner: alice, Mint: f.mint, Idempotent: true},
		},
		{
			name:    "create holding for bob",
			signers: []custody.Address{f.payer},
			msg:     &CreateHoldingMsg{Metadata: meta, Payer: f.payer, Owner: bob, Mint: f.mint},
		},
		{
			name:    "mint without authority",
			signers: []custody.Address{alice},
			msg:     &MintToMsg{Metadata: meta, Mint: f.mint, Destination: aliceHolding, Amount: 100},
			wantErr: errors.ErrUnauthorized,
		},
		{
			name:    "mint to alice",
			signers: []custody.Address{f.auth},
			msg:     &MintToMsg{Metadata: meta, Mint: f.mint, Destination: aliceHolding, Amount: 100},
		},
		{
			name:    "transfer signed by bob",
			signers: []custody.Address{bob},
			msg:     &TransferMsg{Metadata: meta, Source: aliceHolding, Destination: bobHolding, Mint: f.mint, Amount: 40, Decimals: 2},
			wantErr: errors.ErrUnauthorized,
		},
		{
			name:    "transfer to bob",
			signers: []custody.Address{alice},
			msg:     &TransferMsg{Metadata: meta, Source: aliceHolding, Destination: bobHolding, Mint: f.mint, Amount: 40, Decimals: 2},
		},
		{
			name:    "close non empty holding",
			signers: []custody.Address{bob},
			msg:     &CloseHoldingMsg{Metadata: meta, Holding: bobHolding, Destination: bob},
			wantErr: errors.ErrState,
		},
		{
			name:    "transfer back to alice",
			signers: []custody.Address{bob},
			msg:     &TransferMsg{Metadata: meta, Source: bobHolding, Destination: aliceHolding, Mint: f.mint, Amount: 40, Decimals: 2},
		},
		{
			name:    "close bob holding",
			signers: []custody.Address{bob},
			msg:     &CloseHoldingMsg{Metadata: meta, Holding: bobHolding, Destination: bob},
		},
	}

	for _, step := range steps {
		ctx := auth.SetAddresses(context.Background(), step.signers...)
		h := r[step.msg.Path()]
		require.NotNil(t, h, step.name)
		tx := &weavetest.Tx{Msg: step.msg}

		_, err := h.Deliver(ctx, f.db, tx)
		if step.wantErr != nil {
			require.True(t, step.wantErr.Is(err), "%s: unexpected error: %s", step.name, err)
		} else {
			require.NoError(t, err, step.name)
		}
	}

	assert.Equal(t, uint64(100), f.amount(t, aliceHolding))
	_, err = f.ctrl.Holding(f.db, bobHolding)
	assert.True(t, errors.ErrNotFound.Is(err))
}
