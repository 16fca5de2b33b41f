package system

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStore returns a store with storage priced at 2 lamports per byte and
// 10 bytes of overhead per account.
func newStore(t testing.TB) store.CacheableKVStore {
	t.Helper()
	db := store.MemStore()
	conf := &Configuration{
		Metadata:        &custody.Metadata{Schema: 1},
		LamportsPerByte: 2,
		AccountOverhead: 10,
	}
	require.NoError(t, gconf.Save(db, confPkg, conf))
	return db
}

func fund(t testing.TB, db custody.KVStore, addr custody.Address, lamports uint64) {
	t.Helper()
	acc := &Account{
		Metadata: &custody.Metadata{Schema: 1},
		Lamports: lamports,
		Owner:    ProgramID,
	}
	require.NoError(t, NewBucket().Put(db, addr, acc))
}

func TestRentExempt(t *testing.T) {
	db := newStore(t)
	rent, err := RentExempt(db, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), rent)
	rent, err = RentExempt(db, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(220), rent)

	_, err = RentExempt(db, ^uint64(0))
	assert.True(t, errors.ErrOverflow.Is(err))

	_, err = RentExempt(store.MemStore(), 1)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestCreateAndCloseAccount(t *testing.T) {
	payer := weavetest.NewAddress()
	addr := weavetest.NewAddress()
	owner := custody.ProgramID("test")

	db := newStore(t)
	fund(t, db, payer, 1000)
	ctrl := NewController(NewBucket())
	ctx := context.Background()

	// both the payer and the new account must consent
	err := ctrl.CreateAccount(ctx, db, &weavetest.Auth{Signer: payer}, payer, addr, 40, owner)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	err = ctrl.CreateAccount(ctx, db, &weavetest.Auth{Signer: addr}, payer, addr, 40, owner)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	auth := &weavetest.Auth{Signers: []custody.Address{payer, addr}}
	require.NoError(t, ctrl.CreateAccount(ctx, db, auth, payer, addr, 40, owner))

	acc, err := ctrl.Account(db, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), acc.Lamports)
	assert.Equal(t, owner, acc.Owner)
	assert.Equal(t, uint64(40), acc.Space)
	assertBalance(t, ctrl, db, payer, 900)

	err = ctrl.CreateAccount(ctx, db, auth, payer, addr, 40, owner)
	assert.True(t, errors.ErrDuplicate.Is(err))

	// the deposit cannot be spent
	err = ctrl.Transfer(ctx, db, auth, addr, payer, 1)
	assert.True(t, errors.ErrAmount.Is(err))

	err = ctrl.CloseAccount(ctx, db, &weavetest.Auth{Signer: payer}, addr, payer)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	require.NoError(t, ctrl.CloseAccount(ctx, db, auth, addr, payer))
	assertBalance(t, ctrl, db, payer, 1000)

	ok, err := ctrl.Exists(db, addr)
	require.NoError(t, err)
	assert.False(t, ok)

	err = ctrl.CloseAccount(ctx, db, auth, addr, payer)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestCreateAccountInsufficientFunds(t *testing.T) {
	payer := weavetest.NewAddress()
	addr := weavetest.NewAddress()
	auth := &weavetest.Auth{Signers: []custody.Address{payer, addr}}

	db := newStore(t)
	fund(t, db, payer, 99)
	ctrl := NewController(NewBucket())

	err := ctrl.CreateAccount(context.Background(), db, auth, payer, addr, 40, ProgramID)
	assert.True(t, errors.ErrAmount.Is(err))
	assertBalance(t, ctrl, db, payer, 99)
}

func TestCreateAccountOverTransferredLamports(t *testing.T) {
	owner := custody.ProgramID("test")

	cases := map[string]struct {
		prefund    uint64
		wantPaid   uint64
		wantLocked uint64
	}{
		"below the deposit": {
			prefund:    30,
			wantPaid:   70,
			wantLocked: 100,
		},
		"above the deposit": {
			prefund:    150,
			wantPaid:   0,
			wantLocked: 150,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			stranger := weavetest.NewAddress()
			payer := weavetest.NewAddress()
			addr := weavetest.NewAddress()
			ctx := context.Background()

			db := newStore(t)
			fund(t, db, payer, 1000)
			fund(t, db, stranger, 1000)
			ctrl := NewController(NewBucket())

			require.NoError(t, ctrl.Transfer(ctx, db, &weavetest.Auth{Signer: stranger}, stranger, addr, tc.prefund))

			auth := &weavetest.Auth{Signers: []custody.Address{payer, addr}}
			require.NoError(t, ctrl.CreateAccount(ctx, db, auth, payer, addr, 40, owner))
			assertBalance(t, ctrl, db, payer, 1000-tc.wantPaid)

			acc, err := ctrl.Account(db, addr)
			require.NoError(t, err)
			assert.Equal(t, tc.wantLocked, acc.Lamports)
			assert.Equal(t, owner, acc.Owner)
			assert.Equal(t, uint64(40), acc.Space)

			// once allocated the address is taken
			err = ctrl.CreateAccount(ctx, db, auth, payer, addr, 40, owner)
			assert.True(t, errors.ErrDuplicate.Is(err))

			require.NoError(t, ctrl.CloseAccount(ctx, db, auth, addr, payer))
			assertBalance(t, ctrl, db, payer, 1000-tc.wantPaid+tc.wantLocked)
		})
	}
}

func TestCreateAccountOverProgramAccount(t *testing.T) {
	payer := weavetest.NewAddress()
	addr := weavetest.NewAddress()
	auth := &weavetest.Auth{Signers: []custody.Address{payer, addr}}

	db := newStore(t)
	fund(t, db, payer, 1000)
	acc := &Account{
		Metadata: &custody.Metadata{Schema: 1},
		Lamports: 5,
		Owner:    custody.ProgramID("other"),
	}
	require.NoError(t, NewBucket().Put(db, addr, acc))
	ctrl := NewController(NewBucket())

	err := ctrl.CreateAccount(context.Background(), db, auth, payer, addr, 40, custody.ProgramID("test"))
	assert.True(t, errors.ErrDuplicate.Is(err))
	assertBalance(t, ctrl, db, payer, 1000)
}

func TestTransfer(t *testing.T) {
	src := weavetest.NewAddress()
	dst := weavetest.NewAddress()

	cases := map[string]struct {
		signer  custody.Address
		amount  uint64
		wantErr *errors.Error
		wantSrc uint64
		wantDst uint64
	}{
		"success": {
			signer:  src,
			amount:  30,
			wantSrc: 70,
			wantDst: 30,
		},
		"all funds": {
			signer:  src,
			amount:  100,
			wantSrc: 0,
			wantDst: 100,
		},
		"insufficient funds": {
			signer:  src,
			amount:  101,
			wantErr: errors.ErrAmount,
			wantSrc: 100,
		},
		"zero amount": {
			signer:  src,
			amount:  0,
			wantErr: errors.ErrAmount,
			wantSrc: 100,
		},
		"not signed by the source": {
			signer:  dst,
			amount:  1,
			wantErr: errors.ErrUnauthorized,
			wantSrc: 100,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := newStore(t)
			fund(t, db, src, 100)
			ctrl := NewController(NewBucket())

			auth := &weavetest.Auth{Signer: tc.signer}
			err := ctrl.Transfer(context.Background(), db, auth, src, dst, tc.amount)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %s", err)
			} else {
				assert.NoError(t, err)
			}
			assertBalance(t, ctrl, db, src, tc.wantSrc)
			assertBalance(t, ctrl, db, dst, tc.wantDst)
		})
	}
}

func assertBalance(t testing.TB, ctrl Controller, db custody.ReadOnlyKVStore, addr custody.Address, want uint64) {
	t.Helper()
	got, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
