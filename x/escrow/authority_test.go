package escrow

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/weavetest"
	"github.com/iov-one/custody/weavetest/assert"
	"github.com/iov-one/custody/x/token"
)

func TestAuthorizeVault(t *testing.T) {
	maker := weavetest.NewAddress()
	addr, bump, err := RecordAddress(maker, 11)
	assert.Nil(t, err)

	record := func() *Record {
		return &Record{
			Metadata: &custody.Metadata{Schema: 1},
			Seed:     11,
			Maker:    maker,
			MintA:    weavetest.NewAddress(),
			MintB:    weavetest.NewAddress(),
			Receive:  50,
			Bump:     uint32(bump),
		}
	}
	vault := func(owner custody.Address) *token.Holding {
		return &token.Holding{
			Metadata: &custody.Metadata{Schema: 1},
			Mint:     weavetest.NewAddress(),
			Owner:    owner,
		}
	}

	t.Run("authorized", func(t *testing.T) {
		signer, err := AuthorizeVault(record(), addr, vault(addr))
		assert.Nil(t, err)
		assert.Equal(t, addr, signer.Address())
		assert.Equal(t, true, signer.HasAddress(nil, addr))
		assert.Equal(t, false, signer.HasAddress(nil, maker))
	})

	cases := map[string]struct {
		mutate     func(*Record)
		recordAddr custody.Address
		vault      *token.Holding
	}{
		"another seed": {
			mutate: func(r *Record) { r.Seed++ },
		},
		"another maker": {
			mutate: func(r *Record) { r.Maker = weavetest.NewAddress() },
		},
		"another bump": {
			mutate: func(r *Record) { r.Bump = (r.Bump + 1) % 256 },
		},
		"bump out of range": {
			mutate: func(r *Record) { r.Bump = 300 },
		},
		"record stored elsewhere": {
			recordAddr: weavetest.NewAddress(),
		},
		"vault owned by maker": {
			vault: vault(maker),
		},
		"no vault": {
			vault: &token.Holding{},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			rec := record()
			if tc.mutate != nil {
				tc.mutate(rec)
			}
			recordAddr := addr
			if tc.recordAddr != nil {
				recordAddr = tc.recordAddr
			}
			v := vault(addr)
			if tc.vault != nil {
				v = tc.vault
			}
			signer, err := AuthorizeVault(rec, recordAddr, v)
			assert.IsErr(t, ErrAuthority, err)
			assert.Nil(t, signer)
		})
	}
}
