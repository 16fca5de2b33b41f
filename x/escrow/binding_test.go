package escrow

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/weavetest"
	"github.com/iov-one/custody/weavetest/assert"
	"github.com/iov-one/custody/x/token"
)

func TestCheckBinding(t *testing.T) {
	maker := weavetest.NewAddress()
	addr, bump, err := RecordAddress(maker, 5)
	assert.Nil(t, err)
	rec := &Record{
		Metadata: &custody.Metadata{Schema: 1},
		Seed:     5,
		Maker:    maker,
		MintA:    weavetest.NewAddress(),
		MintB:    weavetest.NewAddress(),
		Receive:  50,
		Bump:     uint32(bump),
	}
	vaultAddr, err := token.AssociatedAddress(addr, rec.MintA)
	assert.Nil(t, err)
	vault := &token.Holding{
		Metadata: &custody.Metadata{Schema: 1},
		Mint:     rec.MintA,
		Owner:    addr,
		Amount:   1000,
	}
	full := Binding{
		Maker:  maker,
		MintA:  rec.MintA,
		MintB:  rec.MintB,
		Escrow: addr,
		Vault:  vaultAddr,
	}
	stranger := weavetest.NewAddress()

	cases := map[string]struct {
		binding   Binding
		vault     *token.Holding
		wantField string
	}{
		"all presented": {
			binding: full,
			vault:   vault,
		},
		"nothing presented": {},
		"maker": {
			binding:   Binding{Maker: stranger},
			wantField: "Maker",
		},
		"mint a": {
			binding:   Binding{Maker: maker, MintA: rec.MintB},
			wantField: "MintA",
		},
		"mint b": {
			binding:   Binding{MintB: rec.MintA},
			wantField: "MintB",
		},
		"escrow": {
			binding:   Binding{Escrow: stranger},
			wantField: "Escrow",
		},
		"vault address": {
			binding:   Binding{Vault: stranger},
			wantField: "Vault",
		},
		"vault owner": {
			binding: full,
			vault: &token.Holding{
				Metadata: &custody.Metadata{Schema: 1},
				Mint:     rec.MintA,
				Owner:    maker,
			},
			wantField: "Vault.Owner",
		},
		"vault mint": {
			binding: full,
			vault: &token.Holding{
				Metadata: &custody.Metadata{Schema: 1},
				Mint:     rec.MintB,
				Owner:    addr,
			},
			wantField: "Vault.Mint",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			m := CheckBinding(rec, addr, tc.binding, tc.vault)
			if tc.wantField == "" {
				if m != nil {
					t.Fatalf("unexpected mismatch: %s", m)
				}
				return
			}
			if m == nil {
				t.Fatalf("want %q mismatch", tc.wantField)
			}
			assert.Equal(t, tc.wantField, m.Field())
			assert.IsErr(t, ErrBinding, m)
			assert.FieldError(t, m, tc.wantField, ErrBinding)

			// A wrapped mismatch keeps its classification.
			wrapped := errors.Wrap(m, "settle")
			assert.IsErr(t, ErrBinding, wrapped)
			code, _ := errors.ABCIInfo(wrapped, false)
			assert.Equal(t, ErrBinding.ABCICode(), code)
		})
	}
}
