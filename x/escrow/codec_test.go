package escrow

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/weavetest"
	"github.com/iov-one/custody/weavetest/assert"
)

func TestCodec(t *testing.T) {
	meta := &custody.Metadata{Schema: 1}
	maker, mintA, mintB := weavetest.NewAddress(), weavetest.NewAddress(), weavetest.NewAddress()
	escrow, vault := weavetest.NewAddress(), weavetest.NewAddress()

	cases := map[string]struct {
		obj   custody.Persistent
		blank custody.Persistent
	}{
		"record": {
			obj:   &Record{Metadata: meta, Seed: 42, Maker: maker, MintA: mintA, MintB: mintB, Receive: 50, Bump: 254},
			blank: &Record{},
		},
		"configuration": {
			obj:   &Configuration{Metadata: meta, RecordSpace: 121},
			blank: &Configuration{},
		},
		"open": {
			obj: &OpenMsg{Metadata: meta, Maker: maker, MintA: mintA, MintB: mintB,
				MakerHoldingA: weavetest.NewAddress(), Escrow: escrow, Vault: vault, Seed: 7, Amount: 1000, Receive: 50},
			blank: &OpenMsg{},
		},
		"settle": {
			obj: &SettleMsg{Metadata: meta, Taker: weavetest.NewAddress(), Maker: maker, MintA: mintA, MintB: mintB,
				TakerHoldingA: weavetest.NewAddress(), TakerHoldingB: weavetest.NewAddress(),
				MakerHoldingB: weavetest.NewAddress(), Escrow: escrow, Vault: vault},
			blank: &SettleMsg{},
		},
		"cancel": {
			obj:   &CancelMsg{Metadata: meta, Maker: maker, MintA: mintA, MakerHoldingA: weavetest.NewAddress(), Escrow: escrow, Vault: vault},
			blank: &CancelMsg{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			raw, err := tc.obj.Marshal()
			assert.Nil(t, err)
			assert.Nil(t, tc.blank.Unmarshal(raw))
			assert.Equal(t, tc.obj, tc.blank)
		})
	}
}

func TestRecordBucketRoundTrip(t *testing.T) {
	db := store.MemStore()
	b := NewBucket()

	maker := weavetest.NewAddress()
	addr, bump, err := RecordAddress(maker, 3)
	assert.Nil(t, err)
	rec := &Record{
		Metadata: &custody.Metadata{Schema: 1},
		Seed:     3,
		Maker:    maker,
		MintA:    weavetest.NewAddress(),
		MintB:    weavetest.NewAddress(),
		Receive:  50,
		Bump:     uint32(bump),
	}
	assert.Nil(t, b.Put(db, addr, rec))

	var got Record
	assert.Nil(t, b.One(db, addr, &got))
	assert.Equal(t, rec, &got)

	var byMaker []*Record
	_, err = b.ByIndex(db, "maker", maker, &byMaker)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(byMaker))
}
