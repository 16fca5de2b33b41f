package token

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/weavetest"
	"github.com/iov-one/custody/x/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	mint := weavetest.NewAddress()
	authority := weavetest.NewAddress()
	owner := weavetest.NewAddress()

	genesis := fmt.Sprintf(`
	{
		"conf": {
			"system": {"metadata": {"schema": 1}, "lamports_per_byte": 1, "account_overhead": 128}
		},
		"token": {
			"mints": [{"address": %q, "decimals": 6, "authority": %q}],
			"holdings": [{"owner": %q, "mint": %q, "amount": 1000}]
		}
	}`, mint, authority, owner, mint)
	var opts custody.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	require.NoError(t, system.Initializer{}.FromGenesis(opts, custody.GenesisParams{}, db))
	require.NoError(t, Initializer{}.FromGenesis(opts, custody.GenesisParams{}, db))

	sys := system.NewController(system.NewBucket())
	ctrl := NewController(sys)

	m, err := ctrl.Mint(db, mint)
	require.NoError(t, err)
	assert.Equal(t, uint32(6), m.Decimals)
	assert.Equal(t, uint64(1000), m.Supply)
	assert.Equal(t, authority, m.MintAuthority)

	addr, err := AssociatedAddress(owner, mint)
	require.NoError(t, err)
	h, err := ctrl.Holding(db, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), h.Amount)

	deposit, err := sys.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(128+HoldingSpace), deposit)
}
