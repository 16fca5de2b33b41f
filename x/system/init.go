package system

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
)

const optKey = "system"

// GenesisAccount is used to parse the json from genesis file.
// use custody.Address, so address in hex, not base64
type GenesisAccount struct {
	Address  custody.Address `json:"address"`
	Lamports uint64          `json:"lamports"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ custody.Initializer = Initializer{}

// FromGenesis stores the storage price configuration and the initial
// wallet balances.
func (Initializer) FromGenesis(opts custody.Options, params custody.GenesisParams, kv custody.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, confPkg, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for i, a := range accts {
		if err := a.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		acc := &Account{
			Metadata: &custody.Metadata{Schema: 1},
			Lamports: a.Lamports,
			Owner:    ProgramID,
		}
		if err := bucket.Put(kv, a.Address, acc); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	return nil
}
