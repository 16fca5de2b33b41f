package app

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// ChainInitializers runs inits in order and stops at the first failure.
// The token genesis needs the system accounts, so order matters.
func ChainInitializers(inits ...custody.Initializer) custody.Initializer {
	return initializers(inits)
}

type initializers []custody.Initializer

func (all initializers) FromGenesis(opts custody.Options, params custody.GenesisParams, kv custody.KVStore) error {
	for _, i := range all {
		if err := i.FromGenesis(opts, params, kv); err != nil {
			return err
		}
	}
	return nil
}

// chainIDKey sits under the "_cu:" prefix, outside of any bucket.
var chainIDKey = []byte("_cu:chainID")

// loadChainID is empty before genesis.
func loadChainID(kv custody.ReadOnlyKVStore) (string, error) {
	raw, err := kv.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID records the chain ID once, at genesis.
func saveChainID(kv custody.KVStore, chainID string) error {
	if !custody.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	switch set, err := kv.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case set:
		return errors.Wrap(errors.ErrImmutable, "chain id is set at genesis only")
	}
	return errors.Wrap(kv.Set(chainIDKey, []byte(chainID)), "save chain id")
}
