package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
)

// ValidateGenesis dry runs the app_state of each genesis file through ini
// on an in memory store that is thrown away. It stops at the first file
// that would fail InitChain.
func ValidateGenesis(ini custody.Initializer, paths []string) error {
	for _, path := range paths {
		if err := dryRunGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func dryRunGenesis(ini custody.Initializer, path string) error {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	var genesis struct {
		ChainID  string          `json:"chain_id"`
		AppState custody.Options `json:"app_state"`
	}
	if err := json.Unmarshal(raw, &genesis); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis json: %s", err)
	}
	if !custody.IsValidChainID(genesis.ChainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", genesis.ChainID)
	}
	params := custody.GenesisParams{ChainID: genesis.ChainID}
	return ini.FromGenesis(genesis.AppState, params, store.MemStore())
}
