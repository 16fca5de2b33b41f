package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// GenesisFile is where tendermint reads the genesis, under the home
// directory.
const GenesisFile = "config/genesis.json"

// GenOptions builds the app_state of the genesis from the remaining init
// arguments.
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisDoc keeps every top level field of a genesis file untouched.
// Only app_state is rewritten.
type GenesisDoc map[string]json.RawMessage

// InitCmd writes the app_state built by gen into the genesis file. A
// missing file is created for the chain ID given as first argument.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	path := filepath.Join(home, GenesisFile)
	var (
		doc GenesisDoc
		err error
	)
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		if len(args) == 0 {
			return errors.Wrap(errors.ErrEmpty, "chain id needed for a new genesis")
		}
		if doc, err = newGenesisDoc(args[0]); err != nil {
			return err
		}
		args = args[1:]
		logger.Info("Creating genesis", "path", path)
	} else {
		if doc, err = readGenesisDoc(path); err != nil {
			return err
		}
		logger.Info("Updating genesis", "path", path)
	}

	state, err := gen(args)
	if err != nil {
		return err
	}
	doc["app_state"] = state
	return writeGenesisDoc(path, doc)
}

func newGenesisDoc(chainID string) (GenesisDoc, error) {
	if !custody.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	id, _ := json.Marshal(chainID)
	at, _ := json.Marshal(time.Now().UTC())
	return GenesisDoc{"chain_id": id, "genesis_time": at}, nil
}

func readGenesisDoc(path string) (GenesisDoc, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	var doc GenesisDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return doc, nil
}

func writeGenesisDoc(path string, doc GenesisDoc) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode genesis")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return ioutil.WriteFile(path, raw, 0600)
}
