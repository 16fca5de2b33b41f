package custody

import (
	"encoding/json"

	"github.com/iov-one/custody/errors"
)

// Checker decides whether a transaction may enter the mempool. It must
// leave no lasting state behind.
type Checker interface {
	Check(ctx Context, db KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer executes a transaction included in a block.
type Deliverer interface {
	Deliver(ctx Context, db KVStore, tx Tx) (*DeliverResult, error)
}

// Handler processes the messages of one path, such as escrow/settle.
type Handler interface {
	Checker
	Deliverer
}

// Decorator runs around the rest of a handler chain. Signature checks,
// savepoints and logging are decorators.
type Decorator interface {
	Check(ctx Context, db KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, db KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds message paths to handlers.
type Registry interface {
	Handle(m Msg, h Handler)
}

// Options is the app_state of the genesis file, one raw JSON section per
// extension.
type Options map[string]json.RawMessage

// ReadOptions decodes the section key into obj. A missing section leaves
// obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis %q: %s", key, err)
	}
	return nil
}

// Initializer loads the genesis state of one extension.
type Initializer interface {
	FromGenesis(opts Options, params GenesisParams, kv KVStore) error
}

// GenesisParams carries the genesis values that are not part of app_state.
type GenesisParams struct {
	ChainID string
}
