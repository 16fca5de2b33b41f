package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp implements the ABCI calls that need no transaction handling:
// info, genesis, queries, block boundaries and commit. BaseApp embeds it
// and adds CheckTx and DeliverTx.
//
// The steps that take no user input cannot fail gracefully, so an error in
// Info, InitChain or Commit panics and stops the node.
type StoreApp struct {
	name        string
	logger      log.Logger
	ledger      *ledger
	initializer custody.Initializer
	queries     custody.QueryRouter

	// chainID is set once, either from the store on restart or by
	// InitChain.
	chainID string
	// base carries what holds for the whole life of the app: the
	// logger and the chain id. block adds height and time and is
	// replaced at every BeginBlock.
	base  custody.Context
	block custody.Context
}

// NewStoreApp opens db at its latest version. It panics when the stored
// state cannot be loaded.
func NewStoreApp(name string, db custody.CommitKVStore, queries custody.QueryRouter, ctx custody.Context) *StoreApp {
	l, err := openLedger(db)
	if err != nil {
		panic(err)
	}
	s := &StoreApp{name: name, ledger: l, queries: queries, base: ctx}
	s.WithLogger(log.NewNopLogger())

	if s.chainID, err = loadChainID(l.deliver); err != nil {
		panic(err)
	}
	if s.chainID != "" {
		s.base = custody.WithChainID(s.base, s.chainID)
	}
	head, err := l.head()
	if err != nil {
		panic(err)
	}
	s.block = custody.WithHeight(s.base, head.Version)
	return s
}

func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// WithInit sets the genesis loader run by InitChain.
func (s *StoreApp) WithInit(init custody.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger sets the logger of the app and of every context it creates.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.base = custody.WithLogger(s.base, logger)
	return s
}

func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// BlockContext is the context of the block being processed.
func (s *StoreApp) BlockContext() custody.Context {
	return s.block
}

func (s *StoreApp) DeliverStore() custody.CacheableKVStore {
	return s.ledger.deliver
}

func (s *StoreApp) CheckStore() custody.CacheableKVStore {
	return s.ledger.check
}

// Info reports the last committed height and app hash, which tendermint
// uses to replay missing blocks on start.
func (s *StoreApp) Info(abci.RequestInfo) abci.ResponseInfo {
	head, err := s.ledger.head()
	if err != nil {
		panic(err)
	}
	s.logger.Info("Info synced", "height", head.Version, "hash", fmt.Sprintf("%X", head.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		Version:          custody.Version(),
		LastBlockHeight:  head.Version,
		LastBlockAppHash: head.Hash,
	}
}

func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "Not Implemented"}
}

// InitChain loads the genesis app state. It runs once per chain, a second
// call panics.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.genesis(req.ChainId, req.AppStateBytes); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

func (s *StoreApp) genesis(chainID string, state []byte) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "chain %q already initialized", s.chainID)
	}
	if len(state) == 0 {
		return errors.Wrap(errors.ErrEmpty, "genesis has no app_state")
	}
	var opts custody.Options
	if err := json.Unmarshal(state, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := saveChainID(s.ledger.deliver, chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.base = custody.WithChainID(s.base, chainID)
	if s.initializer == nil {
		return nil
	}
	return s.initializer.FromGenesis(opts, custody.GenesisParams{ChainID: chainID}, s.ledger.deliver)
}

func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := custody.WithHeight(s.base, req.Header.GetHeight())
	s.block = custody.WithBlockTime(ctx, req.Header.GetTime())
	return abci.ResponseBeginBlock{}
}

// EndBlock never changes the validator set.
func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}

func (s *StoreApp) Commit() abci.ResponseCommit {
	id, err := s.ledger.commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("Commit synced", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

/*
Query reads the latest committed state.

The path names a registered bucket such as /escrows, or one of its indexes
such as /escrows/maker. A ?prefix suffix turns an exact key lookup into a
prefix scan. Data is the key or prefix.

Key and Value of the response are each an encoded ResultSet. They always
hold the same number of entries.
*/
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod := splitPath(req.Path)
	h := s.queries.Handler(path)
	if h == nil {
		return queryError(errors.Wrapf(errors.ErrNotFound, "query path %q", req.Path))
	}
	head, err := s.ledger.head()
	if err != nil {
		return queryError(err)
	}
	db := s.ledger.snapshot()
	defer db.Discard()

	models, err := h.Query(db, mod, req.Data)
	if err != nil {
		return queryError(err)
	}
	keys, values, err := splitResults(models)
	if err != nil {
		return queryError(err)
	}
	return abci.ResponseQuery{Key: keys, Value: values, Height: head.Version}
}

// splitPath separates the query modifier following '?' from the path.
func splitPath(full string) (path, mod string) {
	if i := strings.IndexByte(full, '?'); i >= 0 {
		return full[:i], full[i+1:]
	}
	return full, custody.KeyQueryMod
}

func queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{Code: code, Log: log}
}
