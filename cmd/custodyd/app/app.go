/*
Package custodyd assembles the custody node: the system, token and escrow
programs behind signature checks, on an iavl backed store.
*/
package custodyd

import (
	"context"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/app"
	"github.com/iov-one/custody/store/iavl"
	"github.com/iov-one/custody/x"
	"github.com/iov-one/custody/x/escrow"
	"github.com/iov-one/custody/x/sigs"
	"github.com/iov-one/custody/x/system"
	"github.com/iov-one/custody/x/token"
	"github.com/iov-one/custody/x/utils"
	"github.com/prometheus/client_golang/prometheus"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// dbName is the leveldb database of the node, created in its home.
const dbName = "custody"

// GenerateApp builds the node application. An empty home keeps the state
// in memory, and a nil registry leaves the metrics unexported.
func GenerateApp(home string, logger log.Logger, reg prometheus.Registerer, debug bool) (abci.Application, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics, err := utils.NewMetrics(reg)
	if err != nil {
		return nil, err
	}
	kv, err := iavl.NewCommitStore(home, dbName)
	if err != nil {
		return nil, err
	}

	st := app.NewStoreApp("custodyd", kv, queries(), context.Background())
	st.WithInit(Initializers())
	node := app.NewBaseApp(st, TxDecoder, handler(metrics), debug)
	node.WithLogger(logger)
	return node, nil
}

// handler runs every message through the decorators below, in order. A
// check savepoint drops all writes of CheckTx. The deliver savepoint sits
// after signature checks, so a failed message still consumes its sequence.
func handler(metrics utils.Metrics) custody.Handler {
	auth := x.ChainAuth(sigs.Authenticate{})
	decorators := app.ChainDecorators(
		utils.NewLogging(),
		metrics,
		utils.NewRecovery(),
		utils.NewActionTagger(),
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		utils.NewSavepoint().OnDeliver(),
	)
	return decorators.WithHandler(routes(auth))
}

func routes(auth x.Authenticator) *app.Router {
	sys := system.NewController(system.NewBucket())
	tokens := token.NewController(sys)

	r := app.NewRouter()
	sigs.RegisterRoutes(r, auth)
	system.RegisterRoutes(r, auth, sys)
	token.RegisterRoutes(r, auth, tokens)
	escrow.RegisterRoutes(r, auth, sys, tokens)
	return r
}

// queries serves /auth, /accounts, /mints, /holdings and /escrows with
// their indexes.
func queries() custody.QueryRouter {
	r := custody.NewQueryRouter()
	r.RegisterAll(
		sigs.RegisterQuery,
		system.RegisterQuery,
		token.RegisterQuery,
		escrow.RegisterQuery,
	)
	return r
}

// Initializers loads the genesis of system, token and escrow, in that
// order, since holdings pay their deposit from system accounts.
func Initializers() custody.Initializer {
	return app.ChainInitializers(
		system.Initializer{},
		token.Initializer{},
		escrow.Initializer{},
	)
}
