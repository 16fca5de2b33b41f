package custody

import (
	"context"
	"regexp"
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is the standard context. The block height, block time, chain id
// and logger travel in it as values.
type Context = context.Context

type (
	heightKey    struct{}
	blockTimeKey struct{}
	chainIDKey   struct{}
	loggerKey    struct{}
)

// DefaultLogger is returned by GetLogger when the context has none.
var DefaultLogger = log.NewNopLogger()

// IsValidChainID reports whether s may name a chain: 6 to 20 letters,
// digits, dashes or underscores.
var IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString

// WithHeight records the height of the block being processed. It panics if
// the height is already set.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("block height already set")
	}
	return context.WithValue(ctx, heightKey{}, height)
}

func GetHeight(ctx Context) (int64, bool) {
	height, ok := ctx.Value(heightKey{}).(int64)
	return height, ok
}

// WithBlockTime records the time of the block being processed, in UTC.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, blockTimeKey{}, t.UTC())
}

// BlockTime returns the block time. A zero time counts as unset.
func BlockTime(ctx Context) (time.Time, bool) {
	t, ok := ctx.Value(blockTimeKey{}).(time.Time)
	if !ok || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// WithChainID sets the chain id. Signatures are bound to it, so it can be
// set only once and must be valid. Both mistakes panic.
func WithChainID(ctx Context, chainID string) Context {
	if _, ok := ctx.Value(chainIDKey{}).(string); ok {
		panic("chain id already set")
	}
	if !IsValidChainID(chainID) {
		panic("invalid chain id " + chainID)
	}
	return context.WithValue(ctx, chainIDKey{}, chainID)
}

// GetChainID panics when no chain id is set, as every transaction is
// processed under one.
func GetChainID(ctx Context) string {
	chainID, ok := ctx.Value(chainIDKey{}).(string)
	if !ok {
		panic("chain id not set")
	}
	return chainID
}

func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithLogInfo adds keyvals to every line logged through the returned
// context.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	return WithLogger(ctx, GetLogger(ctx).With(keyvals...))
}

func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}
