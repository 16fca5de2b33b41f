/*
Package custody defines the common interfaces that tie together the
extensions of a custody chain, as well as the simple types shared by all of
them (addresses, metadata, results).

State transitions are expressed as messages (Msg) carried in a transaction
(Tx). A Handler validates (Check) and executes (Deliver) a message against a
KVStore. Decorators wrap handlers to provide signature verification,
logging, metrics and the all-or-nothing savepoint semantics that every
escrow operation relies on.

We pass context through context.Context between app, middleware, and
handlers. There exist two functions for every XYZ of type T that we want to
support in Context:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (val T, ok bool)

WithXYZ panics if the value was previously set to avoid lower-level modules
overwriting the value (eg. height, chain id).
*/
package custody
