/*
Package app contains the ABCI glue of a custody node: the router that
dispatches messages to handlers, the decorator chain, the store management
across CheckTx and DeliverTx, genesis loading and queries.

A concrete application composes these pieces. BaseApp serializes all
DeliverTx calls through the ABCI connection, so no two transactions ever
touch the same escrow concurrently.
*/
package app
