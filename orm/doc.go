/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of model, keyed by its primary key.
* It may possess one or more secondary indexes (1:1 or 1:N).
* Every bucket and index can be registered as a query handler.

Keys are stored with a bucket prefix:

	<bucket>:<primary key>
	_i.<bucket>_<index>:<index value>

An index entry holds a MultiRef with the primary keys of all models that
share the index value.
*/
package orm
