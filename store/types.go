package store

import "github.com/iov-one/custody"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	// ReadOnlyKVStore is a custody.ReadOnlyKVStore
	ReadOnlyKVStore = custody.ReadOnlyKVStore
	// SetDeleter is a custody.SetDeleter
	SetDeleter = custody.SetDeleter
	// KVStore is a custody.KVStore
	KVStore = custody.KVStore
	// Batch is a custody.Batch
	Batch = custody.Batch
	// Iterator is a custody.Iterator
	Iterator = custody.Iterator
	// CacheableKVStore is a custody.CacheableKVStore
	CacheableKVStore = custody.CacheableKVStore
	// KVCacheWrap is a custody.KVCacheWrap
	KVCacheWrap = custody.KVCacheWrap
	// CommitKVStore is a custody.CommitKVStore
	CommitKVStore = custody.CommitKVStore
	// CommitID is a custody.CommitID
	CommitID = custody.CommitID
	// Model is a custody.Model
	Model = custody.Model
)

// Pair constructs a model from a key-value pair
var Pair = custody.Pair
