package app

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// ledger holds the committed tree together with the two caches tendermint
// works on between commits: deliver for the block being built and check
// for the mempool. Check state is dropped at every commit, so a transaction
// admitted to the mempool is checked again against the new block.
type ledger struct {
	committed custody.CommitKVStore
	deliver   custody.KVCacheWrap
	check     custody.KVCacheWrap
}

func openLedger(db custody.CommitKVStore) (*ledger, error) {
	if err := db.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	l := &ledger{committed: db}
	l.reopen()
	return l, nil
}

func (l *ledger) reopen() {
	l.deliver = l.committed.CacheWrap()
	l.check = l.committed.CacheWrap()
}

// head is the height and app hash of the last commit.
func (l *ledger) head() (custody.CommitID, error) {
	return l.committed.LatestVersion()
}

// commit persists the deliver cache as a new version.
func (l *ledger) commit() (custody.CommitID, error) {
	if err := l.deliver.Write(); err != nil {
		return custody.CommitID{}, errors.Wrap(err, "write deliver cache")
	}
	l.check.Discard()
	id, err := l.committed.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	l.reopen()
	return id, nil
}

// snapshot is a throwaway read view of the committed state. Queries use it
// so they never observe a block that is still being delivered.
func (l *ledger) snapshot() custody.KVCacheWrap {
	return l.committed.CacheWrap()
}
