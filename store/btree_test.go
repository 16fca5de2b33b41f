package store

import (
	"testing"
)

func openMemStore() (CacheableKVStore, func()) {
	return MemStore(), func() {}
}

func TestBTreeSavepoint(t *testing.T) {
	NewSuite(openMemStore).Savepoint(t)
}

func TestBTreeOverlay(t *testing.T) {
	NewSuite(openMemStore).Overlay(t)
}

func TestBTreePrefixScan(t *testing.T) {
	NewSuite(openMemStore).PrefixScan(t)
}
