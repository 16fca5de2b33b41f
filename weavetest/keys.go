package weavetest

import (
	"crypto/sha256"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/crypto"
)

// NewKey returns a new random private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewAddress returns the address of a new random key.
func NewAddress() custody.Address {
	return NewKey().PublicKey().Address()
}

// KeyFromName returns a deterministic key for given name. Use it to give
// test actors stable addresses.
func KeyFromName(t testing.TB, name string) *crypto.PrivateKey {
	t.Helper()
	seed := sha256.Sum256([]byte(name))
	k, err := crypto.PrivKeyEd25519FromSeed(seed[:])
	if err != nil {
		t.Fatalf("cannot create %q key: %s", name, err)
	}
	return k
}
