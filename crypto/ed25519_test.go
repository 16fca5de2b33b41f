package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/weavetest/assert"
)

func TestEd25519PrivateKeySign(t *testing.T) {
	pk, err := PrivKeyEd25519FromSeed(make([]byte, 32))
	assert.Nil(t, err)

	msg := []byte("foo bar")
	sig, err := pk.Sign(msg)
	assert.Nil(t, err)
	assert.True(t, pk.PublicKey().Verify(msg, sig), "signature must verify")
	assert.True(t, !pk.PublicKey().Verify([]byte("foo baz"), sig), "signature must not verify other message")

	other := GenPrivKeyEd25519()
	assert.True(t, !other.PublicKey().Verify(msg, sig), "signature must not verify with other key")
}

func TestEmptyKeys(t *testing.T) {
	emptyKey := &PrivateKey{}
	if sig, err := emptyKey.Sign([]byte("foo bar")); !errors.ErrInput.Is(err) {
		t.Fatalf("want an error, got %q", sig)
	}

	var pub *PublicKey
	assert.True(t, !pub.Verify([]byte("foo"), []byte("sig")), "nil key must not verify")
	assert.True(t, !(&PublicKey{}).Verify([]byte("foo"), []byte("sig")), "empty key must not verify")
}

func TestAddressIsPublicKey(t *testing.T) {
	pk := GenPrivKeyEd25519()
	addr := pk.PublicKey().Address()
	assert.Nil(t, addr.Validate())
	assert.Equal(t, pk.PublicKey().Ed25519, []byte(addr))
}

func TestDeriveKey(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	assert.Nil(t, err)

	// SLIP-0010 ed25519 test vector 1, chain m/0'
	k, err := DeriveKey(seed, "m/0'")
	assert.Nil(t, err)
	wantPriv, _ := hex.DecodeString("68e0fe46dfb67e368c75379acec591dad19df3cde26e63b93a8e704f1dade7a3")
	if !bytes.Equal(wantPriv, k.Ed25519[:32]) {
		t.Fatalf("unexpected private key seed: %X", k.Ed25519[:32])
	}
	wantPub, _ := hex.DecodeString("8c8a13df77a28f3445213a0f432fde644acaa215fc72dcdf300d5efaa85d350c")
	if !bytes.Equal(wantPub, k.PublicKey().Ed25519) {
		t.Fatalf("unexpected public key: %X", k.PublicKey().Ed25519)
	}

	again, err := DeriveKey(seed, "m/0'")
	assert.Nil(t, err)
	assert.Equal(t, k.Ed25519, again.Ed25519)

	_, err = DeriveKey(seed, "not a path")
	assert.IsErr(t, errors.ErrInput, err)
}
