package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/crypto"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// signCodeV1 starts every signed payload, leaving room for other formats.
var signCodeV1 = []byte{0, 0xCA, 0xFE, 0}

/*
SignBytes returns the digest a signer signs for payload. It binds the
signature to one chain and one sequence so it cannot be replayed:

	version | len(chainID) | chainID | sequence         | payload
	4 bytes | 1 byte       | ascii   | 8 bytes, big end | tx sign bytes

The result is the sha512 of the concatenation.
*/
func SignBytes(payload []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !custody.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	buf := make([]byte, 0, len(signCodeV1)+1+len(chainID)+8+len(payload))
	buf = append(buf, signCodeV1...)
	buf = append(buf, byte(len(chainID)))
	buf = append(buf, chainID...)
	var sequence [8]byte
	binary.BigEndian.PutUint64(sequence[:], uint64(seq))
	buf = append(buf, sequence[:]...)
	buf = append(buf, payload...)
	digest := sha512.Sum512(buf)
	return digest[:], nil
}

// SignTx signs tx as the seq-th transaction of signer on chainID.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	digest, err := SignBytes(payload, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return &StdSignature{Pubkey: signer.PublicKey(), Signature: sig, Sequence: seq}, nil
}

// VerifyTx checks every signature of tx and advances the sequence of each
// signer. It returns the signer addresses in signature order, empty for an
// unsigned transaction. One bad signature fails the whole transaction.
func VerifyTx(db custody.KVStore, tx SignedTx, chainID string) ([]custody.Address, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	v := verifier{db: db, users: NewBucket(), payload: payload, chainID: chainID}
	sigs := tx.GetSignatures()
	signers := make([]custody.Address, 0, len(sigs))
	for i, sig := range sigs {
		addr, err := v.verify(sig)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		signers = append(signers, addr)
	}
	return signers, nil
}

type verifier struct {
	db      custody.KVStore
	users   orm.ModelBucket
	payload []byte
	chainID string
}

// verify accepts sig only if it carries the next sequence of its signer,
// which it then stores.
func (v verifier) verify(sig *StdSignature) (custody.Address, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	user, err := loadUser(v.db, v.users, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	digest, err := SignBytes(v.payload, v.chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}
	if !user.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.Consume(sig.Sequence); err != nil {
		return nil, err
	}
	addr := user.Pubkey.Address()
	if err := v.users.Put(v.db, addr, user); err != nil {
		return nil, errors.Wrap(err, "save user")
	}
	return addr, nil
}
