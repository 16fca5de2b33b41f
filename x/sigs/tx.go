package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody/crypto"
	"github.com/iov-one/custody/errors"
)

// SignedTx is a transaction whose signatures the Decorator verifies.
type SignedTx interface {
	// GetSignBytes is the message as it was signed, signatures excluded.
	GetSignBytes() ([]byte, error)
	GetSignatures() []*StdSignature
}

// StdSignature signs the message together with the chain ID and the
// signer's sequence, so it cannot be replayed on another chain or twice.
type StdSignature struct {
	Sequence  int64             `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature []byte            `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (s *StdSignature) Reset()         { *s = StdSignature{} }
func (s *StdSignature) String() string { return proto.CompactTextString(s) }
func (*StdSignature) ProtoMessage()    {}

func (s *StdSignature) Validate() error {
	switch {
	case s.Sequence < 0:
		return errors.Wrap(ErrInvalidSequence, "negative")
	case s.Pubkey == nil:
		return errors.Wrap(errors.ErrUnauthorized, "no public key")
	case len(s.Signature) == 0:
		return errors.Wrap(errors.ErrUnauthorized, "no signature")
	}
	return nil
}
