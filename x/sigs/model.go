package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/crypto"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

const (
	bucketName = "sigs"

	// maxSequence is the largest integer a javascript client holds exactly.
	maxSequence = 1<<53 - 1
)

// UserData is the signing state of one key, stored under the key address.
// A key that never signed has no record and starts at sequence zero.
type UserData struct {
	Metadata *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Pubkey   *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64             `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

func (u *UserData) Reset()         { *u = UserData{} }
func (u *UserData) String() string { return proto.CompactTextString(u) }
func (*UserData) ProtoMessage()    {}

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Validate() error {
	errs := errors.AppendField(nil, "Metadata", u.Metadata.Validate())
	switch {
	case u.Sequence < 0:
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	case u.Sequence > 0 && u.Pubkey == nil:
		errs = errors.Append(errs, errors.Field("Sequence", ErrInvalidSequence, "used without a key"))
	}
	return errs
}

// Consume moves the sequence past seq, which must be the current one. This
// is what makes a signature single use.
func (u *UserData) Consume(seq int64) error {
	if seq != u.Sequence {
		return errors.Wrapf(ErrInvalidSequence, "want %d, got %d", u.Sequence, seq)
	}
	if u.Sequence >= maxSequence {
		return errors.Wrap(errors.ErrOverflow, "sequence")
	}
	u.Sequence++
	return nil
}

func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(bucketName, &UserData{})
}

// loadUser reads the state of pubkey, or a fresh one if the key never
// signed.
func loadUser(db custody.ReadOnlyKVStore, users orm.ModelBucket, pubkey *crypto.PublicKey) (*UserData, error) {
	var u UserData
	err := users.One(db, pubkey.Address(), &u)
	if errors.ErrNotFound.Is(err) {
		return &UserData{Metadata: &custody.Metadata{Schema: 1}, Pubkey: pubkey}, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
