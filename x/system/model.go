package system

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// ProgramID owns all plain wallet accounts.
var ProgramID = custody.ProgramID("system")

// Account holds the native balance of an address.
type Account struct {
	Metadata *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Lamports is the native balance, including the storage deposit.
	Lamports uint64 `protobuf:"varint,2,opt,name=lamports,proto3" json:"lamports,omitempty"`
	// Owner is the program allowed to interpret the account data.
	Owner custody.Address `protobuf:"bytes,3,opt,name=owner,proto3,casttype=github.com/iov-one/custody.Address" json:"owner,omitempty"`
	// Space is the declared size of the account data in bytes.
	Space uint64 `protobuf:"varint,4,opt,name=space,proto3" json:"space,omitempty"`
}

func (a *Account) Reset()         { *a = Account{} }
func (a *Account) String() string { return proto.CompactTextString(a) }
func (*Account) ProtoMessage()    {}

var _ orm.Model = (*Account)(nil)

func (a *Account) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", a.Owner.Validate())
	return errs
}

// NewBucket returns a bucket storing accounts by their address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket("accounts", &Account{})
}
