package system

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

const transferCost int64 = 10

// TransferMsg moves native balance from the source to the destination.
type TransferMsg struct {
	Metadata    *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      custody.Address   `protobuf:"bytes,2,opt,name=source,proto3,casttype=github.com/iov-one/custody.Address" json:"source,omitempty"`
	Destination custody.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/custody.Address" json:"destination,omitempty"`
	Amount      uint64            `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TransferMsg) Reset()         { *m = TransferMsg{} }
func (m *TransferMsg) String() string { return proto.CompactTextString(m) }
func (*TransferMsg) ProtoMessage()    {}

var _ custody.Msg = (*TransferMsg)(nil)

// Path returns the routing path for this message
func (TransferMsg) Path() string {
	return "system/transfer"
}

// Validate makes sure that this is sensible
func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	return errs
}
