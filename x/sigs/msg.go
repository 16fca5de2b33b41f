package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

const (
	pathBumpSequenceMsg = "sigs/bump_sequence"

	maxSequenceIncrement = 1000
)

// BumpSequenceMsg skips sequences of its signer, voiding anything already
// signed with them.
type BumpSequenceMsg struct {
	Metadata *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Increment counts the sequence this very transaction consumes.
	Increment uint32 `protobuf:"varint,2,opt,name=increment,proto3" json:"increment,omitempty"`
}

func (msg *BumpSequenceMsg) Reset()         { *msg = BumpSequenceMsg{} }
func (msg *BumpSequenceMsg) String() string { return proto.CompactTextString(msg) }
func (*BumpSequenceMsg) ProtoMessage()      {}

var _ custody.Msg = (*BumpSequenceMsg)(nil)

func (msg *BumpSequenceMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if msg.Increment == 0 || msg.Increment > maxSequenceIncrement {
		return errors.ErrMsg.Newf("increment %d not in [1, %d]", msg.Increment, maxSequenceIncrement)
	}
	return nil
}

func (BumpSequenceMsg) Path() string {
	return pathBumpSequenceMsg
}
