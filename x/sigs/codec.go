package sigs

import "github.com/gogo/protobuf/proto"

// Each persisted type is encoded through a wire twin with the same fields
// and tags. The twin has no Marshal or Unmarshal method, so the protobuf
// runtime encodes its fields instead of calling back into the type.

type wireUserData UserData

func (m *wireUserData) Reset()         { *m = wireUserData{} }
func (m *wireUserData) String() string { return proto.CompactTextString(m) }
func (*wireUserData) ProtoMessage()    {}

func (u *UserData) Marshal() ([]byte, error) { return proto.Marshal((*wireUserData)(u)) }
func (u *UserData) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireUserData)(u)) }

type wireBumpSequenceMsg BumpSequenceMsg

func (m *wireBumpSequenceMsg) Reset()         { *m = wireBumpSequenceMsg{} }
func (m *wireBumpSequenceMsg) String() string { return proto.CompactTextString(m) }
func (*wireBumpSequenceMsg) ProtoMessage()    {}

func (msg *BumpSequenceMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireBumpSequenceMsg)(msg))
}
func (msg *BumpSequenceMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*wireBumpSequenceMsg)(msg))
}
