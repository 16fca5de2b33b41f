package system

import "github.com/gogo/protobuf/proto"

// Each persisted type is encoded through a wire twin with the same fields
// and tags. The twin has no Marshal or Unmarshal method, so the protobuf
// runtime encodes its fields instead of calling back into the type.

type wireAccount Account

func (m *wireAccount) Reset()         { *m = wireAccount{} }
func (m *wireAccount) String() string { return proto.CompactTextString(m) }
func (*wireAccount) ProtoMessage()    {}

func (a *Account) Marshal() ([]byte, error) { return proto.Marshal((*wireAccount)(a)) }
func (a *Account) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireAccount)(a)) }

type wireConfiguration Configuration

func (m *wireConfiguration) Reset()         { *m = wireConfiguration{} }
func (m *wireConfiguration) String() string { return proto.CompactTextString(m) }
func (*wireConfiguration) ProtoMessage()    {}

func (c *Configuration) Marshal() ([]byte, error) { return proto.Marshal((*wireConfiguration)(c)) }
func (c *Configuration) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireConfiguration)(c)) }

type wireTransferMsg TransferMsg

func (m *wireTransferMsg) Reset()         { *m = wireTransferMsg{} }
func (m *wireTransferMsg) String() string { return proto.CompactTextString(m) }
func (*wireTransferMsg) ProtoMessage()    {}

func (m *TransferMsg) Marshal() ([]byte, error) { return proto.Marshal((*wireTransferMsg)(m)) }
func (m *TransferMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireTransferMsg)(m)) }
