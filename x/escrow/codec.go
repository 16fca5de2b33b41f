package escrow

import "github.com/gogo/protobuf/proto"

// Each persisted type is encoded through a wire twin with the same fields
// and tags. The twin has no Marshal or Unmarshal method, so the protobuf
// runtime encodes its fields instead of calling back into the type.

type wireRecord Record

func (m *wireRecord) Reset()         { *m = wireRecord{} }
func (m *wireRecord) String() string { return proto.CompactTextString(m) }
func (*wireRecord) ProtoMessage()    {}

func (r *Record) Marshal() ([]byte, error) { return proto.Marshal((*wireRecord)(r)) }
func (r *Record) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireRecord)(r)) }

type wireConfiguration Configuration

func (m *wireConfiguration) Reset()         { *m = wireConfiguration{} }
func (m *wireConfiguration) String() string { return proto.CompactTextString(m) }
func (*wireConfiguration) ProtoMessage()    {}

func (c *Configuration) Marshal() ([]byte, error) { return proto.Marshal((*wireConfiguration)(c)) }
func (c *Configuration) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireConfiguration)(c)) }

type wireOpenMsg OpenMsg

func (m *wireOpenMsg) Reset()         { *m = wireOpenMsg{} }
func (m *wireOpenMsg) String() string { return proto.CompactTextString(m) }
func (*wireOpenMsg) ProtoMessage()    {}

func (m *OpenMsg) Marshal() ([]byte, error) { return proto.Marshal((*wireOpenMsg)(m)) }
func (m *OpenMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireOpenMsg)(m)) }

type wireSettleMsg SettleMsg

func (m *wireSettleMsg) Reset()         { *m = wireSettleMsg{} }
func (m *wireSettleMsg) String() string { return proto.CompactTextString(m) }
func (*wireSettleMsg) ProtoMessage()    {}

func (m *SettleMsg) Marshal() ([]byte, error) { return proto.Marshal((*wireSettleMsg)(m)) }
func (m *SettleMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireSettleMsg)(m)) }

type wireCancelMsg CancelMsg

func (m *wireCancelMsg) Reset()         { *m = wireCancelMsg{} }
func (m *wireCancelMsg) String() string { return proto.CompactTextString(m) }
func (*wireCancelMsg) ProtoMessage()    {}

func (m *CancelMsg) Marshal() ([]byte, error) { return proto.Marshal((*wireCancelMsg)(m)) }
func (m *CancelMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireCancelMsg)(m)) }
