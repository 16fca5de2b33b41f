package custodyd

import "github.com/gogo/protobuf/proto"

// Each persisted type is encoded through a wire twin with the same fields
// and tags. The twin has no Marshal or Unmarshal method, so the protobuf
// runtime encodes its fields instead of calling back into the type.

type wireTx Tx

func (m *wireTx) Reset()         { *m = wireTx{} }
func (m *wireTx) String() string { return proto.CompactTextString(m) }
func (*wireTx) ProtoMessage()    {}

func (tx *Tx) Marshal() ([]byte, error) { return proto.Marshal((*wireTx)(tx)) }
func (tx *Tx) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireTx)(tx)) }
