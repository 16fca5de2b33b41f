package app

import "github.com/gogo/protobuf/proto"

// Each persisted type is encoded through a wire twin with the same fields
// and tags. The twin has no Marshal or Unmarshal method, so the protobuf
// runtime encodes its fields instead of calling back into the type.

type wireResultSet ResultSet

func (m *wireResultSet) Reset()         { *m = wireResultSet{} }
func (m *wireResultSet) String() string { return proto.CompactTextString(m) }
func (*wireResultSet) ProtoMessage()    {}

func (r *ResultSet) Marshal() ([]byte, error) { return proto.Marshal((*wireResultSet)(r)) }
func (r *ResultSet) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireResultSet)(r)) }
