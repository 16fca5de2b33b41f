package token

import "github.com/gogo/protobuf/proto"

// Each persisted type is encoded through a wire twin with the same fields
// and tags. The twin has no Marshal or Unmarshal method, so the protobuf
// runtime encodes its fields instead of calling back into the type.

type wireMint Mint

func (m *wireMint) Reset()         { *m = wireMint{} }
func (m *wireMint) String() string { return proto.CompactTextString(m) }
func (*wireMint) ProtoMessage()    {}

func (m *Mint) Marshal() ([]byte, error) { return proto.Marshal((*wireMint)(m)) }
func (m *Mint) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireMint)(m)) }

type wireHolding Holding

func (m *wireHolding) Reset()         { *m = wireHolding{} }
func (m *wireHolding) String() string { return proto.CompactTextString(m) }
func (*wireHolding) ProtoMessage()    {}

func (h *Holding) Marshal() ([]byte, error) { return proto.Marshal((*wireHolding)(h)) }
func (h *Holding) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireHolding)(h)) }

type wireCreateMintMsg CreateMintMsg

func (m *wireCreateMintMsg) Reset()         { *m = wireCreateMintMsg{} }
func (m *wireCreateMintMsg) String() string { return proto.CompactTextString(m) }
func (*wireCreateMintMsg) ProtoMessage()    {}

func (m *CreateMintMsg) Marshal() ([]byte, error) { return proto.Marshal((*wireCreateMintMsg)(m)) }
func (m *CreateMintMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireCreateMintMsg)(m)) }

type wireMintToMsg MintToMsg

func (m *wireMintToMsg) Reset()         { *m = wireMintToMsg{} }
func (m *wireMintToMsg) String() string { return proto.CompactTextString(m) }
func (*wireMintToMsg) ProtoMessage()    {}

func (m *MintToMsg) Marshal() ([]byte, error) { return proto.Marshal((*wireMintToMsg)(m)) }
func (m *MintToMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireMintToMsg)(m)) }

type wireCreateHoldingMsg CreateHoldingMsg

func (m *wireCreateHoldingMsg) Reset()         { *m = wireCreateHoldingMsg{} }
func (m *wireCreateHoldingMsg) String() string { return proto.CompactTextString(m) }
func (*wireCreateHoldingMsg) ProtoMessage()    {}

func (m *CreateHoldingMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireCreateHoldingMsg)(m))
}
func (m *CreateHoldingMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*wireCreateHoldingMsg)(m))
}

type wireTransferMsg TransferMsg

func (m *wireTransferMsg) Reset()         { *m = wireTransferMsg{} }
func (m *wireTransferMsg) String() string { return proto.CompactTextString(m) }
func (*wireTransferMsg) ProtoMessage()    {}

func (m *TransferMsg) Marshal() ([]byte, error) { return proto.Marshal((*wireTransferMsg)(m)) }
func (m *TransferMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireTransferMsg)(m)) }

type wireCloseHoldingMsg CloseHoldingMsg

func (m *wireCloseHoldingMsg) Reset()         { *m = wireCloseHoldingMsg{} }
func (m *wireCloseHoldingMsg) String() string { return proto.CompactTextString(m) }
func (*wireCloseHoldingMsg) ProtoMessage()    {}

func (m *CloseHoldingMsg) Marshal() ([]byte, error) { return proto.Marshal((*wireCloseHoldingMsg)(m)) }
func (m *CloseHoldingMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*wireCloseHoldingMsg)(m))
}
