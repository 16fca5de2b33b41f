package escrow

import (
	"encoding/binary"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/derive"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// ProgramID is the identity all record addresses are derived under.
var ProgramID = custody.ProgramID("escrow")

// recordTag namespaces the record address derivation.
const recordTag = "escrow"

// Record declares the terms of a single exchange. It is stored at its
// program derived address and never modified.
type Record struct {
	Metadata *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Seed allows a single maker to open many escrows.
	Seed  uint64          `protobuf:"varint,2,opt,name=seed,proto3" json:"seed,omitempty"`
	Maker custody.Address `protobuf:"bytes,3,opt,name=maker,proto3,casttype=github.com/iov-one/custody.Address" json:"maker,omitempty"`
	MintA custody.Address `protobuf:"bytes,4,opt,name=mint_a,json=mintA,proto3,casttype=github.com/iov-one/custody.Address" json:"mint_a,omitempty"`
	MintB custody.Address `protobuf:"bytes,5,opt,name=mint_b,json=mintB,proto3,casttype=github.com/iov-one/custody.Address" json:"mint_b,omitempty"`
	// Receive is the amount of MintB the maker requests.
	Receive uint64 `protobuf:"varint,6,opt,name=receive,proto3" json:"receive,omitempty"`
	// Bump makes the record address fall off the curve.
	Bump uint32 `protobuf:"varint,7,opt,name=bump,proto3" json:"bump,omitempty"`
}

func (r *Record) Reset()         { *r = Record{} }
func (r *Record) String() string { return proto.CompactTextString(r) }
func (*Record) ProtoMessage()    {}

var _ orm.Model = (*Record)(nil)

func (r *Record) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", r.Metadata.Validate())
	errs = errors.AppendField(errs, "Maker", r.Maker.Validate())
	errs = errors.AppendField(errs, "MintA", r.MintA.Validate())
	errs = errors.AppendField(errs, "MintB", r.MintB.Validate())
	if r.MintA.Equals(r.MintB) {
		errs = errors.AppendField(errs, "MintB", errors.ErrInput)
	}
	if r.Receive == 0 {
		errs = errors.AppendField(errs, "Receive", errors.ErrAmount)
	}
	if r.Bump > 255 {
		errs = errors.AppendField(errs, "Bump", errors.ErrOverflow)
	}
	return errs
}

// Copy returns a deep copy of the record.
func (r *Record) Copy() *Record {
	return &Record{
		Metadata: r.Metadata.Copy(),
		Seed:     r.Seed,
		Maker:    r.Maker.Clone(),
		MintA:    r.MintA.Clone(),
		MintB:    r.MintB.Clone(),
		Receive:  r.Receive,
		Bump:     r.Bump,
	}
}

// NewBucket returns a bucket storing records by their address, indexed by
// the maker.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket("escrows", &Record{},
		orm.WithIndex("maker", makerIndex, false),
	)
}

func makerIndex(obj orm.Model) ([]byte, error) {
	r, ok := obj.(*Record)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj)
	}
	return r.Maker, nil
}

// RecordSeeds returns the derivation seeds, without the bump, of the record
// that maker opens with given seed.
func RecordSeeds(maker custody.Address, seed uint64) [][]byte {
	le := make([]byte, 8)
	binary.LittleEndian.PutUint64(le, seed)
	return [][]byte{[]byte(recordTag), maker, le}
}

// RecordAddress returns the address and the bump of the record that maker
// opens with given seed.
func RecordAddress(maker custody.Address, seed uint64) (custody.Address, uint8, error) {
	return derive.FindProgramAddress(RecordSeeds(maker, seed), ProgramID)
}
