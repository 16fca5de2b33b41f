package system

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
)

const confPkg = "system"

// Configuration declares the price of storage.
type Configuration struct {
	Metadata *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// LamportsPerByte is the deposit required for each byte of account
	// data, including the account overhead.
	LamportsPerByte uint64 `protobuf:"varint,2,opt,name=lamports_per_byte,json=lamportsPerByte,proto3" json:"lamports_per_byte,omitempty"`
	// AccountOverhead is the number of bytes charged for every account
	// on top of its declared space.
	AccountOverhead uint64 `protobuf:"varint,3,opt,name=account_overhead,json=accountOverhead,proto3" json:"account_overhead,omitempty"`
}

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()    {}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	if c.LamportsPerByte == 0 {
		errs = errors.AppendField(errs, "LamportsPerByte", errors.ErrEmpty)
	}
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// RentExempt returns the deposit that an account of given space must hold.
func RentExempt(db gconf.ReadStore, space uint64) (uint64, error) {
	conf, err := loadConf(db)
	if err != nil {
		return 0, err
	}
	size := conf.AccountOverhead + space
	if size < space {
		return 0, errors.Wrap(errors.ErrOverflow, "account size")
	}
	rent := size * conf.LamportsPerByte
	if rent/conf.LamportsPerByte != size {
		return 0, errors.Wrap(errors.ErrOverflow, "rent")
	}
	return rent, nil
}
