package escrow

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
)

const confPkg = "escrow"

// Configuration is the escrow setting kept under the "escrow" key of the
// genesis conf section.
type Configuration struct {
	Metadata *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// RecordSpace is the storage declared, and paid for by the maker, for
	// every record.
	RecordSpace uint64 `protobuf:"varint,2,opt,name=record_space,json=recordSpace,proto3" json:"record_space,omitempty"`
}

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()    {}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	errs := errors.AppendField(nil, "Metadata", c.Metadata.Validate())
	if c.RecordSpace == 0 {
		errs = errors.AppendField(errs, "RecordSpace", errors.ErrEmpty)
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

// Initializer saves the escrow configuration found in the genesis.
type Initializer struct{}

var _ custody.Initializer = Initializer{}

func (Initializer) FromGenesis(opts custody.Options, params custody.GenesisParams, kv custody.KVStore) error {
	var conf Configuration
	return gconf.InitConfig(kv, opts, confPkg, &conf)
}
