package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// ResultSet is the encoding of the key and of the value of a query
// response. Both sets of a response have the same length, entry i of the
// keys belonging to entry i of the values.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (r *ResultSet) Reset()         { *r = ResultSet{} }
func (r *ResultSet) String() string { return proto.CompactTextString(r) }
func (*ResultSet) ProtoMessage()    {}

// splitResults encodes models as the key and value of a query response.
func splitResults(models []custody.Model) (keys, values []byte, err error) {
	var ks, vs ResultSet
	for _, m := range models {
		ks.Results = append(ks.Results, m.Key)
		vs.Results = append(vs.Results, m.Value)
	}
	if keys, err = ks.Marshal(); err != nil {
		return nil, nil, errors.Wrap(err, "keys")
	}
	if values, err = vs.Marshal(); err != nil {
		return nil, nil, errors.Wrap(err, "values")
	}
	return keys, values, nil
}

// JoinResults pairs the keys and values of a query response back into
// models, as a client reading /escrows would.
func JoinResults(keys, values *ResultSet) ([]custody.Model, error) {
	if len(keys.Results) != len(values.Results) {
		return nil, errors.Wrapf(errors.ErrState, "%d keys for %d values", len(keys.Results), len(values.Results))
	}
	models := make([]custody.Model, len(keys.Results))
	for i, k := range keys.Results {
		models[i] = custody.Pair(k, values.Results[i])
	}
	return models, nil
}
