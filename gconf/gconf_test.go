package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/weavetest/assert"
)

type testConf struct {
	Rate  uint64 `protobuf:"varint,1,opt,name=rate,proto3" json:"rate,omitempty"`
	Label string `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
}

func (c *testConf) Reset()         { *c = testConf{} }
func (c *testConf) String() string { return proto.CompactTextString(c) }
func (*testConf) ProtoMessage()    {}

type wireTestConf testConf

func (c *wireTestConf) Reset()         { *c = wireTestConf{} }
func (c *wireTestConf) String() string { return proto.CompactTextString(c) }
func (*wireTestConf) ProtoMessage()    {}

func (c *testConf) Marshal() ([]byte, error) { return proto.Marshal((*wireTestConf)(c)) }
func (c *testConf) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*wireTestConf)(c)) }

func (c *testConf) Validate() error {
	if c.Rate == 0 {
		return errors.Field("Rate", errors.ErrEmpty, "required")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	var got testConf
	assert.IsErr(t, errors.ErrNotFound, Load(db, "test", &got))

	assert.FieldError(t, Save(db, "test", &testConf{}), "Rate", errors.ErrEmpty)

	want := testConf{Rate: 7, Label: "seven"}
	assert.Nil(t, Save(db, "test", &want))
	assert.Nil(t, Load(db, "test", &got))
	assert.Equal(t, want, got)

	// Other packages are not affected.
	assert.IsErr(t, errors.ErrNotFound, Load(db, "other", &got))
}

func TestInitConfig(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		want    testConf
	}{
		"configuration is loaded": {
			genesis: `{"conf": {"test": {"rate": 3, "label": "x"}}}`,
			want:    testConf{Rate: 3, Label: "x"},
		},
		"missing package": {
			genesis: `{"conf": {"other": {"rate": 3}}}`,
			wantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			genesis: `{"conf": {"test": {"label": "x"}}}`,
			wantErr: errors.ErrEmpty,
		},
		"malformed json": {
			genesis: `{"conf": {"test": {"rate": "three"}}}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts custody.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			var conf testConf
			err := InitConfig(db, opts, "test", &conf)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}

			var got testConf
			assert.Nil(t, Load(db, "test", &got))
			assert.Equal(t, tc.want, got)
		})
	}
}
