package system

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/weavetest"
	"github.com/iov-one/custody/weavetest/assert"
)

func TestCodec(t *testing.T) {
	meta := &custody.Metadata{Schema: 1}

	cases := map[string]struct {
		obj   custody.Persistent
		blank custody.Persistent
	}{
		"account": {
			obj:   &Account{Metadata: meta, Lamports: 2490, Owner: custody.ProgramID("escrow"), Space: 121},
			blank: &Account{},
		},
		"configuration": {
			obj:   &Configuration{Metadata: meta, LamportsPerByte: 10, AccountOverhead: 128},
			blank: &Configuration{},
		},
		"transfer": {
			obj:   &TransferMsg{Metadata: meta, Source: weavetest.NewAddress(), Destination: weavetest.NewAddress(), Amount: 17},
			blank: &TransferMsg{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			raw, err := tc.obj.Marshal()
			assert.Nil(t, err)
			assert.Nil(t, tc.blank.Unmarshal(raw))
			assert.Equal(t, tc.obj, tc.blank)
		})
	}
}
