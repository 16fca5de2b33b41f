package sigs

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/crypto"
	"github.com/iov-one/custody/weavetest/assert"
)

func TestCodec(t *testing.T) {
	meta := &custody.Metadata{Schema: 1}
	pub := crypto.GenPrivKeyEd25519().PublicKey()

	cases := map[string]struct {
		obj   custody.Persistent
		blank custody.Persistent
	}{
		"user": {
			obj:   &UserData{Metadata: meta, Pubkey: pub, Sequence: 12},
			blank: &UserData{},
		},
		"bump sequence": {
			obj:   &BumpSequenceMsg{Metadata: meta, Increment: 3},
			blank: &BumpSequenceMsg{},
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
