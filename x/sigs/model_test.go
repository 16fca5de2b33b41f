package sigs

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/crypto"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/weavetest/assert"
)

func TestUserDataValidate(t *testing.T) {
	pub := crypto.GenPrivKeyEd25519().PublicKey()

	cases := map[string]struct {
		user    *UserData
		field   string
		wantErr *errors.Error
	}{
		"valid": {
			user: &UserData{Metadata: &custody.Metadata{Schema: 1}, Pubkey: pub, Sequence: 3},
		},
		"new user without key": {
			user: &UserData{Metadata: &custody.Metadata{Schema: 1}},
		},
		"missing metadata": {
			user:    &UserData{Pubkey: pub},
			field:   "Metadata",
			wantErr: errors.ErrMetadata,
		},
		"negative sequence": {
			user:    &UserData{Metadata: &custody.Metadata{Schema: 1}, Pubkey: pub, Sequence: -1},
			field:   "Sequence",
			wantErr: ErrInvalidSequence,
		},
		"sequence without key": {
			user:    &UserData{Metadata: &custody.Metadata{Schema: 1}, Sequence: 2},
			field:   "Sequence",
			wantErr: ErrInvalidSequence,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.user.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.field, tc.wantErr)
		})
	}
}

func TestConsumeSequence(t *testing.T) {
	u := &UserData{Metadata: &custody.Metadata{Schema: 1}, Sequence: 7}
	assert.IsErr(t, ErrInvalidSequence, u.Consume(6))
	assert.Nil(t, u.Consume(7))
	assert.Equal(t, int64(8), u.Sequence)
	assert.IsErr(t, ErrInvalidSequence, u.Consume(7))

	u.Sequence = maxSequence
	assert.IsErr(t, errors.ErrOverflow, u.Consume(maxSequence))
	assert.Equal(t, int64(maxSequence), u.Sequence)
}

func TestLoadUser(t *testing.T) {
	db := store.MemStore()
	users := NewBucket()
	pub := crypto.GenPrivKeyEd25519().PublicKey()

	fresh, err := loadUser(db, users, pub)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), fresh.Sequence)
	assert.Nil(t, fresh.Consume(0))
	assert.Nil(t, users.Put(db, pub.Address(), fresh))

	stored, err := loadUser(db, users, pub)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), stored.Sequence)
}
