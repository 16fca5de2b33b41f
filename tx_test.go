package custody_test

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/weavetest"
	"github.com/iov-one/custody/weavetest/assert"
)

func TestLoadMsg(t *testing.T) {
	msg := &weavetest.Msg{RoutePath: "escrow/open"}

	cases := map[string]struct {
		tx      custody.Tx
		dest    interface{}
		wantErr *errors.Error
	}{
		"success": {
			tx:   &weavetest.Tx{Msg: msg},
			dest: new(*weavetest.Msg),
		},
		"no message": {
			tx:      &weavetest.Tx{},
			dest:    new(*weavetest.Msg),
			wantErr: errors.ErrMsg,
		},
		"transaction error": {
			tx:      &weavetest.Tx{Err: errors.ErrInput},
			dest:    new(*weavetest.Msg),
			wantErr: errors.ErrInput,
		},
		"invalid message": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "escrow/open", Err: errors.ErrAmount}},
			dest:    new(*weavetest.Msg),
			wantErr: errors.ErrAmount,
		},
		"destination is not a pointer": {
			tx:      &weavetest.Tx{Msg: msg},
			dest:    weavetest.Msg{},
			wantErr: errors.ErrHuman,
		},
		"destination of another type": {
			tx:      &weavetest.Tx{Msg: msg},
			dest:    new(*weavetest.Tx),
			wantErr: errors.ErrType,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := custody.LoadMsg(tc.tx, tc.dest)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				got := *tc.dest.(**weavetest.Msg)
				assert.Equal(t, msg, got)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "escrow/settle", custody.GetPath(&weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "escrow/settle"}}))
	assert.Equal(t, "(missing)", custody.GetPath(&weavetest.Tx{}))
	assert.Equal(t, "(missing)", custody.GetPath(&weavetest.Tx{Err: errors.ErrMsg}))
}

func TestIsValidPath(t *testing.T) {
	assert.True(t, custody.IsValidPath("escrow/open"), "escrow/open")
	assert.True(t, custody.IsValidPath("sigs/bump_sequence"), "underscore")
	assert.True(t, !custody.IsValidPath(""), "empty")
	assert.True(t, !custody.IsValidPath("escrow open"), "space")
	assert.True(t, !custody.IsValidPath("escrow:open"), "colon")
}
