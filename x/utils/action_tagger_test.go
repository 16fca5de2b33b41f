package utils_test

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/weavetest"
	"github.com/iov-one/custody/weavetest/assert"
	"github.com/iov-one/custody/x/utils"
	"github.com/tendermint/tendermint/libs/common"
)

func TestActionTagger(t *testing.T) {
	msgAt := func(path string) custody.Tx {
		return &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: path}}
	}

	cases := map[string]struct {
		handler custody.Handler
		tx      custody.Tx
		wantErr *errors.Error
		// wantTags are key=value pairs in result order.
		wantTags []string
	}{
		"open": {
			handler:  &weavetest.Handler{},
			tx:       msgAt("escrow/open"),
			wantTags: []string{"action=escrow/open", "program=escrow"},
		},
		"handler tags come first": {
			handler: &weavetest.Handler{DeliverResult: custody.DeliverResult{
				Tags: []common.KVPair{{Key: []byte("escrow"), Value: []byte("A1")}},
			}},
			tx:       msgAt("escrow/settle"),
			wantTags: []string{"escrow=A1", "action=escrow/settle", "program=escrow"},
		},
		"token program": {
			handler:  &weavetest.Handler{},
			tx:       msgAt("token/transfer"),
			wantTags: []string{"action=token/transfer", "program=token"},
		},
		"path of one segment": {
			handler:  &weavetest.Handler{},
			tx:       msgAt("genesis"),
			wantTags: []string{"action=genesis", "program=genesis"},
		},
		"failed cancel is not tagged": {
			handler: &weavetest.Handler{DeliverErr: errors.ErrUnauthorized},
			tx:      msgAt("escrow/cancel"),
			wantErr: errors.ErrUnauthorized,
		},
		"unreadable message": {
			handler: &weavetest.Handler{},
			tx:      &weavetest.Tx{Err: errors.ErrMsg},
			wantErr: errors.ErrMsg,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			stack := weavetest.Decorate(tc.handler, utils.NewActionTagger())
			res, err := stack.Deliver(context.Background(), store.MemStore(), tc.tx)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			var got []string
			for _, kv := range res.Tags {
				got = append(got, string(kv.Key)+"="+string(kv.Value))
			}
			assert.Equal(t, tc.wantTags, got)
		})
	}
}
