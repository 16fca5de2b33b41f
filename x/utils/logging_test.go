package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/weavetest"
	"github.com/iov-one/custody/weavetest/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	cases := map[string]struct {
		handler  custody.Handler
		check    bool
		wantErr  *errors.Error
		wantLogs []string
	}{
		"deliver success": {
			handler:  &weavetest.Handler{DeliverResult: custody.DeliverResult{Log: "opened"}},
			wantLogs: []string{"I[", "opened", "path=escrow/open", "duration="},
		},
		"deliver failure": {
			handler:  &weavetest.Handler{DeliverErr: errors.ErrAmount},
			wantErr:  errors.ErrAmount,
			wantLogs: []string{"E[", "path=escrow/open", "err="},
		},
		"check success": {
			handler:  &weavetest.Handler{},
			check:    true,
			wantLogs: []string{"D[", "path=escrow/open"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := custody.WithLogger(context.Background(), log.NewTMLogger(log.NewSyncWriter(&buf)))
			tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "escrow/open"}}
			stack := weavetest.Decorate(tc.handler, NewLogging())

			var err error
			if tc.check {
				_, err = stack.Check(ctx, store.MemStore(), tx)
			} else {
				_, err = stack.Deliver(ctx, store.MemStore(), tx)
			}
			assert.IsErr(t, tc.wantErr, err)

			out := buf.String()
			for _, want := range tc.wantLogs {
				if !strings.Contains(out, want) {
					t.Errorf("want %q in log output %q", want, out)
				}
			}
		})
	}
}
