package utils

import (
	"strings"

	"github.com/iov-one/custody"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	// ActionKey tags a delivered transaction with its full message path,
	// for example escrow/settle.
	ActionKey = "action"
	// ProgramKey tags a delivered transaction with the program that
	// executed it, the first segment of the path.
	ProgramKey = "program"
)

// ActionTagger appends the action and program tags to every successful
// deliver result, so clients can subscribe to all settlements or to every
// escrow operation.
type ActionTagger struct{}

var _ custody.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

func (ActionTagger) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Checker) (*custody.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (ActionTagger) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Deliverer) (*custody.DeliverResult, error) {
	// An unreadable message fails before anything is executed.
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	path := msg.Path()
	program := path
	if i := strings.IndexByte(path, '/'); i >= 0 {
		program = path[:i]
	}
	res.Tags = append(res.Tags,
		common.KVPair{Key: []byte(ActionKey), Value: []byte(path)},
		common.KVPair{Key: []byte(ProgramKey), Value: []byte(program)},
	)
	return res, nil
}
