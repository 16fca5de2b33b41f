package custody

import (
	"github.com/iov-one/custody/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// DeliverResult is what a handler returns when DeliverTx succeeds. A failure
// is always returned as an error, never as a result.
type DeliverResult struct {
	// Data is machine readable output, such as the address of a created
	// escrow record.
	Data []byte
	Log  string
	// Tags are indexed by tendermint and make the transaction searchable,
	// for example by escrow or maker address.
	Tags []common.KVPair
}

func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{Data: d.Data, Log: d.Log, Tags: d.Tags}
}

// CheckResult is what a handler returns when CheckTx succeeds.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated is the work the transaction may perform, reported to
	// tendermint as gas wanted.
	GasAllocated int64
}

func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{GasAllocated: gasAllocated, Log: log}
}

func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{Data: c.Data, Log: c.Log, GasWanted: c.GasAllocated}
}

// DeliverOrError builds the DeliverTx response from a handler outcome. In
// debug mode errors are reported with full details.
func DeliverOrError(res *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		return DeliverTxError(err, debug)
	}
	return res.ToABCI()
}

// CheckOrError builds the CheckTx response from a handler outcome.
func CheckOrError(res *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		return CheckTxError(err, debug)
	}
	return res.ToABCI()
}

func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := failure("deliver", err, debug)
	return abci.ResponseDeliverTx{Code: code, Log: log}
}

func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := failure("check", err, debug)
	return abci.ResponseCheckTx{Code: code, Log: log}
}

// failure maps err to its ABCI code. Unregistered errors are reported as
// internal unless debug is set.
func failure(phase string, err error, debug bool) (uint32, string) {
	code, log := errors.ABCIInfo(err, debug)
	if code == errors.SuccessABCICode {
		return code, log
	}
	return code, "cannot " + phase + " tx: " + log
}

// ParseDeliverOrError reads a DeliverTx response back, as a client would
// after broadcasting a transaction.
func ParseDeliverOrError(res abci.ResponseDeliverTx) (*DeliverResult, error) {
	if res.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(res.Code, res.Log)
	}
	return &DeliverResult{Data: res.Data, Log: res.Log, Tags: res.Tags}, nil
}
