package utils

import (
	"time"

	"github.com/iov-one/custody"
)

// Logging writes one line per processed transaction with its message path
// and duration. Failures are logged at error level. A successful check is
// logged at debug level and a successful deliver at info level.
type Logging struct{}

var _ custody.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Checker) (*custody.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	line := logLine{phase: "check", start: start, err: err}
	if res != nil {
		line.msg = res.Log
	}
	line.write(ctx, tx)
	return res, err
}

func (Logging) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Deliverer) (*custody.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	line := logLine{phase: "deliver", start: start, err: err}
	if res != nil {
		line.msg = res.Log
	}
	line.write(ctx, tx)
	return res, err
}

type logLine struct {
	phase string
	start time.Time
	msg   string
	err   error
}

// write emits the line even when msg is empty, as path and duration are
// still worth having.
func (l logLine) write(ctx custody.Context, tx custody.Tx) {
	logger := custody.GetLogger(ctx).With(
		"path", msgPath(tx),
		"duration", time.Since(l.start)/time.Microsecond,
	)
	switch {
	case l.err != nil:
		logger.Error(l.msg, "err", l.err)
	case l.phase == "check":
		logger.Debug(l.msg)
	default:
		logger.Info(l.msg)
	}
}

// msgPath is the route of the transaction message, or empty when there is
// no message to load.
func msgPath(tx custody.Tx) string {
	if tx == nil {
		return ""
	}
	msg, err := tx.GetMsg()
	if err != nil || msg == nil {
		return ""
	}
	return msg.Path()
}
