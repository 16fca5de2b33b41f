package utils

import (
	"strconv"
	"time"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a decorator that counts processed transactions and measures
// their duration, labelled by the message path and the result code.
type Metrics struct {
	calls     *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

var _ custody.Decorator = Metrics{}

// NewMetrics creates a Metrics decorator and registers its collectors with
// given registerer.
func NewMetrics(reg prometheus.Registerer) (Metrics, error) {
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "custody",
		Name:      "tx_total",
		Help:      "Total transactions processed, by phase, message path and result code.",
	}, []string{"phase", "path", "code"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "custody",
		Name:      "tx_duration_seconds",
		Help:      "Duration of transaction processing in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"phase", "path"})
	for _, c := range []prometheus.Collector{calls, durations} {
		if err := reg.Register(c); err != nil {
			return Metrics{}, errors.Wrap(err, "register collector")
		}
	}
	return Metrics{calls: calls, durations: durations}, nil
}

// Check measures the check phase.
func (m Metrics) Check(ctx custody.Context, store custody.KVStore, tx custody.Tx, next custody.Checker) (*custody.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	m.observe("check", tx, start, err)
	return res, err
}

// Deliver measures the deliver phase.
func (m Metrics) Deliver(ctx custody.Context, store custody.KVStore, tx custody.Tx, next custody.Deliverer) (*custody.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	m.observe("deliver", tx, start, err)
	return res, err
}

func (m Metrics) observe(phase string, tx custody.Tx, start time.Time, err error) {
	path := msgPath(tx)
	code, _ := errors.ABCIInfo(err, false)
	m.calls.WithLabelValues(phase, path, codeLabel(code)).Inc()
	m.durations.WithLabelValues(phase, path).Observe(time.Since(start).Seconds())
}

func codeLabel(code uint32) string {
	if code == errors.SuccessABCICode {
		return "ok"
	}
	return strconv.FormatUint(uint64(code), 10)
}
