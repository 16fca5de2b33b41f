package server

import (
	"io"
	"os"

	"github.com/iov-one/custody/errors"
	"github.com/tendermint/tendermint/libs/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger returns a tendermint logger filtered by the configured level.
// When a file is configured the output goes there and is rotated once it
// reaches the maximum size, otherwise it goes to stdout.
func NewLogger(conf LogConfig) (log.Logger, io.Closer, error) {
	opt, err := parseLevel(conf.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		out    io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)
	if conf.File != "" {
		lj := &lumberjack.Logger{
			Filename: conf.File,
			MaxSize:  conf.MaxSizeMB,
		}
		out, closer = lj, lj
	}

	logger := log.NewTMLogger(log.NewSyncWriter(out))
	return log.NewFilter(logger, opt), closer, nil
}

func parseLevel(level string) (log.Option, error) {
	switch level {
	case "", "info":
		return log.AllowInfo(), nil
	case "debug":
		return log.AllowDebug(), nil
	case "error":
		return log.AllowError(), nil
	case "none":
		return log.AllowNone(), nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown log level %q", level)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
