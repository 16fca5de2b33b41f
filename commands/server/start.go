package server

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/custody/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind    = "bind"
	flagDebug   = "debug"
	flagMetrics = "metrics"
)

// parseFlags lets command line flags override the configuration.
func parseFlags(conf Config, args []string) (Config, error) {
	startFlags := flag.NewFlagSet("start", flag.ContinueOnError)
	startFlags.StringVar(&conf.ABCI.Address, flagBind, conf.ABCI.Address, "address server listens on")
	startFlags.BoolVar(&conf.ABCI.Debug, flagDebug, conf.ABCI.Debug, "call stack returned on error")
	startFlags.StringVar(&conf.Metrics.Address, flagMetrics, conf.Metrics.Address, "address prometheus metrics are served on")
	if err := startFlags.Parse(args); err != nil {
		return conf, errors.Wrap(errors.ErrInput, err.Error())
	}
	return conf, conf.Validate()
}

// AppGenerator lets us lazily initialize app, using the store path,
// a logger and a metrics registry potentially initialized from the
// configuration.
type AppGenerator func(dbDir string, logger log.Logger, reg prometheus.Registerer, debug bool) (abci.Application, error)

// StartCmd initializes the application and serves it over ABCI until
// the process receives a termination signal.
func StartCmd(gen AppGenerator, logger log.Logger, conf Config, args []string) error {
	conf, err := parseFlags(conf, args)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	app, err := gen(conf.Store.Path, logger, reg, conf.ABCI.Debug)
	if err != nil {
		return err
	}

	var metrics *http.Server
	if conf.Metrics.Address != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		metrics = &http.Server{Addr: conf.Metrics.Address, Handler: mux}
		go func() {
			if err := metrics.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Metrics server failed", "err", err)
			}
		}()
		logger.Info("Serving metrics", "bind", conf.Metrics.Address)
	}

	logger.Info("Starting ABCI app", "bind", conf.ABCI.Address)
	svr, err := server.NewServer(conf.ABCI.Address, "socket", app)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrapf(errors.ErrState, "start abci server: %s", err)
	}

	// Wait for a termination signal
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	sig := <-sigs
	logger.Info("Shutting down", "signal", sig.String())

	if err := svr.Stop(); err != nil {
		logger.Error("Stopping ABCI server", "err", err)
	}
	if metrics != nil {
		if err := metrics.Close(); err != nil {
			logger.Error("Stopping metrics server", "err", err)
		}
	}
	return nil
}
