package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/iov-one/custody"
	custodyd "github.com/iov-one/custody/cmd/custodyd/app"
	"github.com/iov-one/custody/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var home = flag.String("home", filepath.Join(os.ExpandEnv("$HOME"), ".custodyd"), "directory holding config, genesis and state")

type command struct {
	usage string
	run   func(logger log.Logger, conf server.Config, args []string) error
}

var commands = map[string]command{
	"init": {"Add the custody app_state to the genesis file", func(logger log.Logger, _ server.Config, args []string) error {
		return server.InitCmd(custodyd.GenInitOptions, logger, *home, args)
	}},
	"start": {"Run the ABCI server", func(logger log.Logger, conf server.Config, args []string) error {
		return server.StartCmd(custodyd.GenerateApp, logger, conf, args)
	}},
	"validate": {"Dry run the app_state of genesis files", func(_ log.Logger, _ server.Config, args []string) error {
		return server.ValidateGenesis(custodyd.Initializers(), args)
	}},
	"version": {"Print the version", func(log.Logger, server.Config, []string) error {
		fmt.Println(custody.Version())
		return nil
	}},
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "custodyd: escrow custody ABCI application")
	fmt.Fprintln(w)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-9s %s\n", name, commands[name].usage)
	}
	fmt.Fprintln(w)
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = func() { usage(os.Stderr) }
	flag.Parse()

	name := flag.Arg(0)
	if name == "help" {
		usage(os.Stdout)
		return
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		usage(os.Stderr)
		os.Exit(2)
	}
	os.Exit(run(name, cmd))
}

// run executes cmd and returns the exit code, so deferred closes happen
// before main exits.
func run(name string, cmd command) int {
	conf, err := server.LoadConfig(*home)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		return 1
	}
	logger, closer, err := server.NewLogger(conf.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		return 1
	}
	defer closer.Close()

	logger = logger.With("module", "custody")
	if err := cmd.run(logger, conf, flag.Args()[1:]); err != nil {
		logger.Error("Command failed", "cmd", name, "err", err)
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		return 1
	}
	return 0
}
