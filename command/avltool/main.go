// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedmap/avl"
	"github.com/bitmark-inc/orderedmap/fault"
	"github.com/bitmark-inc/orderedmap/workload"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// summary - machine readable output of a run
type summary struct {
	Result     workload.Result `json:"result"`
	Statistics avl.Statistics  `json:"statistics"`
	Height     int             `json:"height"`
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--print] [--json] --config-file=FILE [name=value...]", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// remaining arguments become Lua globals
	variables, err := parseVariables(arguments)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	tree := avl.New[string, string](strings.Compare)
	result, err := workload.Run(workload.NewTreeMap(tree), masterConfiguration.Workload, logger.New(workload.LoggerPrefix))
	if nil != err {
		log.Criticalf("workload failed after: %d operations  error: %s", result.Applied, err)
		exitwithstatus.Message("%s: workload failed after: %d operations  error: %s", program, result.Applied, err)
	}

	if err := checkTree(tree); nil != err {
		exitwithstatus.Message("%s: tree check failed: %s", program, err)
	}

	verbose := len(options["verbose"]) > 0
	if len(options["print"]) > 0 {
		tree.Print(os.Stdout, verbose)
	}

	s := summary{
		Result:     result,
		Statistics: tree.Stats(),
		Height:     tree.Height(),
	}
	log.Infof("summary: %+v", s)

	if len(options["json"]) > 0 {
		printJson(os.Stdout, "", s)
	} else {
		printSummary(os.Stdout, s)
	}
}

// convert name=value arguments to a map
func parseVariables(arguments []string) (map[string]string, error) {
	variables := make(map[string]string, len(arguments))
	for _, a := range arguments {
		s := strings.SplitN(a, "=", 2)
		if 2 != len(s) || "" == s[0] {
			return nil, fmt.Errorf("argument: %q is not name=value", a)
		}
		variables[s[0]] = s[1]
	}
	return variables, nil
}

// verify the tree invariants, a failure is logged on the PANIC channel
func checkTree(tree *avl.Tree[string, string]) error {
	err := tree.Check()
	if nil != err {
		fault.Criticalf("tree check failed: %s  items: %d  height: %d", err, tree.Count(), tree.Height())
	}
	return err
}

func printSummary(w io.Writer, s summary) {
	fmt.Fprintf(w, "operations: %d  hits: %d  misses: %d  failures: %d\n",
		s.Result.Applied, s.Result.Hits, s.Result.Misses, s.Result.Failures)
	fmt.Fprintf(w, "items: %d  height: %d\n", s.Result.Count, s.Height)
	fmt.Fprintf(w, "insertions: %d  removals: %d  rotations: %d  recycled: %d\n",
		s.Statistics.Insertions, s.Statistics.Removals, s.Statistics.Rotations, s.Statistics.Recycled)
}
