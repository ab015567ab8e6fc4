package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/orthonet/nettrace/engine"
	"github.com/orthonet/nettrace/ruleio"
	"github.com/orthonet/nettrace/writer"
)

const (
	exitOK = iota
	exitArgError
	exitRuleLoadFailure
	exitLayoutLoadFailure
	exitTraceFailure
	exitWriteFailure
)

func main() {
	os.Exit(run())
}

func run() int {
	layoutPath := flag.String("layout", "", "path to the layout file")
	rulePath := flag.String("rule", "", "path to the rule file")
	outputPath := flag.String("output", "", "path to write the traced output")
	threads := flag.Int("thread", 1, "worker count for per-layer index builds and AA cuts")
	flag.Parse()

	logger := log.New(os.Stderr, "", 0)

	if *layoutPath == "" || *rulePath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: trace -layout <path> -rule <path> -output <path> [-thread <N>]")
		return exitArgError
	}

	rule, err := ruleio.LoadRule(*rulePath)
	if err != nil {
		logger.Printf("load rule: %v", err)
		return exitRuleLoadFailure
	}

	db, err := ruleio.LoadLayoutNeededLayers(*layoutPath, rule.NeededLayers)
	if err != nil {
		logger.Printf("load layout: %v", err)
		return exitLayoutLoadFailure
	}

	res, err := engine.Trace(rule, db, engine.WithWorkers(*threads))
	if err != nil {
		logger.Printf("trace: %v", err)
		return exitTraceFailure
	}

	if err := writer.Write(*outputPath, res); err != nil {
		logger.Printf("write: %v", err)
		return exitWriteFailure
	}

	logger.Printf("[OK] layers_out=%d polys_out=%d", len(res.ByLayer), res.TotalPolygons())
	return exitOK
}
