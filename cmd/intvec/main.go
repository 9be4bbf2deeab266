// Command intvec builds an integer array from its arguments and runs
// operations against it.
//
// Usage:
//
//	intvec [flags] [values...]
//	intvec --remove 0 --find 2 --bsearch 4 1 2 3 4 5
//	intvec --config intvec.yaml --count 5 5 5 2 5
//	intvec --find -3 -- -3 0 7    // negative values after --
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/hupe1980/intvec"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("intvec", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML config file")
	increment := fs.Int("increment", intvec.DefaultGrowthIncrement, "initial capacity and single-append growth step")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "log format: text or json")
	checkSorted := fs.Bool("check-sorted", false, "warn when binary search runs on unsorted elements")

	appends := fs.IntSlice("append", nil, "values to append after construction")
	removes := fs.IntSlice("remove", nil, "indices to remove, applied in order")
	clearAll := fs.Bool("clear", false, "clear the array before querying")

	finds := fs.IntSlice("find", nil, "values to locate by linear search")
	bsearches := fs.IntSlice("bsearch", nil, "values to locate by binary search (array must be sorted)")
	counts := fs.IntSlice("count", nil, "values to count")
	findAlls := fs.IntSlice("find-all", nil, "values to list every index of")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if fs.Changed("increment") {
		cfg.GrowthIncrement = *increment
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = *logFormat
	}
	if fs.Changed("check-sorted") {
		cfg.CheckSorted = *checkSorted
	}

	opts, err := cfg.Options(stderr)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	values, err := parseInts(fs.Args())
	if err != nil {
		return err
	}

	a := intvec.New(values, opts...)
	a.AppendAll(*appends)

	for _, i := range *removes {
		if err := a.RemoveAt(i); err != nil {
			return fmt.Errorf("remove: %w", err)
		}
	}

	if *clearAll {
		a.Clear()
	}

	for _, v := range *finds {
		fmt.Fprintf(stdout, "find %d: %d\n", v, a.FindLinear(v))
	}
	for _, v := range *bsearches {
		fmt.Fprintf(stdout, "bsearch %d: %d\n", v, a.FindBinary(v))
	}
	for _, v := range *counts {
		fmt.Fprintf(stdout, "count %d: %d\n", v, a.Count(v))
	}
	for _, v := range *findAlls {
		fmt.Fprintf(stdout, "find-all %d: %v\n", v, a.FindAll(v).ToArray())
	}

	fmt.Fprintf(stdout, "values: %s\n", a)
	fmt.Fprintf(stdout, "len: %d\n", a.Len())
	fmt.Fprintf(stdout, "cap: %d\n", a.Cap())

	return nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("parse value %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}
