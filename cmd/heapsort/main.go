// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command heapsort reads whitespace separated values from files or
// stdin and either prints them in descending order or searches them
// for a specific value, in both cases via a binary max-heap.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/heap"
)

var cmdSet *subcmd.CommandSet

type sortFlags struct {
	Numeric bool `subcmd:"numeric,false,compare values as numbers rather than strings"`
}

type searchFlags struct {
	Numeric bool   `subcmd:"numeric,false,compare values as numbers rather than strings"`
	Value   string `subcmd:"value,,the value to search for"`
}

func init() {
	sortFlagSet := subcmd.NewFlagSet()
	sortFlagSet.MustRegisterFlagStruct(&sortFlags{}, nil, nil)
	searchFlagSet := subcmd.NewFlagSet()
	searchFlagSet.MustRegisterFlagStruct(&searchFlags{}, nil, nil)

	sortCmd := subcmd.NewCommand("sort", sortFlagSet, sorter)
	sortCmd.Document("print the values read from the supplied files or stdin in descending order", "[<file>...]")

	searchCmd := subcmd.NewCommand("search", searchFlagSet, searcher)
	searchCmd.Document("report whether --value occurs in the values read from the supplied files or stdin", "[<file>...]")

	cmdSet = subcmd.NewCommandSet(sortCmd, searchCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func sorter(_ context.Context, values interface{}, args []string) error {
	fv := values.(*sortFlags)
	words, err := readValues(args)
	if err != nil {
		return err
	}
	var sorted []string
	if fv.Numeric {
		keys, err := asNumbers(words)
		if err != nil {
			return err
		}
		_, sorted = heap.SortKeyedDescending(keys, words)
	} else {
		sorted, _ = heap.SortKeyedDescending(words, words)
	}
	out := bufio.NewWriter(os.Stdout)
	for _, v := range sorted {
		fmt.Fprintln(out, v)
	}
	return out.Flush()
}

func searcher(_ context.Context, values interface{}, args []string) error {
	fv := values.(*searchFlags)
	if len(fv.Value) == 0 {
		return fmt.Errorf("--value must be specified")
	}
	words, err := readValues(args)
	if err != nil {
		return err
	}
	var found bool
	if fv.Numeric {
		target, err := strconv.ParseFloat(fv.Value, 64)
		if err != nil {
			return err
		}
		keys, err := asNumbers(words)
		if err != nil {
			return err
		}
		h := heap.NewMax(heap.WithData(keys, words))
		found = h.Search(target)
	} else {
		// WithData reorders the supplied slices in place, so the keys
		// must not alias the values.
		h := heap.NewMax(heap.WithData(slices.Clone(words), words))
		found = h.Search(fv.Value)
	}
	fmt.Println(found)
	return nil
}

func readValues(args []string) ([]string, error) {
	if len(args) == 0 {
		return scanValues(os.Stdin)
	}
	errs := errors.M{}
	var vals []string
	for _, file := range args {
		f, err := os.Open(file)
		if err != nil {
			errs.Append(err)
			continue
		}
		v, err := scanValues(f)
		errs.Append(err)
		errs.Append(f.Close())
		vals = append(vals, v...)
	}
	return vals, errs.Err()
}

func scanValues(rd io.Reader) ([]string, error) {
	sc := bufio.NewScanner(rd)
	sc.Split(bufio.ScanWords)
	var vals []string
	for sc.Scan() {
		vals = append(vals, sc.Text())
	}
	return vals, sc.Err()
}

func asNumbers(vals []string) ([]float64, error) {
	keys := make([]float64, len(vals))
	errs := errors.M{}
	for i, v := range vals {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs.Append(err)
			continue
		}
		keys[i] = n
	}
	return keys, errs.Err()
}
