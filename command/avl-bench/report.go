// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// print a rate table
func printResults(w io.Writer, count int, results []result) {
	fmt.Fprintf(w, "keys: %d\n", count)
	fmt.Fprintf(w, "%-18s %12s %12s %14s\n", "phase", "operations", "ms", "ops/second")
	for _, r := range results {
		fmt.Fprintf(w, "%-18s %12d %12.3f %14.1f\n",
			r.Phase,
			r.Operations,
			float64(r.Elapsed.Nanoseconds())/1e6,
			r.Rate(),
		)
	}
}

// append the results to a CSV file, writing a header if the file is new
func writeCSV(fileName string, config *Configuration, results []result) error {

	_, err := os.Stat(fileName)
	newFile := os.IsNotExist(err)

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if nil != err {
		return err
	}
	defer f.Close()

	if err := writeRecords(f, newFile, config, results); nil != err {
		return err
	}
	return f.Close()
}

func writeRecords(w io.Writer, header bool, config *Configuration, results []result) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write([]string{"count", "random", "readers", "phase", "operations", "elapsed_ns", "ops_per_second"}); nil != err {
			return err
		}
	}
	for _, r := range results {
		record := []string{
			strconv.Itoa(config.Count),
			strconv.FormatBool(config.Random),
			strconv.Itoa(config.Readers),
			r.Phase,
			strconv.FormatUint(r.Operations, 10),
			strconv.FormatInt(r.Elapsed.Nanoseconds(), 10),
			strconv.FormatFloat(r.Rate(), 'f', 1, 64),
		}
		if err := cw.Write(record); nil != err {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
