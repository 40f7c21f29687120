// SPDX-License-Identifier: MIT

// Command flightpath finds every valid flight combination between two
// airports in a CSV dataset and prints them ordered by total price.
//
//	flightpath flights.csv WIW ECV --bags 1 --reverse
//	flightpath serve --dataset flights.csv --addr :8080
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		report(stderr, err)
		return 1
	}

	return 0
}
