// Command eqcolor verifies equitable graph colorings against DIMACS graphs
// and generates DIMACS fixtures.
//
//	eqcolor verify --graph DSJC125.9.col --coloring-file colors.txt -k 44
//	eqcolor gen --kind random -n 125 -p 0.9 --seed 1 --out DSJC125.9.col
//
// Exit status of verify: 0 SUCCESS, 2 FAILED, 3 PARTIAL, 1 on usage or
// input errors.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitOK      = 0
	exitError   = 1
	exitFailed  = 2
	exitPartial = 3
)

// exitCode carries a non-zero status out of a command that succeeded in
// producing its output.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit status %d", int(c)) }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and maps the result to an exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	var code exitCode
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &code):
		return int(code)
	default:
		fmt.Fprintln(stderr, "eqcolor:", err)
		return exitError
	}
}
