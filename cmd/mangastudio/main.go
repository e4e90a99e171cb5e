package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Process exit codes.
const (
	exitOK       = 0
	exitMissing  = 1 // at least one asset failed validation
	exitManifest = 2 // the manifest or settings could not be loaded, or bad usage
)

// exitError carries a process exit code through cobra's RunE.
// An empty message means nothing more needs to be printed.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(stderr, "error:", msg)
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitManifest
}
