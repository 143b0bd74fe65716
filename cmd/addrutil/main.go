// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command addrutil encodes and decodes Bitcoin addresses along with the
// base58 and bech32 encodings they are built on.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/decred/btcaddr/internal/version"
	flags "github.com/jessevdk/go-flags"
)

const appName = "addrutil"

// errNoCommand is returned when neither a command nor the version option is
// specified.
var errNoCommand = errors.New("no command specified -- see --help")

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// run parses the arguments and runs the selected command, writing its results
// to out.
func run(args []string, out io.Writer) error {
	cfg := config{
		DebugLevel: defaultLogLevel,
		out:        out,
	}
	parser, err := newParser(&cfg)
	if err != nil {
		return err
	}
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}

	// Commands run while parsing, so only the version remains to be handled.
	switch {
	case cfg.ShowVersion:
		fmt.Fprintf(out, "%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	case parser.Active == nil:
		return errNoCommand
	}
	return nil
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fatalf("%v\n", err)
	}
}
