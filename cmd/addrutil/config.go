// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"

	"github.com/decred/btcaddr/chaincfg"
	flags "github.com/jessevdk/go-flags"
)

const defaultLogLevel = "info"

// config defines the options shared by all commands.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	TestNet     bool   `long:"testnet" description:"Use the test network"`
	RegNet      bool   `long:"regtest" description:"Use the regression test network"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile     string `long:"logfile" description:"Also write log output to this file and rotate it as it grows"`

	out io.Writer
}

// net returns the network selected by the network flags.
func (cfg *config) net() (chaincfg.NetworkType, error) {
	switch {
	case cfg.TestNet && cfg.RegNet:
		return 0, errors.New("the testnet and regtest params can't be " +
			"used together -- choose one of the two")
	case cfg.TestNet:
		return chaincfg.TestNet, nil
	case cfg.RegNet:
		return chaincfg.RegressionNet, nil
	}
	return chaincfg.MainNet, nil
}

// newParser returns a parser for the options and commands of the utility.
// Parsing arguments with it runs the selected command once logging has been
// set up according to the parsed options.
func newParser(cfg *config) (*flags.Parser, error) {
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true
	commands := []struct {
		name  string
		short string
		long  string
		data  any
	}{{
		name:  "decode",
		short: "Decode addresses",
		long: "Decode each address argument and show its kind, network, " +
			"version and payload.",
		data: &decodeCmd{cfg: cfg},
	}, {
		name:  "encode",
		short: "Encode an address",
		long: "Encode an address of the given kind for the hex encoded " +
			"payload argument on the selected network.",
		data: &encodeCmd{cfg: cfg},
	}, {
		name:  "pubkey",
		short: "Show the addresses of a public key",
		long: "Show the addresses that pay to the hex encoded secp256k1 " +
			"public key argument on the selected network.",
		data: &pubKeyCmd{cfg: cfg},
	}, {
		name:  "base58",
		short: "Encode or decode base58",
		long: "Encode the hex encoded argument as base58, or decode the " +
			"base58 argument to hex.",
		data: &base58Cmd{cfg: cfg},
	}, {
		name:  "bech32",
		short: "Encode or decode bech32",
		long: "Encode the hex encoded argument as bech32, or decode the " +
			"bech32 argument to its human-readable part and hex data.",
		data: &bech32Cmd{cfg: cfg},
	}}
	for _, c := range commands {
		_, err := parser.AddCommand(c.name, c.short, c.long, c.data)
		if err != nil {
			return nil, err
		}
	}

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := setLogLevels(cfg.DebugLevel); err != nil {
			return err
		}

		// No command is active when only options such as the version are
		// given.
		if cmd == nil {
			return nil
		}
		if cfg.LogFile != "" {
			if err := initLogRotator(cfg.LogFile); err != nil {
				return err
			}
			defer closeLogRotator()
		}
		return cmd.Execute(args)
	}
	return parser, nil
}
