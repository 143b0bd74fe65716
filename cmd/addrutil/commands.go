// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/decred/btcaddr/addrerr"
	"github.com/decred/btcaddr/base58"
	"github.com/decred/btcaddr/bech32"
	"github.com/decred/btcaddr/stdaddr"
)

// errNumArgs is returned by commands invoked with the wrong number of
// arguments.
var errNumArgs = errors.New("wrong number of arguments")

// decodeHexArg decodes a hex encoded command argument.
func decodeHexArg(name, arg string) ([]byte, error) {
	b, err := hex.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %s: %w", name, err)
	}
	return b, nil
}

// decodeCmd decodes addresses.
type decodeCmd struct {
	Strict bool `short:"s" long:"strict" description:"Require the addresses to be for the selected network"`

	cfg *config
}

// Execute decodes every address argument and writes its details.
func (c *decodeCmd) Execute(args []string) error {
	if len(args) == 0 {
		return errNumArgs
	}
	net, err := c.cfg.net()
	if err != nil {
		return err
	}

	for _, arg := range args {
		var addr *stdaddr.Address
		if c.Strict {
			addr, err = stdaddr.DecodeAddressForNet(arg, net)
		} else {
			addr, err = stdaddr.DecodeAddress(arg)
		}
		if err != nil {
			var charErr addrerr.CharacterError
			if errors.As(err, &charErr) {
				log.Debugf("Invalid character %q in %q at position %d",
					charErr.Char, arg, charErr.Position)
			}
			return fmt.Errorf("unable to decode %q: %w", arg, err)
		}

		log.Debugf("Decoded %s address %s", addr.Net(), arg)
		fmt.Fprintf(c.cfg.out, "address: %s\n", addr)
		fmt.Fprintf(c.cfg.out, "kind:    %s\n", addr.Kind())
		fmt.Fprintf(c.cfg.out, "network: %s\n", addr.Net())
		fmt.Fprintf(c.cfg.out, "version: %s\n", addr.Version())
		fmt.Fprintf(c.cfg.out, "payload: %x\n", addr.Payload())
	}
	return nil
}

// encodeCmd encodes an address from its payload.
type encodeCmd struct {
	Kind           string `short:"k" long:"kind" description:"Address kind {p2pkh, p2sh, script, segwit}"`
	WitnessVersion uint8  `short:"w" long:"witver" description:"Witness version of segwit addresses"`

	cfg *config
}

// Execute encodes the payload argument as an address of the selected kind.
func (c *encodeCmd) Execute(args []string) error {
	if len(args) != 1 {
		return errNumArgs
	}
	net, err := c.cfg.net()
	if err != nil {
		return err
	}
	payload, err := decodeHexArg("payload", args[0])
	if err != nil {
		return err
	}

	var addr *stdaddr.Address
	switch c.Kind {
	case "", "p2pkh":
		addr, err = stdaddr.NewAddressPubKeyHash(payload, net)
	case "p2sh":
		addr, err = stdaddr.NewAddressScriptHash(payload, net)
	case "script":
		addr, err = stdaddr.NewAddressScriptHashFromScript(payload, net)
	case "segwit":
		addr, err = stdaddr.NewAddressWitnessProgram(c.WitnessVersion,
			payload, net)
	default:
		return fmt.Errorf("unknown address kind %q", c.Kind)
	}
	if err != nil {
		return fmt.Errorf("unable to create address: %w", err)
	}

	log.Debugf("Encoded %v address for %v", addr.Kind(), net)
	fmt.Fprintln(c.cfg.out, addr)
	return nil
}

// pubKeyCmd shows the addresses that pay to a public key.
type pubKeyCmd struct {
	cfg *config
}

// Execute writes every address kind the selected network and the public key
// argument support.
func (c *pubKeyCmd) Execute(args []string) error {
	if len(args) != 1 {
		return errNumArgs
	}
	net, err := c.cfg.net()
	if err != nil {
		return err
	}
	pubKey, err := decodeHexArg("public key", args[0])
	if err != nil {
		return err
	}

	makers := []struct {
		name string
		fn   func() (*stdaddr.Address, error)
	}{{
		name: "p2pkh",
		fn: func() (*stdaddr.Address, error) {
			return stdaddr.NewAddressPubKeyHashFromPubKey(pubKey, net)
		},
	}, {
		name: "p2wpkh",
		fn: func() (*stdaddr.Address, error) {
			return stdaddr.NewAddressWitnessPubKeyHashFromPubKey(pubKey, net)
		},
	}}

	var shown int
	for i, maker := range makers {
		// The key is parsed before anything else, so only the first kind
		// needs to report an invalid key.  The others fail for keys in a
		// format they don't support.
		addr, err := maker.fn()
		if errors.Is(err, addrerr.ErrInvalidPubKey) && i == 0 {
			return fmt.Errorf("invalid public key: %w", err)
		}
		if err != nil {
			log.Debugf("No %s address: %v", maker.name, err)
			continue
		}
		fmt.Fprintf(c.cfg.out, "%-7s %s\n", maker.name+":", addr)
		shown++
	}
	if shown == 0 {
		return fmt.Errorf("network %v has no addresses for the public key",
			net)
	}
	return nil
}

// base58Cmd encodes and decodes raw and checked base58.
type base58Cmd struct {
	Decode  bool  `short:"D" long:"decode" description:"Decode the argument instead of encoding it"`
	Check   bool  `short:"c" long:"check" description:"Use base58check with a version byte and checksum"`
	Version uint8 `short:"v" long:"version" description:"Version byte to encode with when --check is set"`

	cfg *config
}

// Execute encodes or decodes the argument.
func (c *base58Cmd) Execute(args []string) error {
	if len(args) != 1 {
		return errNumArgs
	}

	if c.Decode {
		if !c.Check {
			decoded, err := base58.Decode(args[0])
			if err != nil {
				return fmt.Errorf("unable to decode: %w", err)
			}
			fmt.Fprintf(c.cfg.out, "%x\n", decoded)
			return nil
		}

		decoded, err := base58.CheckDecode(args[0])
		if err != nil {
			return fmt.Errorf("unable to decode: %w", err)
		}
		if len(decoded) == 0 {
			return fmt.Errorf("unable to decode: %w",
				addrerr.MakeError(addrerr.ErrInvalidDataLength,
					"no version byte"))
		}
		cdcLog.Debugf("Checksum of %q is valid", args[0])
		fmt.Fprintf(c.cfg.out, "version: %d\n", decoded[0])
		fmt.Fprintf(c.cfg.out, "payload: %x\n", decoded[1:])
		return nil
	}

	data, err := decodeHexArg("data", args[0])
	if err != nil {
		return err
	}
	if c.Check {
		fmt.Fprintln(c.cfg.out, base58.CheckEncode(c.Version, data))
		return nil
	}
	fmt.Fprintln(c.cfg.out, base58.Encode(data))
	return nil
}

// bech32Cmd encodes and decodes bech32.
type bech32Cmd struct {
	Decode bool   `short:"D" long:"decode" description:"Decode the argument instead of encoding it"`
	HRP    string `long:"hrp" description:"Human-readable part to encode with"`

	cfg *config
}

// Execute encodes or decodes the argument.
func (c *bech32Cmd) Execute(args []string) error {
	if len(args) != 1 {
		return errNumArgs
	}

	if c.Decode {
		decoded, err := bech32.Decode(args[0])
		if err != nil {
			return fmt.Errorf("unable to decode: %w", err)
		}
		cdcLog.Debugf("Checksum of %q is valid", args[0])
		fmt.Fprintf(c.cfg.out, "hrp:  %s\n", decoded.HRP)
		fmt.Fprintf(c.cfg.out, "data: %x\n", decoded.Data)
		return nil
	}

	data, err := decodeHexArg("data", args[0])
	if err != nil {
		return err
	}
	encoded, err := bech32.Encode(c.HRP, data)
	if err != nil {
		return fmt.Errorf("unable to encode: %w", err)
	}
	fmt.Fprintln(c.cfg.out, encoded)
	return nil
}
