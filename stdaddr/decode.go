// Copyright (c) 2021-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"fmt"
	"strings"

	"github.com/decred/btcaddr/addrerr"
	"github.com/decred/btcaddr/base58"
	"github.com/decred/btcaddr/bech32"
	"github.com/decred/btcaddr/chaincfg"
)

// netCheck describes the network a decoded address is required to be for.
// The zero value accepts any network.
type netCheck struct {
	enabled bool
	net     chaincfg.NetworkType
}

// wrongNetwork returns a WrongNetworkError when the check is enabled and the
// version is for another network.
func (c netCheck) wrongNetwork(version *AddressVersion) error {
	if !c.enabled || version.net == c.net {
		return nil
	}
	return addrerr.WrongNetworkError{
		Prefix: version.legacyPrefix,
		HRP:    version.hrp,
		Want:   c.net.String(),
		Got:    version.net.String(),
	}
}

// isBase58Char returns whether the character is part of the modified base58
// alphabet.
func isBase58Char(r rune) bool {
	switch {
	case r >= '1' && r <= '9':
	case r >= 'A' && r <= 'H':
	case r >= 'J' && r <= 'N':
	case r >= 'P' && r <= 'Z':
	case r >= 'a' && r <= 'k':
	case r >= 'm' && r <= 'z':
	default:
		return false
	}
	return true
}

// probablyBech32Addr returns whether the passed string looks like a bech32
// encoded segregated witness address.  That is the case when the part before
// the last separator is a registered human-readable part, or when the string
// has a separator and a character that rules out base58.
//
// Everything else is treated as base58 so invalid input is reported at the
// exact position of the first character outside of the base58 alphabet.
func probablyBech32Addr(addr string) bool {
	one := strings.LastIndexByte(addr, '1')
	if one < 1 {
		return false
	}
	if _, ok := registeredVersions.hrps[strings.ToLower(addr[:one])]; ok {
		return true
	}
	return strings.IndexFunc(addr, func(r rune) bool {
		return !isBase58Char(r)
	}) != -1
}

// decodeBase58Address decodes a base58 encoded legacy address.
func decodeBase58Address(addr string, check netCheck) (*Address, error) {
	decoded, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, err
	}
	if len(decoded) == 0 {
		str := fmt.Sprintf("address %q decoded data is empty", addr)
		return nil, addrerr.MakeError(addrerr.ErrInvalidDataLength, str)
	}

	// Decode the address according to the version byte.
	version, err := LookupLegacyPrefix(decoded[0])
	if err != nil {
		return nil, err
	}
	if err := check.wrongNetwork(version); err != nil {
		return nil, err
	}
	payload := decoded[1:]
	if err := checkPayloadLen(false, 0, payload); err != nil {
		return nil, err
	}
	return newAddress(version, payload), nil
}

// decodeSegWitAddress decodes a bech32 encoded segregated witness address.
func decodeSegWitAddress(addr string, check netCheck) (*Address, error) {
	hrp, data, err := bech32.DecodeBase32(addr)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		str := fmt.Sprintf("address %q has an empty data part", addr)
		return nil, addrerr.MakeError(addrerr.ErrInvalidDataLength, str)
	}

	// The first 5-bit group is the witness version and the remaining groups
	// are the witness program.
	witnessVersion := data[0]
	if witnessVersion > maxWitnessVersion {
		str := fmt.Sprintf("witness version %d is greater than %d",
			witnessVersion, maxWitnessVersion)
		return nil, addrerr.MakeError(addrerr.ErrInvalidWitnessVersion, str)
	}
	program, err := bech32.ConvertBits(data[1:], 5, 8)
	if err != nil {
		return nil, err
	}
	if err := checkPayloadLen(true, witnessVersion, program); err != nil {
		return nil, err
	}

	version, err := registeredVersions.lookupWitnessVersion(hrp,
		witnessVersion, len(program))
	if err != nil {
		return nil, err
	}
	if err := check.wrongNetwork(version); err != nil {
		return nil, err
	}
	return newAddress(version, program), nil
}

// decodeAddress dispatches the address to the decoder for its format.
func decodeAddress(addr string, check netCheck) (*Address, error) {
	if probablyBech32Addr(addr) {
		return decodeSegWitAddress(addr, check)
	}
	return decodeBase58Address(addr, check)
}

// DecodeAddress decodes the string encoding of an address for any of the
// standard networks and returns it as a typed Address.
//
// Bech32 encoded segregated witness addresses and base58 encoded legacy
// addresses are both accepted.  Errors can be identified by kind with
// errors.Is against the kinds defined in the addrerr package.
func DecodeAddress(addr string) (*Address, error) {
	return decodeAddress(addr, netCheck{})
}

// DecodeAddressForNet decodes the string encoding of an address and ensures it
// is for the provided network.  An address that is valid for another network
// results in an addrerr.WrongNetworkError which carries the version byte or
// human-readable part of the address.
func DecodeAddressForNet(addr string, net chaincfg.NetworkType) (*Address, error) {
	return decodeAddress(addr, netCheck{enabled: true, net: net})
}

// DecodeBase58Address decodes a base58 encoded legacy address for any of the
// standard networks.
//
// The checks are performed in order and the first failure is returned: the
// base58 check encoding, the version byte (addrerr.ErrInvalidPrefix) and the
// payload length (addrerr.ErrInvalidDataLength).
func DecodeBase58Address(addr string) (*Address, error) {
	return decodeBase58Address(addr, netCheck{})
}

// DecodeSegWitAddress decodes a bech32 encoded segregated witness address for
// any of the standard networks.
//
// The checks are performed in order and the first failure is returned: the
// bech32 encoding, the witness version (addrerr.ErrInvalidWitnessVersion), the
// padding of the witness program (addrerr.ErrInvalidPadding), the program
// length (addrerr.ErrInvalidDataLength) and the human-readable part and
// witness version pair (addrerr.ErrInvalidPrefix).
func DecodeSegWitAddress(addr string) (*Address, error) {
	return decodeSegWitAddress(addr, netCheck{})
}

// EncodeAddress returns the string encoding of the address.  Legacy addresses
// are base58 check encoded with their version byte and segregated witness
// addresses are bech32 encoded with their human-readable part.
//
// The zero value and nil encode to the empty string.  Addresses must otherwise
// be created by this package; encoding one with an invalid version panics.
func EncodeAddress(addr *Address) string {
	if addr == nil || addr.version == nil {
		return ""
	}

	version := addr.version
	if !version.kind.IsSegWit() {
		return base58.CheckEncode(version.legacyPrefix, addr.payload)
	}

	// The witness version is a single 5-bit group that precedes the program
	// regrouped into 5-bit groups.  Neither conversion nor encoding can fail
	// for an address created by this package, so a failure means the address
	// was built by hand and is a programmer error.
	program, err := bech32.ConvertBits(addr.payload, 8, 5)
	if err != nil {
		panic(fmt.Sprintf("unable to convert witness program %x: %v",
			addr.payload, err))
	}
	data := make([]byte, 0, len(program)+1)
	data = append(data, version.witnessVersion)
	data = append(data, program...)
	encoded, err := bech32.EncodeBase32(version.hrp, data)
	if err != nil {
		panic(fmt.Sprintf("unable to encode %v address: %v", version, err))
	}
	return encoded
}
