// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
)

// ErrUnknownNetwork describes an error where the parameters for a network could
// not be found because the network is not one of the standard networks.
var ErrUnknownNetwork = errors.New("unknown network")

// NetworkType identifies one of the standard networks.
type NetworkType uint8

// These constants define the standard networks.
const (
	// MainNet is the main network.
	MainNet NetworkType = iota

	// TestNet is the public test network (version 3).
	TestNet

	// RegressionNet is the local regression test network.
	RegressionNet

	// UnitTestNet is a network used by unit tests.  It defines no address
	// encodings.
	UnitTestNet
)

// netStrings is a map of networks back to their constant names for pretty
// printing.
var netStrings = map[NetworkType]string{
	MainNet:       "mainnet",
	TestNet:       "testnet",
	RegressionNet: "regtest",
	UnitTestNet:   "unittest",
}

// String returns the NetworkType in human-readable form.
func (n NetworkType) String() string {
	if s, ok := netStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown NetworkType (%d)", uint8(n))
}

// LegacyAddrIDs houses the version bytes that prefix base58 encoded addresses.
type LegacyAddrIDs struct {
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
}

// Params defines a Bitcoin network by the parameters that are needed to encode
// and decode addresses for it.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net identifies the network.
	Net NetworkType

	// LegacyAddrIDs defines the base58 address version bytes of the network.
	// It is nil for networks without base58 addresses of their own.
	LegacyAddrIDs *LegacyAddrIDs

	// Bech32HRPSegwit is the human-readable part of segregated witness
	// addresses.  It is empty for networks without segregated witness
	// addresses.
	Bech32HRPSegwit string
}

// AddrIDPubKeyHash returns the version byte for pay-to-pubkey-hash addresses
// and whether the network defines one.
func (p *Params) AddrIDPubKeyHash() (byte, bool) {
	if p.LegacyAddrIDs == nil {
		return 0, false
	}
	return p.LegacyAddrIDs.PubKeyHashAddrID, true
}

// AddrIDScriptHash returns the version byte for pay-to-script-hash addresses
// and whether the network defines one.
func (p *Params) AddrIDScriptHash() (byte, bool) {
	if p.LegacyAddrIDs == nil {
		return 0, false
	}
	return p.LegacyAddrIDs.ScriptHashAddrID, true
}

// AllParams returns the parameters of every standard network in the order of
// their NetworkType.
func AllParams() []*Params {
	return []*Params{MainNetParams(), TestNetParams(), RegNetParams(),
		UnitTestNetParams()}
}

// ParamsForNet returns the parameters of the given standard network.
func ParamsForNet(net NetworkType) (*Params, error) {
	switch net {
	case MainNet:
		return MainNetParams(), nil
	case TestNet:
		return TestNetParams(), nil
	case RegressionNet:
		return RegNetParams(), nil
	case UnitTestNet:
		return UnitTestNetParams(), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownNetwork, net)
}

// ParamsForName returns the parameters of the standard network with the given
// name.  Both the Name of the parameters and the string form of the network
// type are accepted, so "testnet3" and "testnet" both refer to TestNet.
func ParamsForName(name string) (*Params, error) {
	for _, params := range AllParams() {
		if name == params.Name || name == params.Net.String() {
			return params, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}
