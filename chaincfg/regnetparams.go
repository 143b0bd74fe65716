// Copyright (c) 2018-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// RegNetParams returns the network parameters for the regression test network.
// This should not be confused with the public test network or the unit test
// network.
//
// Base58 addresses on the regression test network use the version bytes of
// the public test network, so it only defines a segregated witness
// human-readable part.
func RegNetParams() *Params {
	return &Params{
		Name:            "regtest",
		Net:             RegressionNet,
		LegacyAddrIDs:   nil,
		Bech32HRPSegwit: "bcrt",
	}
}
