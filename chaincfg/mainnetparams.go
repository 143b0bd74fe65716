// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MainNetParams returns the network parameters for the main Bitcoin network.
func MainNetParams() *Params {
	return &Params{
		Name: "mainnet",
		Net:  MainNet,

		// Address encoding magics
		LegacyAddrIDs: &LegacyAddrIDs{
			PubKeyHashAddrID: 0x00, // starts with 1
			ScriptHashAddrID: 0x05, // starts with 3
		},
		Bech32HRPSegwit: "bc",
	}
}
