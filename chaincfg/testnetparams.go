// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNetParams returns the network parameters for the test Bitcoin network
// (version 3).
func TestNetParams() *Params {
	return &Params{
		Name: "testnet3",
		Net:  TestNet,

		// Address encoding magics
		LegacyAddrIDs: &LegacyAddrIDs{
			PubKeyHashAddrID: 0x6f, // starts with m or n
			ScriptHashAddrID: 0xc4, // starts with 2
		},
		Bech32HRPSegwit: "tb",
	}
}
