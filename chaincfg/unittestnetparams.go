// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// UnitTestNetParams returns the network parameters for the unit test network.
// It has no address encodings, so no address can be created for or decoded to
// it.
func UnitTestNetParams() *Params {
	return &Params{
		Name: "unittest",
		Net:  UnitTestNet,
	}
}
