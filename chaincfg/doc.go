// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the address parameters of the Bitcoin networks.
//
// In addition to the main network, which is intended for the transfer of
// monetary value, there also exist the test network, the regression test
// network and a unit test network.  Addresses intended for one network are not
// valid on another, so every network carries its own base58 version bytes
// and segregated witness human-readable part.  The regression test network
// shares the legacy version bytes of the test network and therefore only
// defines a human-readable part of its own, while the unit test network
// defines no address encodings at all.
//
// For main packages, a (typically global) var may be assigned the result of
// one of the network parameter functions for use as the application's
// "active" network.
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//		"log"
//
//		"github.com/decred/btcaddr/chaincfg"
//		"github.com/decred/btcaddr/stdaddr"
//	)
//
//	func main() {
//		var testnet = flag.Bool("testnet", false, "operate on the test network")
//		flag.Parse()
//
//		// By default (without -testnet), use mainnet.
//		var chainParams = chaincfg.MainNetParams()
//
//		// Modify active network parameters if operating on testnet.
//		if *testnet {
//			chainParams = chaincfg.TestNetParams()
//		}
//
//		// later...
//
//		// Create and print new payment address, specific to the active network.
//		pubKeyHash := make([]byte, 20)
//		addr, err := stdaddr.NewAddressPubKeyHash(pubKeyHash, chainParams.Net)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(addr)
//	}
package chaincfg
