// Copyright (c) 2021-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/decred/btcaddr/addrerr"
	"github.com/decred/btcaddr/chaincfg"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected. It will only (and must only) be called with
// hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

const (
	// pubKeyComp is the compressed serialization of the secp256k1 generator.
	pubKeyComp = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b" +
		"16f81798"

	// pubKeyUncomp is the uncompressed serialization of the secp256k1
	// generator.
	pubKeyUncomp = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f281" +
		"5b16f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08f" +
		"fb10d4b8"

	// multiSigScript is a 1-of-1 multisig redeem script for pubKeyComp.
	multiSigScript = "51210279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959" +
		"f2815b16f8179851ae"
)

// TestAddresses ensures that address-related APIs work as intended including
// that they are properly encoded and decoded, that they report the expected
// kind, network and payload, and that error paths fail as expected.
func TestAddresses(t *testing.T) {
	type newAddrFn func() (*Address, error)
	tests := []struct {
		name      string               // test description
		makeAddr  newAddrFn            // function to construct new address via API
		makeErr   error                // expected error from new address function
		addr      string               // expected address and address to decode
		net       chaincfg.NetworkType // network to decode for
		decodeErr error                // expected error from decode
		kind      AddressKind          // expected address kind
		payload   string               // expected hex encoded payload
	}{{
		// ---------------------------------------------------------------------
		// Pay-to-pubkey-hash.
		// ---------------------------------------------------------------------

		name: "mainnet p2pkh",
		makeAddr: func() (*Address, error) {
			pkHash := hexToBytes("4a22c3c4cbb31e4d03b15550636762bda0baf85a")
			return NewAddressPubKeyHash(pkHash, chaincfg.MainNet)
		},
		makeErr:   nil,
		addr:      "17kzeh4N8g49GFvdDzSf8PjaPfyoD1MndL",
		net:       chaincfg.MainNet,
		decodeErr: nil,
		kind:      PubKeyHash,
		payload:   "4a22c3c4cbb31e4d03b15550636762bda0baf85a",
	}, {
		name: "testnet p2pkh",
		makeAddr: func() (*Address, error) {
			pkHash := hexToBytes("fda79a24e50ff70ff42f7d89585da5bd19d9e5cc")
			return NewAddressPubKeyHash(pkHash, chaincfg.TestNet)
		},
		makeErr:   nil,
		addr:      "n4eA2nbYqErp7H6jebchxAN59DmNpksexv",
		net:       chaincfg.TestNet,
		decodeErr: nil,
		kind:      PubKeyHash,
		payload:   "fda79a24e50ff70ff42f7d89585da5bd19d9e5cc",
	}, {
		name: "testnet p2pkh same hash as mainnet",
		makeAddr: func() (*Address, error) {
			pkHash := hexToBytes("4a22c3c4cbb31e4d03b15550636762bda0baf85a")
			return NewAddressPubKeyHash(pkHash, chaincfg.TestNet)
		},
		makeErr:   nil,
		addr:      "mnGwwk9LwhVQ3NQEwZR2xJwuFfaW5FGayV",
		net:       chaincfg.TestNet,
		decodeErr: nil,
		kind:      PubKeyHash,
		payload:   "4a22c3c4cbb31e4d03b15550636762bda0baf85a",
	}, {
		name: "mainnet p2pkh from compressed pubkey",
		makeAddr: func() (*Address, error) {
			pubKey := hexToBytes(pubKeyComp)
			return NewAddressPubKeyHashFromPubKey(pubKey, chaincfg.MainNet)
		},
		makeErr:   nil,
		addr:      "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH",
		net:       chaincfg.MainNet,
		decodeErr: nil,
		kind:      PubKeyHash,
		payload:   "751e76e8199196d454941c45d1b3a323f1433bd6",
	}, {
		name: "mainnet p2pkh from uncompressed pubkey",
		makeAddr: func() (*Address, error) {
			pubKey := hexToBytes(pubKeyUncomp)
			return NewAddressPubKeyHashFromPubKey(pubKey, chaincfg.MainNet)
		},
		makeErr:   nil,
		addr:      "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm",
		net:       chaincfg.MainNet,
		decodeErr: nil,
		kind:      PubKeyHash,
		payload:   "91b24bf9f5288532960ac687abb035127b1d28a5",
	}, {
		name: "testnet p2pkh from uncompressed pubkey",
		makeAddr: func() (*Address, error) {
			pubKey := hexToBytes(pubKeyUncomp)
			return NewAddressPubKeyHashFromPubKey(pubKey, chaincfg.TestNet)
		},
		makeErr:   nil,
		addr:      "mtoKs9V381UAhUia3d7Vb9GNak8Qvmcsme",
		net:       chaincfg.TestNet,
		decodeErr: nil,
		kind:      PubKeyHash,
		payload:   "91b24bf9f5288532960ac687abb035127b1d28a5",
	}, {
		name: "p2pkh from pubkey not on the curve",
		makeAddr: func() (*Address, error) {
			pubKey := hexToBytes("02ffffffffffffffffffffffffffffffffffffffff" +
				"ffffffffffffffffffffffff")
			return NewAddressPubKeyHashFromPubKey(pubKey, chaincfg.MainNet)
		},
		makeErr: addrerr.ErrInvalidPubKey,
	}, {
		name: "p2pkh from pubkey with bad length",
		makeAddr: func() (*Address, error) {
			pubKey := hexToBytes("0279be667ef9dcbbac55a06295ce870b07")
			return NewAddressPubKeyHashFromPubKey(pubKey, chaincfg.MainNet)
		},
		makeErr: addrerr.ErrInvalidPubKey,
	}, {
		name: "p2pkh hash too short",
		makeAddr: func() (*Address, error) {
			pkHash := hexToBytes("4a22c3c4cbb31e4d03b15550636762bda0baf8")
			return NewAddressPubKeyHash(pkHash, chaincfg.MainNet)
		},
		makeErr: addrerr.ErrInvalidDataLength,
	}, {
		name: "p2pkh hash too long",
		makeAddr: func() (*Address, error) {
			pkHash := hexToBytes("4a22c3c4cbb31e4d03b15550636762bda0baf85a00")
			return NewAddressPubKeyHash(pkHash, chaincfg.MainNet)
		},
		makeErr: addrerr.ErrInvalidDataLength,
	}, {
		name: "p2pkh on regression net without base58 versions",
		makeAddr: func() (*Address, error) {
			pkHash := hexToBytes("4a22c3c4cbb31e4d03b15550636762bda0baf85a")
			return NewAddressPubKeyHash(pkHash, chaincfg.RegressionNet)
		},
		makeErr: addrerr.ErrInvalidPrefix,
	}, {
		name: "p2pkh on unit test net",
		makeAddr: func() (*Address, error) {
			pkHash := hexToBytes("4a22c3c4cbb31e4d03b15550636762bda0baf85a")
			return NewAddressPubKeyHash(pkHash, chaincfg.UnitTestNet)
		},
		makeErr: addrerr.ErrInvalidPrefix,
	}, {
		name:      "p2pkh payload too short",
		addr:      "B7v1J1FGbDZTTXvP94Pk1SCQJfsx3hKN4",
		net:       chaincfg.TestNet,
		decodeErr: addrerr.ErrInvalidDataLength,
	}, {
		name:      "p2pkh payload too long",
		addr:      "4Q91D4GcykZLUE7ateUXqLVsQFfEBawTPcbe",
		net:       chaincfg.TestNet,
		decodeErr: addrerr.ErrInvalidDataLength,
	}, {
		name:      "version byte without payload",
		addr:      "1Wh4bh",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidDataLength,
	}, {
		name:      "checksum without version byte",
		addr:      "3QJmnh",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidDataLength,
	}, {
		name:      "mainnet p2pkh bad checksum",
		addr:      "17kzeh4N8g49GFvdDzSf8PjaPfyoD1MndM",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidChecksum,
	}, {
		name:      "mainnet p2pkh decoded for testnet",
		addr:      "17kzeh4N8g49GFvdDzSf8PjaPfyoD1MndL",
		net:       chaincfg.TestNet,
		decodeErr: addrerr.ErrWrongNetwork,
	}, {
		name:      "testnet p2pkh decoded for mainnet",
		addr:      "n4eA2nbYqErp7H6jebchxAN59DmNpksexv",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrWrongNetwork,
	}, {
		name:      "unknown version byte",
		addr:      "TZJozAg1ruapycCicgz31GxvYJ1G1qELV7",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidPrefix,
	}, {
		name:      "not an address",
		addr:      "this is not a valid address!",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidCharacter,
	}, {
		name:      "empty string",
		addr:      "",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidDataLength,
	}, {
		// ---------------------------------------------------------------------
		// Pay-to-script-hash.
		// ---------------------------------------------------------------------

		name: "mainnet p2sh",
		makeAddr: func() (*Address, error) {
			scriptHash := hexToBytes("f815b036d9bbbce5e9f2a00abd1bf3dc91e95510")
			return NewAddressScriptHash(scriptHash, chaincfg.MainNet)
		},
		makeErr:   nil,
		addr:      "3QJmV3qfvL9SuYo34YihAf3sRCW3qSinyC",
		net:       chaincfg.MainNet,
		decodeErr: nil,
		kind:      ScriptHash,
		payload:   "f815b036d9bbbce5e9f2a00abd1bf3dc91e95510",
	}, {
		name: "testnet p2sh",
		makeAddr: func() (*Address, error) {
			scriptHash := hexToBytes("f815b036d9bbbce5e9f2a00abd1bf3dc91e95510")
			return NewAddressScriptHash(scriptHash, chaincfg.TestNet)
		},
		makeErr:   nil,
		addr:      "2NFryYnmhXneo7LRajgLZnc38dYiDePvf3G",
		net:       chaincfg.TestNet,
		decodeErr: nil,
		kind:      ScriptHash,
		payload:   "f815b036d9bbbce5e9f2a00abd1bf3dc91e95510",
	}, {
		name: "mainnet p2sh from script",
		makeAddr: func() (*Address, error) {
			script := hexToBytes(multiSigScript)
			return NewAddressScriptHashFromScript(script, chaincfg.MainNet)
		},
		makeErr:   nil,
		addr:      "3DicS6C8JZm59RsrgXr56iVHzYdQngiehV",
		net:       chaincfg.MainNet,
		decodeErr: nil,
		kind:      ScriptHash,
		payload:   "83eebb7d79aa1d388e3b0ac65b98ac580c4da01a",
	}, {
		name: "testnet p2sh from script",
		makeAddr: func() (*Address, error) {
			script := hexToBytes(multiSigScript)
			return NewAddressScriptHashFromScript(script, chaincfg.TestNet)
		},
		makeErr:   nil,
		addr:      "2N5GpVq89v2GRMDWQMfTwifUZCtqaczC6Y7",
		net:       chaincfg.TestNet,
		decodeErr: nil,
		kind:      ScriptHash,
		payload:   "83eebb7d79aa1d388e3b0ac65b98ac580c4da01a",
	}, {
		name: "p2sh hash too short",
		makeAddr: func() (*Address, error) {
			scriptHash := hexToBytes("f815b036d9bbbce5e9f2a00abd1bf3dc91e955")
			return NewAddressScriptHash(scriptHash, chaincfg.MainNet)
		},
		makeErr: addrerr.ErrInvalidDataLength,
	}, {
		name:      "mainnet p2sh decoded for testnet",
		addr:      "3QJmV3qfvL9SuYo34YihAf3sRCW3qSinyC",
		net:       chaincfg.TestNet,
		decodeErr: addrerr.ErrWrongNetwork,
	}, {
		// ---------------------------------------------------------------------
		// Segregated witness.
		// ---------------------------------------------------------------------

		name: "mainnet p2wpkh",
		makeAddr: func() (*Address, error) {
			program := hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6")
			return NewAddressWitnessProgram(0, program, chaincfg.MainNet)
		},
		makeErr:   nil,
		addr:      "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
		net:       chaincfg.MainNet,
		decodeErr: nil,
		kind:      WitnessPubKeyHash,
		payload:   "751e76e8199196d454941c45d1b3a323f1433bd6",
	}, {
		name: "testnet p2wpkh",
		makeAddr: func() (*Address, error) {
			program := hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6")
			return NewAddressWitnessProgram(0, program, chaincfg.TestNet)
		},
		makeErr:   nil,
		addr:      "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx",
		net:       chaincfg.TestNet,
		decodeErr: nil,
		kind:      WitnessPubKeyHash,
		payload:   "751e76e8199196d454941c45d1b3a323f1433bd6",
	}, {
		name: "regression net p2wpkh",
		makeAddr: func() (*Address, error) {
			program := hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6")
			return NewAddressWitnessProgram(0, program, chaincfg.RegressionNet)
		},
		makeErr:   nil,
		addr:      "bcrt1qw508d6qejxtdg4y5r3zarvary0c5xw7kygt080",
		net:       chaincfg.RegressionNet,
		decodeErr: nil,
		kind:      WitnessPubKeyHash,
		payload:   "751e76e8199196d454941c45d1b3a323f1433bd6",
	}, {
		name: "mainnet p2wpkh from compressed pubkey",
		makeAddr: func() (*Address, error) {
			pubKey := hexToBytes(pubKeyComp)
			return NewAddressWitnessPubKeyHashFromPubKey(pubKey,
				chaincfg.MainNet)
		},
		makeErr:   nil,
		addr:      "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
		net:       chaincfg.MainNet,
		decodeErr: nil,
		kind:      WitnessPubKeyHash,
		payload:   "751e76e8199196d454941c45d1b3a323f1433bd6",
	}, {
		name: "p2wpkh from uncompressed pubkey",
		makeAddr: func() (*Address, error) {
			pubKey := hexToBytes(pubKeyUncomp)
			return NewAddressWitnessPubKeyHashFromPubKey(pubKey,
				chaincfg.MainNet)
		},
		makeErr: addrerr.ErrInvalidPubKey,
	}, {
		name:      "mainnet p2wpkh uppercase",
		addr:      "BC1QW508D6QEJXTDG4Y5R3ZARVARY0C5XW7KV8F3T4",
		net:       chaincfg.MainNet,
		decodeErr: nil,
		kind:      WitnessPubKeyHash,
		payload:   "751e76e8199196d454941c45d1b3a323f1433bd6",
	}, {
		name: "mainnet p2wsh",
		makeAddr: func() (*Address, error) {
			program := hexToBytes("1863143c14c5166804bd19203356da136c985678c" +
				"d4d27a1b8c6329604903262")
			return NewAddressWitnessProgram(0, program, chaincfg.MainNet)
		},
		makeErr:   nil,
		addr:      "bc1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qccfmv3",
		net:       chaincfg.MainNet,
		decodeErr: nil,
		kind:      WitnessScriptHash,
		payload:   "1863143c14c5166804bd19203356da136c985678cd4d27a1b8c6329604903262",
	}, {
		name: "testnet p2wsh",
		makeAddr: func() (*Address, error) {
			program := hexToBytes("1863143c14c5166804bd19203356da136c985678c" +
				"d4d27a1b8c6329604903262")
			return NewAddressWitnessProgram(0, program, chaincfg.TestNet)
		},
		makeErr:   nil,
		addr:      "tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7",
		net:       chaincfg.TestNet,
		decodeErr: nil,
		kind:      WitnessScriptHash,
		payload:   "1863143c14c5166804bd19203356da136c985678cd4d27a1b8c6329604903262",
	}, {
		name: "testnet p2wsh leading zeros",
		makeAddr: func() (*Address, error) {
			program := hexToBytes("000000c4a5cad46221b2a187905e5266362b99d5e" +
				"91c6ce24d165dab93e86433")
			return NewAddressWitnessProgram(0, program, chaincfg.TestNet)
		},
		makeErr:   nil,
		addr:      "tb1qqqqqp399et2xygdj5xreqhjjvcmzhxw4aywxecjdzew6hylgvsesrxh6hy",
		net:       chaincfg.TestNet,
		decodeErr: nil,
		kind:      WitnessScriptHash,
		payload:   "000000c4a5cad46221b2a187905e5266362b99d5e91c6ce24d165dab93e86433",
	}, {
		name: "witness version 0 program with bad length",
		makeAddr: func() (*Address, error) {
			program := hexToBytes("751e76e8199196d454941c45d1b3a323")
			return NewAddressWitnessProgram(0, program, chaincfg.MainNet)
		},
		makeErr: addrerr.ErrInvalidDataLength,
	}, {
		name: "witness program too short",
		makeAddr: func() (*Address, error) {
			return NewAddressWitnessProgram(1, []byte{0x75}, chaincfg.MainNet)
		},
		makeErr: addrerr.ErrInvalidDataLength,
	}, {
		name: "witness program too long",
		makeAddr: func() (*Address, error) {
			return NewAddressWitnessProgram(1, make([]byte, 41),
				chaincfg.MainNet)
		},
		makeErr: addrerr.ErrInvalidDataLength,
	}, {
		name: "witness version too high",
		makeAddr: func() (*Address, error) {
			program := hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6")
			return NewAddressWitnessProgram(17, program, chaincfg.MainNet)
		},
		makeErr: addrerr.ErrInvalidWitnessVersion,
	}, {
		name: "unregistered witness version",
		makeAddr: func() (*Address, error) {
			program := hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6")
			return NewAddressWitnessProgram(1, program, chaincfg.MainNet)
		},
		makeErr: addrerr.ErrInvalidPrefix,
	}, {
		name: "witness program on unit test net",
		makeAddr: func() (*Address, error) {
			program := hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6")
			return NewAddressWitnessProgram(0, program, chaincfg.UnitTestNet)
		},
		makeErr: addrerr.ErrInvalidPrefix,
	}, {
		name:      "mainnet p2wpkh decoded for testnet",
		addr:      "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
		net:       chaincfg.TestNet,
		decodeErr: addrerr.ErrWrongNetwork,
	}, {
		name:      "unknown human-readable part",
		addr:      "tc1qw508d6qejxtdg4y5r3zarvary0c5xw7kg3g4ty",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidPrefix,
	}, {
		name:      "bad bech32 checksum",
		addr:      "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t5",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidChecksum,
	}, {
		name:      "invalid witness version",
		addr:      "BC13W508D6QEJXTDG4Y5R3ZARVARY0C5XW7KN40WF2",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidWitnessVersion,
	}, {
		name:      "invalid program length",
		addr:      "bc1rw5uspcuh",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidDataLength,
	}, {
		name:      "invalid program length (41 bytes)",
		addr:      "bc10w508d6qejxtdg4y5r3zarvary0c5xw7kw508d6qejxtdg4y5r3zarvary0c5xw7kw5rljs90",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidDataLength,
	}, {
		name:      "invalid program length for witness version 0",
		addr:      "BC1QR508D6QEJXTDG4Y5R3ZARVARYV98GJ9P",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidDataLength,
	}, {
		name:      "mixed case",
		addr:      "tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sL5k7",
		net:       chaincfg.TestNet,
		decodeErr: addrerr.ErrInvalidCharacter,
	}, {
		name:      "zero padding of more than 4 bits",
		addr:      "bc1zw508d6qejxtdg4y5r3zarvaryvqyzf3du",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidPadding,
	}, {
		name:      "non-zero padding in 8-to-5 conversion",
		addr:      "tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3pjxtptv",
		net:       chaincfg.TestNet,
		decodeErr: addrerr.ErrInvalidPadding,
	}, {
		name:      "empty data section",
		addr:      "bc1gmk9yu",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidDataLength,
	}, {
		name:      "unregistered witness version 1",
		addr:      "bc1pw508d6qejxtdg4y5r3zarvary0c5xw7kw508d6qejxtdg4y5r3zarvary0c5xw7k7grplx",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidPrefix,
	}, {
		name:      "unregistered witness version 16",
		addr:      "BC1SW50QA3JX3S",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidPrefix,
	}, {
		name:      "unregistered witness version 2",
		addr:      "bc1zw508d6qejxtdg4y5r3zarvaryvg6kdaj",
		net:       chaincfg.MainNet,
		decodeErr: addrerr.ErrInvalidPrefix,
	}}

	for _, test := range tests {
		// Create address from test constructor and ensure it produces the
		// expected encoded address when the constructor is specified.
		if test.makeAddr != nil {
			addr, err := test.makeAddr()
			if !errors.Is(err, test.makeErr) {
				t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
					test.makeErr)
				continue
			}
			if err != nil {
				continue
			}

			// Ensure encoding the address is the same as the original.
			encoded := addr.String()
			if encoded != test.addr {
				t.Errorf("%s: unexpected address -- got %v, want %v", test.name,
					encoded, test.addr)
				continue
			}
		}

		// Decode address and ensure the expected error is received.
		decodedAddr, err := DecodeAddressForNet(test.addr, test.net)
		if !errors.Is(err, test.decodeErr) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.decodeErr)
			continue
		}
		if err != nil {
			continue
		}

		// Ensure the kind, network and payload are the expected values.
		if decodedAddr.Kind() != test.kind {
			t.Errorf("%s: mismatched kind -- got %v, want %v", test.name,
				decodedAddr.Kind(), test.kind)
			continue
		}
		if !decodedAddr.IsForNet(test.net) || decodedAddr.Net() != test.net {
			t.Errorf("%s: mismatched network -- got %v, want %v", test.name,
				decodedAddr.Net(), test.net)
			continue
		}
		wantPayload := hexToBytes(test.payload)
		if !bytes.Equal(decodedAddr.Payload(), wantPayload) {
			t.Errorf("%s: mismatched payload -- got %x, want %x", test.name,
				decodedAddr.Payload(), wantPayload)
			continue
		}

		// Ensure decoding for any network produces the same address and that
		// encoding the decoded address produces the lowercase form for
		// segwit addresses and the original for base58 addresses.
		anyNetAddr, err := DecodeAddress(test.addr)
		if err != nil {
			t.Errorf("%s: unexpected error decoding for any network: %v",
				test.name, err)
			continue
		}
		if !anyNetAddr.Equal(decodedAddr) {
			t.Errorf("%s: mismatched address decoding for any network",
				test.name)
			continue
		}
		wantEncoded := test.addr
		if test.kind.IsSegWit() {
			wantEncoded = toLower(test.addr)
		}
		if encoded := EncodeAddress(decodedAddr); encoded != wantEncoded {
			t.Errorf("%s: mismatched re-encoding -- got %s, want %s",
				test.name, encoded, wantEncoded)
			continue
		}
	}
}

// toLower returns the ASCII lowercase form of s.
func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// TestDecodeErrorDetails ensures the detailed error types carry the values
// needed to describe the failure precisely.
func TestDecodeErrorDetails(t *testing.T) {
	// Junk input reports the first character outside of the base58 alphabet.
	_, err := DecodeAddress("this is not a valid address!")
	var charErr addrerr.CharacterError
	if !errors.As(err, &charErr) {
		t.Fatalf("unexpected error type %T: %v", err, err)
	}
	if charErr.Char != ' ' || charErr.Position != 4 {
		t.Fatalf("unexpected character error -- got %q at %d, want ' ' at 4",
			charErr.Char, charErr.Position)
	}

	// A mainnet base58 address decoded for testnet carries its prefix.
	_, err = DecodeAddressForNet("17kzeh4N8g49GFvdDzSf8PjaPfyoD1MndL",
		chaincfg.TestNet)
	var netErr addrerr.WrongNetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("unexpected error type %T: %v", err, err)
	}
	if netErr.Prefix != 0x00 || netErr.HRP != "" {
		t.Fatalf("unexpected prefix -- got %d/%q, want 0", netErr.Prefix,
			netErr.HRP)
	}
	if netErr.Want != "testnet" || netErr.Got != "mainnet" {
		t.Fatalf("unexpected networks -- got want=%s got=%s", netErr.Want,
			netErr.Got)
	}

	// A testnet script hash address decoded for mainnet carries its prefix.
	_, err = DecodeAddressForNet("2NFryYnmhXneo7LRajgLZnc38dYiDePvf3G",
		chaincfg.MainNet)
	if !errors.As(err, &netErr) || netErr.Prefix != 0xc4 {
		t.Fatalf("unexpected error: %v", err)
	}

	// A segwit address decoded for another network carries its hrp.
	_, err = DecodeAddressForNet("tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx",
		chaincfg.RegressionNet)
	if !errors.As(err, &netErr) {
		t.Fatalf("unexpected error type %T: %v", err, err)
	}
	if netErr.HRP != "tb" || netErr.Want != "regtest" || netErr.Got != "testnet" {
		t.Fatalf("unexpected wrong network error: %+v", netErr)
	}

	// Invalid bech32 characters are reported at their absolute position.
	_, err = DecodeAddress("tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sL5k7")
	if !errors.As(err, &charErr) || charErr.Position != 58 {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestDecodeFormatSpecific ensures the format specific decoders only accept
// their own format.
func TestDecodeFormatSpecific(t *testing.T) {
	const (
		base58Addr = "17kzeh4N8g49GFvdDzSf8PjaPfyoD1MndL"
		segwitAddr = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	)

	if _, err := DecodeBase58Address(base58Addr); err != nil {
		t.Fatalf("unexpected error decoding %s: %v", base58Addr, err)
	}
	if _, err := DecodeSegWitAddress(segwitAddr); err != nil {
		t.Fatalf("unexpected error decoding %s: %v", segwitAddr, err)
	}

	// Bech32 strings may contain characters outside of the base58 alphabet.
	_, err := DecodeBase58Address(segwitAddr)
	if !errors.Is(err, addrerr.ErrInvalidCharacter) {
		t.Fatalf("mismatched err -- got %v, want %v", err,
			addrerr.ErrInvalidCharacter)
	}

	// Base58 addresses are mixed case which bech32 does not allow.
	_, err = DecodeSegWitAddress(base58Addr)
	if !errors.Is(err, addrerr.ErrInvalidCharacter) {
		t.Fatalf("mismatched err -- got %v, want %v", err,
			addrerr.ErrInvalidCharacter)
	}

	// A lowercase base58 string has no valid separator position.
	_, err = DecodeSegWitAddress("1zzzzzzzz")
	if !errors.Is(err, addrerr.ErrInvalidPrefix) {
		t.Fatalf("mismatched err -- got %v, want %v", err,
			addrerr.ErrInvalidPrefix)
	}
}

// TestAddressAccessors ensures the accessors of an address report the expected
// values and do not allow the address to be modified.
func TestAddressAccessors(t *testing.T) {
	pkHash := hexToBytes("4a22c3c4cbb31e4d03b15550636762bda0baf85a")
	addr, err := NewAddressPubKeyHash(pkHash, chaincfg.MainNet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Modifying the slice used to create the address or the returned payload
	// must not modify the address.
	pkHash[0] ^= 0xff
	payload := addr.Payload()
	payload[1] ^= 0xff
	if got := addr.String(); got != "17kzeh4N8g49GFvdDzSf8PjaPfyoD1MndL" {
		t.Fatalf("address was modified: %s", got)
	}

	if _, ok := addr.WitnessVersion(); ok {
		t.Fatal("legacy address reports a witness version")
	}
	hash, ok := addr.Hash160()
	if !ok {
		t.Fatal("pubkey hash address does not report a hash160")
	}
	if want := hexToBytes("4a22c3c4cbb31e4d03b15550636762bda0baf85a"); !bytes.Equal(hash[:], want) {
		t.Fatalf("mismatched hash160 -- got %x, want %x", hash[:], want)
	}
	prefix, ok := addr.Version().LegacyPrefix()
	if !ok || prefix != 0x00 {
		t.Fatalf("unexpected legacy prefix %d (%v)", prefix, ok)
	}
	if _, ok := addr.Version().HRP(); ok {
		t.Fatal("legacy address version reports an hrp")
	}

	program := hexToBytes("1863143c14c5166804bd19203356da136c985678cd4d27a1b8c6329604903262")
	wsh, err := NewAddressWitnessProgram(0, program, chaincfg.TestNet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if witVer, ok := wsh.WitnessVersion(); !ok || witVer != 0 {
		t.Fatalf("unexpected witness version %d (%v)", witVer, ok)
	}
	if _, ok := wsh.Hash160(); ok {
		t.Fatal("witness script hash address reports a hash160")
	}
	if hrp, ok := wsh.Version().HRP(); !ok || hrp != "tb" {
		t.Fatalf("unexpected hrp %q (%v)", hrp, ok)
	}
	if wsh.Equal(addr) {
		t.Fatal("different addresses reported as equal")
	}
	if addr.Equal(nil) {
		t.Fatal("address reported as equal to nil")
	}

	// The zero value encodes to the empty string.
	if got := EncodeAddress(&Address{}); got != "" {
		t.Fatalf("unexpected encoding of zero address: %q", got)
	}
}

// TestEncodeInvalidVersionPanics ensures encoding an address that was not
// created by this package, and whose version can't be encoded, panics instead
// of producing an empty string.
func TestEncodeInvalidVersionPanics(t *testing.T) {
	addr := &Address{
		version: &AddressVersion{kind: WitnessPubKeyHash, hrp: ""},
		payload: hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6"),
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("encoding an address with an empty hrp did not panic")
		}
	}()
	EncodeAddress(addr)
}
