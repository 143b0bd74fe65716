// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"crypto/sha256"

	"github.com/decred/dcrd/crypto/ripemd160"
)

const (
	// HashSize is the size of a SHA-256 digest in bytes.
	HashSize = sha256.Size

	// Hash160Size is the size of a RIPEMD-160 digest in bytes.
	Hash160Size = ripemd160.Size
)

// HashB calculates sha256(b) and returns the resulting bytes.
func HashB(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[:]
}

// DoubleHashB calculates sha256(sha256(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Hash160 calculates ripemd160(sha256(b)) and returns the resulting bytes.
// This is the hash committed to by pay-to-pubkey-hash and pay-to-script-hash
// addresses.
func Hash160(b []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(HashB(b))
	return hasher.Sum(nil)
}
