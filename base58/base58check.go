// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"fmt"

	"github.com/decred/btcaddr/addrerr"
	"github.com/decred/btcaddr/chaincfg/chainhash"
)

// ChecksumSize is the number of checksum bytes appended by CheckEncode.
const ChecksumSize = 4

// checksum returns the first four bytes of sha256(sha256(input)).
func checksum(input []byte) (cksum [ChecksumSize]byte) {
	copy(cksum[:], chainhash.DoubleHashB(input))
	return
}

// CheckEncode prepends a version byte and appends a four byte checksum.
func CheckEncode(version byte, payload []byte) string {
	b := make([]byte, 0, 1+len(payload)+ChecksumSize)
	b = append(b, version)
	b = append(b, payload...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return Encode(b)
}

// CheckDecode decodes a string that was encoded with CheckEncode and verifies
// the checksum.  The returned data still begins with the version byte, so
// callers that need the version split it off themselves.  The data is empty
// when the decoded string held nothing but a checksum.
//
// The error is of kind addrerr.ErrInvalidCharacter when the string is not valid
// base58, addrerr.ErrInvalidDataLength when it decodes to fewer bytes than a
// checksum, and addrerr.ErrInvalidChecksum when the checksum does not verify.
func CheckDecode(s string) ([]byte, error) {
	decoded, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) < ChecksumSize {
		str := fmt.Sprintf("input too short: %d", len(decoded))
		return nil, addrerr.MakeError(addrerr.ErrInvalidDataLength, str)
	}

	data := decoded[:len(decoded)-ChecksumSize]
	var cksum [ChecksumSize]byte
	copy(cksum[:], decoded[len(decoded)-ChecksumSize:])
	if checksum(data) != cksum {
		str := fmt.Sprintf("checksum mismatch: got %x, want %x", cksum,
			checksum(data))
		return nil, addrerr.MakeError(addrerr.ErrInvalidChecksum, str)
	}
	return data, nil
}
