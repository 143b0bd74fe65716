// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

const (
	// alphabet is the modified base58 alphabet used by Bitcoin.
	alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	alphabetIdx0 = '1'

	// invalidIdx marks entries of b58 that are not part of the alphabet.
	invalidIdx = 255
)

// b58 maps each ASCII character to its index in the alphabet.
var b58 = func() [128]byte {
	var table [128]byte
	for i := range table {
		table[i] = invalidIdx
	}
	for i := 0; i < len(alphabet); i++ {
		table[alphabet[i]] = byte(i)
	}
	return table
}()
