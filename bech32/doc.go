// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bech32 provides a Go implementation of the bech32 format specified in
BIP 173.

Bech32 strings consist of a human-readable part (hrp), followed by the
separator 1, then a checksummed data part encoded using the 32 characters
"qpzry9x8gf2tvdw0s3jn54khce6mua7l".

The Encode and Decode functions work with regular 8-bit data and perform the
conversion to and from the 5-bit groups of the data part.  EncodeBase32 and
DecodeBase32 work with the 5-bit groups directly, which is what segregated
witness addresses need since their witness version is a single group that is
not converted.  ConvertBits regroups data between arbitrary bit widths.

More info: https://github.com/bitcoin/bips/blob/master/bip-0173.mediawiki
*/
package bech32
