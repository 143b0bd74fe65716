// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package base58 provides an API for working with modified base58 and Base58Check
encodings as used by Bitcoin addresses.

# Modified Base58 Encoding

Standard base58 encoding is similar to standard base64 encoding except, as the
name implies, it uses a 58 character alphabet which results in an alphanumeric
string and allows some characters which are problematic for humans to be
excluded.

The modified base58 alphabet used by this package omits the 0, O, I, and l
characters that look the same in many fonts and are therefore hard for humans
to distinguish.  Every leading zero byte of the input is encoded as a leading
'1' character and vice versa, so the encoding is exactly reversible.

# Base58Check Encoding Scheme

Base58Check prepends a single version byte to the payload and appends the first
four bytes of the double SHA-256 hash of the version and payload before
encoding the whole thing with modified base58.  The version byte differentiates
the network and kind of otherwise identical payloads, while the checksum
catches typing errors.

# Errors

Decoding errors can be identified with errors.Is against the kinds defined in
the addrerr package.  Invalid characters are reported as an
addrerr.CharacterError which carries the offending character and its position.
*/
package base58
