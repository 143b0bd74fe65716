// Copyright (c) 2021-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package stdaddr provides facilities for working with human-readable Bitcoin
payment addresses.

# Address Kinds

The package supports pay-to-pubkey-hash (P2PKH) and pay-to-script-hash (P2SH)
addresses, which are base58 check encoded with a version byte, along with
version 0 segregated witness addresses (P2WPKH and P2WSH), which are bech32
encoded with a human-readable part.  Every address is represented by the same
immutable Address type whose AddressVersion identifies its kind and network.

# Address Versions

The version bytes and human-readable parts of the standard networks defined by
the chaincfg package are collected into a fixed registry when the package is
initialized.  The registry is a bijection: a version byte identifies exactly
one kind and network, and a human-readable part and witness version pair
identifies exactly one network.  The registry is never modified afterwards, so
all functions in this package are safe for concurrent use.

# Decoding

DecodeAddress accepts both encodings and determines which one applies from the
shape of the string, while DecodeAddressForNet additionally requires the
address to be for a specific network.  All errors can be identified by kind
with errors.Is against the kinds defined in the addrerr package.
*/
package stdaddr
