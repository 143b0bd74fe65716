// Copyright (c) 2021-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"bytes"
	"fmt"

	"github.com/decred/btcaddr/addrerr"
	"github.com/decred/btcaddr/chaincfg"
	"github.com/decred/btcaddr/chaincfg/chainhash"
	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// legacyPayloadLen is the length of the hash carried by pay-to-pubkey-hash
	// and pay-to-script-hash addresses.
	legacyPayloadLen = ripemd160.Size

	// minWitnessProgramLen and maxWitnessProgramLen bound the length of the
	// witness program of any witness version.
	minWitnessProgramLen = 2
	maxWitnessProgramLen = 40

	// witnessV0PubKeyHashLen and witnessV0ScriptHashLen are the only valid
	// witness program lengths for witness version 0.
	witnessV0PubKeyHashLen = 20
	witnessV0ScriptHashLen = 32

	// maxWitnessVersion is the highest witness version.
	maxWitnessVersion = 16
)

// checkPayloadLen ensures the payload has a valid length for either a legacy
// address or, when segwit is set, a segregated witness address with the given
// witness version.  It is used both when constructing and when decoding
// addresses so the two can never disagree.
func checkPayloadLen(segwit bool, witnessVersion byte, payload []byte) error {
	if !segwit {
		if len(payload) != legacyPayloadLen {
			str := fmt.Sprintf("address payload is %d bytes vs required %d "+
				"bytes", len(payload), legacyPayloadLen)
			return addrerr.MakeError(addrerr.ErrInvalidDataLength, str)
		}
		return nil
	}

	if witnessVersion > maxWitnessVersion {
		str := fmt.Sprintf("witness version %d is greater than %d",
			witnessVersion, maxWitnessVersion)
		return addrerr.MakeError(addrerr.ErrInvalidWitnessVersion, str)
	}
	if len(payload) < minWitnessProgramLen || len(payload) > maxWitnessProgramLen {
		str := fmt.Sprintf("witness program is %d bytes vs required %d to "+
			"%d bytes", len(payload), minWitnessProgramLen,
			maxWitnessProgramLen)
		return addrerr.MakeError(addrerr.ErrInvalidDataLength, str)
	}
	if witnessVersion == 0 && len(payload) != witnessV0PubKeyHashLen &&
		len(payload) != witnessV0ScriptHashLen {

		str := fmt.Sprintf("version 0 witness program is %d bytes vs "+
			"required %d or %d bytes", len(payload), witnessV0PubKeyHashLen,
			witnessV0ScriptHashLen)
		return addrerr.MakeError(addrerr.ErrInvalidDataLength, str)
	}
	return nil
}

// Address is a validated payment address: a payload together with the
// address version that says how it is encoded and which network it belongs
// to.
//
// Addresses are immutable.  They are only created by the constructors in this
// package and by decoding, and the payload is copied on the way in and out.
type Address struct {
	version *AddressVersion
	payload []byte
}

// newAddress returns an address with a copy of the payload.  The payload must
// already have been validated for the version.
func newAddress(version *AddressVersion, payload []byte) *Address {
	return &Address{
		version: version,
		payload: append([]byte(nil), payload...),
	}
}

// newLegacyAddress returns a new legacy address of the given kind after
// validating the payload length.
func newLegacyAddress(kind AddressKind, payload []byte, net chaincfg.NetworkType) (*Address, error) {
	if err := checkPayloadLen(false, 0, payload); err != nil {
		return nil, err
	}
	version, err := VersionFor(kind, net)
	if err != nil {
		return nil, err
	}
	return newAddress(version, payload), nil
}

// NewAddressPubKeyHash returns a pay-to-pubkey-hash address for the given
// network.  The hash must be the 20-byte RIPEMD-160 of the SHA-256 of a
// serialized public key.
func NewAddressPubKeyHash(pkHash []byte, net chaincfg.NetworkType) (*Address, error) {
	return newLegacyAddress(PubKeyHash, pkHash, net)
}

// NewAddressScriptHash returns a pay-to-script-hash address for the given
// network.  The hash must be the 20-byte RIPEMD-160 of the SHA-256 of the
// redeem script.
//
// See NewAddressScriptHashFromScript for a variant that accepts the redeem
// script and hashes it instead.
func NewAddressScriptHash(scriptHash []byte, net chaincfg.NetworkType) (*Address, error) {
	return newLegacyAddress(ScriptHash, scriptHash, net)
}

// NewAddressWitnessProgram returns a segregated witness address for the given
// witness version and program on the given network.
//
// The witness version must be at most 16 and the program must be between 2 and
// 40 bytes, and exactly 20 or 32 bytes for witness version 0.  Only version 0
// programs have registered address versions, so other versions result in an
// error of kind addrerr.ErrInvalidPrefix once their length has been checked.
func NewAddressWitnessProgram(witnessVersion byte, program []byte, net chaincfg.NetworkType) (*Address, error) {
	if err := checkPayloadLen(true, witnessVersion, program); err != nil {
		return nil, err
	}
	params, err := chaincfg.ParamsForNet(net)
	if err != nil {
		return nil, addrerr.MakeError(addrerr.ErrInvalidPrefix, err.Error())
	}
	if params.Bech32HRPSegwit == "" {
		str := fmt.Sprintf("no segwit address version for network %v", net)
		return nil, addrerr.MakeError(addrerr.ErrInvalidPrefix, str)
	}
	version, err := LookupWitnessVersion(params.Bech32HRPSegwit,
		witnessVersion, len(program))
	if err != nil {
		return nil, err
	}
	return newAddress(version, program), nil
}

// NewAddressPubKeyHashFromPubKey returns a pay-to-pubkey-hash address for the
// given serialized secp256k1 public key.  The key may be in either the 33-byte
// compressed or 65-byte uncompressed format, and the address commits to the
// format it is given in.
func NewAddressPubKeyHashFromPubKey(serializedPubKey []byte, net chaincfg.NetworkType) (*Address, error) {
	// Attempt to parse the provided public key to ensure it is both a valid
	// serialization and that it is a valid point on the secp256k1 curve.
	if _, err := secp256k1.ParsePubKey(serializedPubKey); err != nil {
		str := fmt.Sprintf("failed to parse public key: %v", err)
		return nil, addrerr.MakeError(addrerr.ErrInvalidPubKey, str)
	}
	return NewAddressPubKeyHash(chainhash.Hash160(serializedPubKey), net)
}

// NewAddressScriptHashFromScript returns a pay-to-script-hash address that
// commits to the given redeem script.
func NewAddressScriptHashFromScript(redeemScript []byte, net chaincfg.NetworkType) (*Address, error) {
	return NewAddressScriptHash(chainhash.Hash160(redeemScript), net)
}

// NewAddressWitnessPubKeyHashFromPubKey returns a version 0 pay-to-witness-
// pubkey-hash address for the given serialized secp256k1 public key.
//
// The provided public key MUST be a valid secp256k1 public key serialized in
// the _compressed_ format or an error will be returned.
func NewAddressWitnessPubKeyHashFromPubKey(serializedPubKey []byte, net chaincfg.NetworkType) (*Address, error) {
	if _, err := secp256k1.ParsePubKey(serializedPubKey); err != nil {
		str := fmt.Sprintf("failed to parse public key: %v", err)
		return nil, addrerr.MakeError(addrerr.ErrInvalidPubKey, str)
	}

	// The pubkey is known to be valid since it parsed above, so it's safe to
	// simply examine the leading byte to get the format.
	//
	// Notice that both the uncompressed and hybrid forms are intentionally not
	// supported.
	switch serializedPubKey[0] {
	case secp256k1.PubKeyFormatCompressedEven:
	case secp256k1.PubKeyFormatCompressedOdd:
	default:
		str := fmt.Sprintf("serialized public key %x is not a valid format",
			serializedPubKey)
		return nil, addrerr.MakeError(addrerr.ErrInvalidPubKey, str)
	}
	return NewAddressWitnessProgram(0, chainhash.Hash160(serializedPubKey), net)
}

// Kind returns the kind of the address.
func (a *Address) Kind() AddressKind {
	return a.version.kind
}

// Net returns the network the address is for.
func (a *Address) Net() chaincfg.NetworkType {
	return a.version.net
}

// IsForNet returns whether the address is for the given network.
func (a *Address) IsForNet(net chaincfg.NetworkType) bool {
	return a.version.net == net
}

// Version returns the address version of the address.
func (a *Address) Version() *AddressVersion {
	return a.version
}

// Payload returns a copy of the payload of the address: the hash for legacy
// addresses and the witness program for segregated witness addresses.
func (a *Address) Payload() []byte {
	return append([]byte(nil), a.payload...)
}

// WitnessVersion returns the witness version and true for segregated witness
// addresses.  It returns false for legacy addresses.
func (a *Address) WitnessVersion() (byte, bool) {
	if !a.version.kind.IsSegWit() {
		return 0, false
	}
	return a.version.witnessVersion, true
}

// Hash160 returns the RIPEMD-160 hash the address commits to and true for the
// kinds whose payload is such a hash.  It returns false for pay-to-witness-
// script-hash addresses which commit to a SHA-256 hash instead.
func (a *Address) Hash160() (*[ripemd160.Size]byte, bool) {
	if a.version.kind == WitnessScriptHash {
		return nil, false
	}
	var hash [ripemd160.Size]byte
	copy(hash[:], a.payload)
	return &hash, true
}

// Equal returns whether the two addresses have the same version and payload.
// It returns false when other is nil.
func (a *Address) Equal(other *Address) bool {
	if other == nil {
		return false
	}
	return a.version == other.version && bytes.Equal(a.payload, other.payload)
}

// String returns the encoded form of the address.  It is the same as calling
// EncodeAddress.
func (a *Address) String() string {
	return EncodeAddress(a)
}
