// Copyright (c) 2021-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"fmt"
	"strings"

	"github.com/decred/btcaddr/addrerr"
	"github.com/decred/btcaddr/chaincfg"
)

// AddressKind identifies the kind of payment destination an address encodes.
type AddressKind uint8

// These constants define the supported address kinds.
const (
	// PubKeyHash is a pay-to-pubkey-hash (P2PKH) address.
	PubKeyHash AddressKind = iota

	// ScriptHash is a pay-to-script-hash (P2SH) address.
	ScriptHash

	// WitnessPubKeyHash is a version 0 segregated witness address with a
	// 20-byte witness program (P2WPKH).
	WitnessPubKeyHash

	// WitnessScriptHash is a version 0 segregated witness address with a
	// 32-byte witness program (P2WSH).
	WitnessScriptHash
)

// kindStrings is a map of address kinds back to their constant names for
// pretty printing.
var kindStrings = map[AddressKind]string{
	PubKeyHash:        "PubKeyHash",
	ScriptHash:        "ScriptHash",
	WitnessPubKeyHash: "WitnessPubKeyHash",
	WitnessScriptHash: "WitnessScriptHash",
}

// String returns the AddressKind in human-readable form.
func (k AddressKind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return fmt.Sprintf("Unknown AddressKind (%d)", uint8(k))
}

// IsSegWit returns whether addresses of the kind are bech32 encoded segregated
// witness addresses as opposed to base58 encoded legacy addresses.
func (k AddressKind) IsSegWit() bool {
	return k == WitnessPubKeyHash || k == WitnessScriptHash
}

// AddressVersion describes how addresses of one kind are encoded on one
// network.  Legacy kinds are identified by a base58 version byte while
// segregated witness kinds are identified by a human-readable part and a
// witness version.
//
// The set of versions is fixed when the package is initialized and instances
// are shared, so they must not be modified.
type AddressVersion struct {
	kind           AddressKind
	net            chaincfg.NetworkType
	legacyPrefix   byte
	hrp            string
	witnessVersion byte
}

// Kind returns the kind of addresses the version describes.
func (v *AddressVersion) Kind() AddressKind {
	return v.kind
}

// Net returns the network of addresses the version describes.
func (v *AddressVersion) Net() chaincfg.NetworkType {
	return v.net
}

// LegacyPrefix returns the base58 version byte and true for legacy kinds.  It
// returns false for segregated witness kinds.
func (v *AddressVersion) LegacyPrefix() (byte, bool) {
	if v.kind.IsSegWit() {
		return 0, false
	}
	return v.legacyPrefix, true
}

// HRP returns the bech32 human-readable part and true for segregated witness
// kinds.  It returns false for legacy kinds.
func (v *AddressVersion) HRP() (string, bool) {
	if !v.kind.IsSegWit() {
		return "", false
	}
	return v.hrp, true
}

// WitnessVersion returns the witness version of segregated witness kinds.  It
// is always 0 for legacy kinds.
func (v *AddressVersion) WitnessVersion() byte {
	return v.witnessVersion
}

// String returns the version in human-readable form.
func (v *AddressVersion) String() string {
	if v.kind.IsSegWit() {
		return fmt.Sprintf("%v/%v (hrp %q, witness version %d)", v.kind,
			v.net, v.hrp, v.witnessVersion)
	}
	return fmt.Sprintf("%v/%v (prefix 0x%02x)", v.kind, v.net,
		v.legacyPrefix)
}

// kindNet is the key of the registry index by address kind and network.
type kindNet struct {
	kind AddressKind
	net  chaincfg.NetworkType
}

// witnessKey is the key of the registry index of segregated witness versions.
type witnessKey struct {
	hrp            string
	witnessVersion byte
}

// registry maps the encoded identifiers of addresses to the address versions
// they stand for and back.
type registry struct {
	legacy    map[byte]*AddressVersion
	witness   map[witnessKey]map[AddressKind]*AddressVersion
	hrps      map[string]struct{}
	byKindNet map[kindNet]*AddressVersion
}

// add adds the version to the registry.  It returns an error if the encoded
// identifier of the version, or its kind and network, are already registered.
func (r *registry) add(v *AddressVersion) error {
	kn := kindNet{kind: v.kind, net: v.net}
	if other, ok := r.byKindNet[kn]; ok {
		return fmt.Errorf("%v is already registered as %v", v, other)
	}

	if !v.kind.IsSegWit() {
		if other, ok := r.legacy[v.legacyPrefix]; ok {
			return fmt.Errorf("%v shares its prefix with %v", v, other)
		}
		r.legacy[v.legacyPrefix] = v
		r.byKindNet[kn] = v
		return nil
	}

	// Every human-readable part and witness version pair must belong to a
	// single network.
	key := witnessKey{hrp: v.hrp, witnessVersion: v.witnessVersion}
	kinds, ok := r.witness[key]
	if !ok {
		kinds = make(map[AddressKind]*AddressVersion)
		r.witness[key] = kinds
	}
	for _, other := range kinds {
		if other.net != v.net || other.kind == v.kind {
			return fmt.Errorf("%v shares its hrp and witness version with %v",
				v, other)
		}
	}
	kinds[v.kind] = v
	r.hrps[v.hrp] = struct{}{}
	r.byKindNet[kn] = v
	return nil
}

// newRegistry creates a registry with the address versions of the provided
// networks.
func newRegistry(allParams []*chaincfg.Params) (*registry, error) {
	r := &registry{
		legacy:    make(map[byte]*AddressVersion),
		witness:   make(map[witnessKey]map[AddressKind]*AddressVersion),
		hrps:      make(map[string]struct{}),
		byKindNet: make(map[kindNet]*AddressVersion),
	}
	for _, params := range allParams {
		var versions []*AddressVersion
		if ids := params.LegacyAddrIDs; ids != nil {
			versions = append(versions, &AddressVersion{
				kind:         PubKeyHash,
				net:          params.Net,
				legacyPrefix: ids.PubKeyHashAddrID,
			}, &AddressVersion{
				kind:         ScriptHash,
				net:          params.Net,
				legacyPrefix: ids.ScriptHashAddrID,
			})
		}
		if hrp := params.Bech32HRPSegwit; hrp != "" {
			versions = append(versions, &AddressVersion{
				kind: WitnessPubKeyHash,
				net:  params.Net,
				hrp:  strings.ToLower(hrp),
			}, &AddressVersion{
				kind: WitnessScriptHash,
				net:  params.Net,
				hrp:  strings.ToLower(hrp),
			})
		}
		for _, v := range versions {
			if err := r.add(v); err != nil {
				return nil, fmt.Errorf("%s: %w", params.Name, err)
			}
		}
	}
	return r, nil
}

// registeredVersions is the registry of the standard networks.  It is never
// modified after initialization.
var registeredVersions = func() *registry {
	r, err := newRegistry(chaincfg.AllParams())
	if err != nil {
		panic(fmt.Sprintf("invalid address versions: %v", err))
	}
	return r
}()

// lookupLegacyPrefix returns the registered version with the given base58
// version byte.
func (r *registry) lookupLegacyPrefix(prefix byte) (*AddressVersion, error) {
	v, ok := r.legacy[prefix]
	if !ok {
		str := fmt.Sprintf("unknown address prefix %d", prefix)
		return nil, addrerr.MakeError(addrerr.ErrInvalidPrefix, str)
	}
	return v, nil
}

// lookupWitnessVersion returns the registered version for the lowercase
// human-readable part and witness version whose kind matches the program
// length.
func (r *registry) lookupWitnessVersion(hrp string, witnessVersion byte,
	programLen int) (*AddressVersion, error) {

	kinds, ok := r.witness[witnessKey{hrp: hrp, witnessVersion: witnessVersion}]
	if !ok {
		str := fmt.Sprintf("unknown human-readable part %q for witness "+
			"version %d", hrp, witnessVersion)
		return nil, addrerr.MakeError(addrerr.ErrInvalidPrefix, str)
	}

	var kind AddressKind
	switch programLen {
	case witnessV0PubKeyHashLen:
		kind = WitnessPubKeyHash
	case witnessV0ScriptHashLen:
		kind = WitnessScriptHash
	default:
		str := fmt.Sprintf("witness program is %d bytes vs required %d or "+
			"%d bytes", programLen, witnessV0PubKeyHashLen,
			witnessV0ScriptHashLen)
		return nil, addrerr.MakeError(addrerr.ErrInvalidDataLength, str)
	}
	v, ok := kinds[kind]
	if !ok {
		str := fmt.Sprintf("no %v address for human-readable part %q", kind,
			hrp)
		return nil, addrerr.MakeError(addrerr.ErrInvalidPrefix, str)
	}
	return v, nil
}

// versionFor returns the registered version for the given kind and network.
func (r *registry) versionFor(kind AddressKind, net chaincfg.NetworkType) (*AddressVersion, error) {
	v, ok := r.byKindNet[kindNet{kind: kind, net: net}]
	if !ok {
		str := fmt.Sprintf("no %v address version for network %v", kind, net)
		return nil, addrerr.MakeError(addrerr.ErrInvalidPrefix, str)
	}
	return v, nil
}

// LookupLegacyPrefix returns the address version identified by the given
// base58 version byte.  An error of kind addrerr.ErrInvalidPrefix is returned
// when no standard network uses the version byte.
func LookupLegacyPrefix(prefix byte) (*AddressVersion, error) {
	return registeredVersions.lookupLegacyPrefix(prefix)
}

// LookupWitnessVersion returns the address version identified by the given
// bech32 human-readable part and witness version.  The program length selects
// between the pubkey hash and script hash kinds, which share the same
// human-readable part and witness version.
//
// An error of kind addrerr.ErrInvalidPrefix is returned when no standard
// network uses the human-readable part for the witness version and an error of
// kind addrerr.ErrInvalidDataLength is returned when the program length does
// not correspond to any kind.
func LookupWitnessVersion(hrp string, witnessVersion byte, programLen int) (*AddressVersion, error) {
	return registeredVersions.lookupWitnessVersion(strings.ToLower(hrp),
		witnessVersion, programLen)
}

// VersionFor returns the address version of the given kind on the given
// network.  An error of kind addrerr.ErrInvalidPrefix is returned when the
// network has no addresses of the kind.
func VersionFor(kind AddressKind, net chaincfg.NetworkType) (*AddressVersion, error) {
	return registeredVersions.versionFor(kind, net)
}
