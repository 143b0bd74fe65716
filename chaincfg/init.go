// Copyright (c) 2017-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
)

var (
	errDuplicateName   = errors.New("duplicate network name")
	errDuplicateNet    = errors.New("duplicate network type")
	errDuplicateAddrID = errors.New("duplicate address version byte")
	errDuplicateHRP    = errors.New("duplicate segwit human-readable part")
	errSameAddrIDs     = errors.New("identical pubkey hash and script hash " +
		"version bytes")
	errInvalidHRP = errors.New("invalid segwit human-readable part")
)

// validateHRP ensures the human-readable part is non-empty lowercase printable
// US-ASCII.
func validateHRP(hrp string) error {
	if hrp == "" {
		return errInvalidHRP
	}
	for i := 0; i < len(hrp); i++ {
		c := hrp[i]
		if c < 33 || c > 126 || (c >= 'A' && c <= 'Z') {
			return errInvalidHRP
		}
	}
	return nil
}

// validateNetworks ensures the address encodings of the provided networks can
// be told apart.  No two networks may share a name, network type, base58
// version byte or segwit human-readable part.
func validateNetworks(allParams []*Params) error {
	names := make(map[string]struct{})
	nets := make(map[NetworkType]struct{})
	addrIDs := make(map[byte]string)
	hrps := make(map[string]string)
	for _, params := range allParams {
		if _, ok := names[params.Name]; ok {
			return fmt.Errorf("%w: %s", errDuplicateName, params.Name)
		}
		names[params.Name] = struct{}{}

		if _, ok := nets[params.Net]; ok {
			return fmt.Errorf("%w: %v", errDuplicateNet, params.Net)
		}
		nets[params.Net] = struct{}{}

		if ids := params.LegacyAddrIDs; ids != nil {
			if ids.PubKeyHashAddrID == ids.ScriptHashAddrID {
				return fmt.Errorf("%w on %s", errSameAddrIDs, params.Name)
			}
			for _, id := range []byte{ids.PubKeyHashAddrID,
				ids.ScriptHashAddrID} {

				if other, ok := addrIDs[id]; ok {
					return fmt.Errorf("%w 0x%02x on %s and %s",
						errDuplicateAddrID, id, other, params.Name)
				}
				addrIDs[id] = params.Name
			}
		}

		if hrp := params.Bech32HRPSegwit; hrp != "" {
			if err := validateHRP(hrp); err != nil {
				return fmt.Errorf("%w %q on %s", err, hrp, params.Name)
			}
			if other, ok := hrps[hrp]; ok {
				return fmt.Errorf("%w %q on %s and %s", errDuplicateHRP, hrp,
					other, params.Name)
			}
			hrps[hrp] = params.Name
		}
	}
	return nil
}

func init() {
	if err := validateNetworks(AllParams()); err != nil {
		panic(fmt.Sprintf("invalid network parameters: %v", err))
	}
}
