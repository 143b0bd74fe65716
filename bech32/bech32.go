// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"fmt"
	"strings"

	"github.com/decred/btcaddr/addrerr"
)

const (
	// charset is the set of characters used in the data section of bech32
	// strings.  Note that this is ordered, such that for a given charset[i],
	// i is the binary value of the character.
	charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

	// checksumLength is the number of 5-bit groups in a checksum.
	checksumLength = 6

	// MaxLength is the maximum length of a bech32 string.
	MaxLength = 90

	// MinLength is the minimum length of a bech32 string: a single hrp
	// character, the separator and the checksum.
	MinLength = 8

	// MaxHRPLength is the maximum length of the human-readable part.
	MaxHRPLength = MaxLength - 1 - checksumLength
)

// gen encodes the generator polynomial for the bech32 BCH checksum.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// charsetRev maps the lowercase characters of the charset to their 5-bit
// value.  Entries that are not part of the charset hold -1.
var charsetRev = func() [128]int8 {
	var rev [128]int8
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(charset); i++ {
		rev[charset[i]] = int8(i)
	}
	return rev
}()

// Data is the decoded contents of a bech32 string with its data part regrouped
// into regular 8-bit bytes.
type Data struct {
	HRP  string
	Data []byte
}

// polymod calculates the BCH checksum of the given values, which must all be
// 5-bit groups.
func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// hrpExpand expands the human-readable part for use in the checksum: the high
// bits of every character, a zero, and then the low bits of every character.
func hrpExpand(hrp string) []byte {
	v := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]>>5)
	}
	v = append(v, 0)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]&31)
	}
	return v
}

// createChecksum returns the six 5-bit groups of the checksum for the given
// lowercase hrp and data.
func createChecksum(hrp string, data []byte) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, make([]byte, checksumLength)...)
	mod := polymod(values) ^ 1
	res := make([]byte, checksumLength)
	for i := 0; i < checksumLength; i++ {
		res[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return res
}

// verifyChecksum returns whether the checksum of the data, which includes the
// trailing checksum groups, is valid for the given lowercase hrp.
func verifyChecksum(hrp string, data []byte) bool {
	return polymod(append(hrpExpand(hrp), data...)) == 1
}

// validateHRP ensures the human-readable part has a valid length and only
// contains printable US-ASCII characters and returns it in lowercase.
func validateHRP(hrp string) (string, error) {
	if len(hrp) < 1 || len(hrp) > MaxHRPLength {
		str := fmt.Sprintf("invalid human-readable part length %d, must be "+
			"between 1 and %d", len(hrp), MaxHRPLength)
		return "", addrerr.MakeError(addrerr.ErrInvalidPrefix, str)
	}
	for i, r := range hrp {
		if r < 33 || r > 126 {
			return "", addrerr.CharacterError{Char: r, Position: i}
		}
	}
	return strings.ToLower(hrp), nil
}

// EncodeBase32 encodes the given 5-bit groups of data along with the
// human-readable part into a bech32 string.  The hrp is converted to lowercase.
//
// An error of kind addrerr.ErrInvalidBitGroup is returned when any element of
// data does not fit in 5 bits, and addrerr.ErrInvalidDataLength is returned
// when the resulting string would be longer than MaxLength characters.
func EncodeBase32(hrp string, data []byte) (string, error) {
	hrp, err := validateHRP(hrp)
	if err != nil {
		return "", err
	}
	for i, v := range data {
		if v > 31 {
			str := fmt.Sprintf("data value %d at index %d exceeds 5 bits", v,
				i)
			return "", addrerr.MakeError(addrerr.ErrInvalidBitGroup, str)
		}
	}
	encLen := len(hrp) + 1 + len(data) + checksumLength
	if encLen > MaxLength {
		str := fmt.Sprintf("encoded length %d exceeds the maximum of %d",
			encLen, MaxLength)
		return "", addrerr.MakeError(addrerr.ErrInvalidDataLength, str)
	}

	var sb strings.Builder
	sb.Grow(encLen)
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, b := range data {
		sb.WriteByte(charset[b])
	}
	for _, b := range createChecksum(hrp, data) {
		sb.WriteByte(charset[b])
	}
	return sb.String(), nil
}

// DecodeBase32 decodes a bech32 encoded string, returning the lowercase
// human-readable part and the 5-bit groups of the data part without the
// checksum.
//
// The checks are performed in order and the first failure is returned: the
// overall length (addrerr.ErrInvalidDataLength), the characters and their
// case (addrerr.CharacterError), the position of the separator
// (addrerr.ErrInvalidPrefix), the length of the data part
// (addrerr.ErrInvalidDataLength), membership of the data characters in the
// charset (addrerr.CharacterError) and finally the checksum
// (addrerr.ErrInvalidChecksum).  Reported character positions are indices
// into the full input string.
func DecodeBase32(bech string) (string, []byte, error) {
	if len(bech) < MinLength || len(bech) > MaxLength {
		str := fmt.Sprintf("invalid bech32 string length %d, must be between "+
			"%d and %d", len(bech), MinLength, MaxLength)
		return "", nil, addrerr.MakeError(addrerr.ErrInvalidDataLength, str)
	}

	// Only printable US-ASCII is allowed and the string must not mix upper
	// and lower case characters.  The case of the first cased character
	// decides which one is expected.
	var hasLower, hasUpper bool
	for i, r := range bech {
		if r < 33 || r > 126 {
			return "", nil, addrerr.CharacterError{Char: r, Position: i}
		}
		switch {
		case r >= 'a' && r <= 'z':
			if hasUpper {
				return "", nil, addrerr.CharacterError{Char: r, Position: i}
			}
			hasLower = true
		case r >= 'A' && r <= 'Z':
			if hasLower {
				return "", nil, addrerr.CharacterError{Char: r, Position: i}
			}
			hasUpper = true
		}
	}
	bech = strings.ToLower(bech)

	// The string is invalid if the last '1' is non-existent or it is the
	// first character of the string (no human-readable part).
	one := strings.LastIndexByte(bech, '1')
	if one < 1 {
		str := "missing separator or empty human-readable part"
		return "", nil, addrerr.MakeError(addrerr.ErrInvalidPrefix, str)
	}
	if len(bech)-one-1 < checksumLength {
		str := fmt.Sprintf("data part length %d is shorter than the checksum",
			len(bech)-one-1)
		return "", nil, addrerr.MakeError(addrerr.ErrInvalidDataLength, str)
	}
	hrp := bech[:one]

	// Each character of the data part corresponds to a 5-bit value.
	data := make([]byte, 0, len(bech)-one-1)
	for i := one + 1; i < len(bech); i++ {
		v := charsetRev[bech[i]]
		if v == -1 {
			return "", nil, addrerr.CharacterError{
				Char:     rune(bech[i]),
				Position: i,
			}
		}
		data = append(data, byte(v))
	}

	if !verifyChecksum(hrp, data) {
		str := "checksum failed to verify"
		return "", nil, addrerr.MakeError(addrerr.ErrInvalidChecksum, str)
	}

	// Exclude the checksum.
	return hrp, data[:len(data)-checksumLength], nil
}

// Encode encodes the given 8-bit data along with the human-readable part into a
// bech32 string.  The data is regrouped into 5-bit groups, zero padding the
// final group, before it is encoded.
func Encode(hrp string, data []byte) (string, error) {
	conv, err := ConvertBits(data, 8, 5)
	if err != nil {
		return "", err
	}
	return EncodeBase32(hrp, conv)
}

// Decode decodes a bech32 encoded string and regroups its data part into 8-bit
// bytes.  See DecodeBase32 for the validation performed on the string.
// Regrouping fails with an error of kind addrerr.ErrInvalidPadding when the
// data part leaves over more than 4 bits, or any that are not zero.
func Decode(bech string) (*Data, error) {
	hrp, data5, err := DecodeBase32(bech)
	if err != nil {
		return nil, err
	}
	data8, err := ConvertBits(data5, 5, 8)
	if err != nil {
		return nil, err
	}
	return &Data{HRP: hrp, Data: data8}, nil
}

// ConvertBits converts a byte slice where each byte is encoding fromBits bits
// to a byte slice where each byte is encoding toBits bits.
//
// When narrowing (fromBits > toBits), the final group is padded with zero bits
// as needed.  When widening (fromBits < toBits), the input must regroup
// exactly except for fewer than fromBits trailing zero bits, otherwise an
// error of kind addrerr.ErrInvalidPadding is returned.  An element with more
// than fromBits significant bits, or a bit width outside of 1 through 8,
// results in an error of kind addrerr.ErrInvalidBitGroup.
func ConvertBits(data []byte, fromBits, toBits uint8) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		str := fmt.Sprintf("bit widths %d and %d must be between 1 and 8",
			fromBits, toBits)
		return nil, addrerr.MakeError(addrerr.ErrInvalidBitGroup, str)
	}

	// The accumulator only ever needs to hold a partial output group plus
	// one input group.
	maxAcc := uint32(1)<<(fromBits+toBits-1) - 1
	maxV := uint32(1)<<toBits - 1
	pad := fromBits > toBits

	regrouped := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)
	var acc uint32
	var bits uint8
	for i, b := range data {
		if uint32(b)>>fromBits != 0 {
			str := fmt.Sprintf("value %d at index %d does not fit in %d bits",
				b, i, fromBits)
			return nil, addrerr.MakeError(addrerr.ErrInvalidBitGroup, str)
		}
		acc = (acc<<fromBits | uint32(b)) & maxAcc
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&maxV))
		}
	}

	switch {
	case pad:
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits)&maxV))
		}

	case bits >= fromBits:
		str := fmt.Sprintf("%d bits left over exceeds the group width of %d",
			bits, fromBits)
		return nil, addrerr.MakeError(addrerr.ErrInvalidPadding, str)

	case acc<<(toBits-bits)&maxV != 0:
		str := fmt.Sprintf("%d bits left over are not all zero", bits)
		return nil, addrerr.MakeError(addrerr.ErrInvalidPadding, str)
	}

	return regrouped, nil
}
