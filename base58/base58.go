// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"github.com/decred/btcaddr/addrerr"
)

// divmod divides the big-endian number held in number[firstDigit:], expressed
// in the given base, by divisor in place and returns the remainder.
func divmod(number []byte, firstDigit int, base, divisor uint32) byte {
	var remainder uint32
	for i := firstDigit; i < len(number); i++ {
		digit := uint32(number[i])
		temp := remainder*base + digit
		number[i] = byte(temp / divisor)
		remainder = temp % divisor
	}
	return byte(remainder)
}

// Encode encodes a byte slice to a modified base58 string.
func Encode(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	// Count leading zeros.
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	// The input is consumed by the repeated division, so work on a copy.
	input := make([]byte, len(b))
	copy(input, b)

	// log(256)/log(58) is ~1.37, so twice the input length is always enough
	// room for the encoded digits.
	encoded := make([]byte, len(input)*2)
	outputStart := len(encoded)
	for inputStart := zeros; inputStart < len(input); {
		outputStart--
		encoded[outputStart] = alphabet[divmod(input, inputStart, 256, 58)]
		if input[inputStart] == 0 {
			inputStart++
		}
	}

	// Strip extra leading zero digits produced by the division and then
	// restore one encoded zero for every leading zero byte of the input.
	for outputStart < len(encoded) && encoded[outputStart] == alphabetIdx0 {
		outputStart++
	}
	for ; zeros > 0; zeros-- {
		outputStart--
		encoded[outputStart] = alphabetIdx0
	}

	return string(encoded[outputStart:])
}

// Decode decodes a modified base58 string to a byte slice.
//
// An error of kind addrerr.ErrInvalidCharacter, in the form of an
// addrerr.CharacterError, is returned when the string contains a character
// that is not part of the modified base58 alphabet.
func Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return []byte{}, nil
	}

	// Convert the characters to their base58 digit values, rejecting anything
	// outside of the alphabet.  Positions are character indices so multi-byte
	// runes are reported where a reader would count them.
	input58 := make([]byte, 0, len(s))
	var pos int
	for _, r := range s {
		if r >= 128 || b58[r] == invalidIdx {
			return nil, addrerr.CharacterError{Char: r, Position: pos}
		}
		input58 = append(input58, b58[r])
		pos++
	}

	// Count leading zeros.
	zeros := 0
	for zeros < len(input58) && input58[zeros] == 0 {
		zeros++
	}

	// Convert base-58 digits to base-256 digits.
	decoded := make([]byte, len(input58))
	outputStart := len(decoded)
	for inputStart := zeros; inputStart < len(input58); {
		outputStart--
		decoded[outputStart] = divmod(input58, inputStart, 58, 256)
		if input58[inputStart] == 0 {
			inputStart++
		}
	}

	// Ignore extra leading zeros produced by the division and then add back
	// exactly as many as there were leading zero digits in the input.
	for outputStart < len(decoded) && decoded[outputStart] == 0 {
		outputStart++
	}
	result := make([]byte, zeros+len(decoded)-outputStart)
	copy(result[zeros:], decoded[outputStart:])
	return result, nil
}
