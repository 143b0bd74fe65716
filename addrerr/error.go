// Copyright (c) 2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package addrerr defines the error kinds shared by the address codecs.
//
// Every error returned by the base58, bech32 and stdaddr packages can be
// identified with errors.Is against one of the ErrorKind constants below, and
// the errors that carry extra detail can be unwrapped with errors.As into
// CharacterError or WrongNetworkError.
package addrerr

import "fmt"

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidDataLength indicates decoded data, or the input text itself,
	// is too short or too long for what it is meant to hold.
	ErrInvalidDataLength = ErrorKind("ErrInvalidDataLength")

	// ErrInvalidCharacter indicates a character outside of the expected
	// alphabet.  Errors of this kind are returned as a CharacterError which
	// reports the offending character and its position.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrInvalidChecksum indicates the checksum embedded in an encoding does
	// not match the checksum calculated over its data.
	ErrInvalidChecksum = ErrorKind("ErrInvalidChecksum")

	// ErrInvalidPrefix indicates a legacy version byte, or a human-readable
	// part and witness version pair, that is not known.
	ErrInvalidPrefix = ErrorKind("ErrInvalidPrefix")

	// ErrWrongNetwork indicates an address that decoded successfully, but is
	// for a network other than the one required by the caller.  Errors of
	// this kind are returned as a WrongNetworkError.
	ErrWrongNetwork = ErrorKind("ErrWrongNetwork")

	// ErrInvalidWitnessVersion indicates a segregated witness address or
	// program with a witness version greater than 16.
	ErrInvalidWitnessVersion = ErrorKind("ErrInvalidWitnessVersion")

	// ErrInvalidPadding indicates that regrouping bits into wider groups left
	// over too many bits or bits that are not zero.
	ErrInvalidPadding = ErrorKind("ErrInvalidPadding")

	// ErrInvalidBitGroup indicates a bit group value that does not fit in the
	// group width it is declared to have, or an unsupported group width.
	ErrInvalidBitGroup = ErrorKind("ErrInvalidBitGroup")

	// ErrInvalidPubKey indicates a serialized public key that is not a valid
	// point on the secp256k1 curve or is not in a supported format.
	ErrInvalidPubKey = ErrorKind("ErrInvalidPubKey")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address-related error.
//
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// MakeError creates an Error given a set of arguments.
func MakeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// CharacterError describes a character that is not part of the alphabet
// expected at the given 0-based position of the input.
type CharacterError struct {
	Char     rune
	Position int
}

// Error satisfies the error interface and prints human-readable errors.
func (e CharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char,
		e.Position)
}

// Unwrap returns ErrInvalidCharacter so the error can be identified by kind.
func (e CharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// WrongNetworkError describes an address that is valid, but for a network
// other than the required one.  Prefix holds the legacy version byte for
// base58 addresses and HRP holds the human-readable part for segregated
// witness addresses.
type WrongNetworkError struct {
	Prefix byte
	HRP    string
	Want   string
	Got    string
}

// Error satisfies the error interface and prints human-readable errors.
func (e WrongNetworkError) Error() string {
	if e.HRP != "" {
		return fmt.Sprintf("address prefix %q is for network %s, not %s",
			e.HRP, e.Got, e.Want)
	}
	return fmt.Sprintf("address prefix %d is for network %s, not %s",
		e.Prefix, e.Got, e.Want)
}

// Unwrap returns ErrWrongNetwork so the error can be identified by kind.
func (e WrongNetworkError) Unwrap() error {
	return ErrWrongNetwork
}
