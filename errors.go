package aht

import "errors"

// ErrOversizeKey is returned by Get/TryGet when the key exceeds the
// maximum representable length of 32767 bytes.
var ErrOversizeKey = errors.New("aht: key exceeds maximum length of 32767 bytes")

// ErrZeroLengthKey is returned by Get/TryGet for a zero-length key. The
// encoding's bucket terminator is itself a zero-length prefix byte, so
// zero-length keys cannot be represented.
var ErrZeroLengthKey = errors.New("aht: zero-length keys are not representable")

func validateKey(key []byte) error {
	switch {
	case len(key) == 0:
		return ErrZeroLengthKey
	case len(key) > maxKeyLen:
		return ErrOversizeKey
	}
	return nil
}
