package hxui

import (
	"errors"

	"github.com/pthm/hxui/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a property-bag codec. A nil key yields a JSON-only
// codec.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// wrapEncodingError maps encoding package errors onto hxui sentinels.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, encoding.ErrInvalidFormat):
		return errors.Join(ErrInvalidFormat, err)
	case errors.Is(err, encoding.ErrSignatureInvalid):
		return ErrSignatureInvalid
	case errors.Is(err, encoding.ErrDecryptFailed):
		return ErrDecryptFailed
	case errors.Is(err, encoding.ErrNoKey):
		return ErrNoKey
	}
	return err
}
