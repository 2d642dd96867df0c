package hxui

import "errors"

// Sentinel errors for registry and hydration operations.
var (
	ErrUnknownComponent   = errors.New("hxui: unknown component")
	ErrDuplicateComponent = errors.New("hxui: duplicate component name")
	ErrInvalidProps       = errors.New("hxui: invalid props")
	ErrMountFailed        = errors.New("hxui: mount failed")
	ErrMissingName        = errors.New("hxui: placeholder has no component name")
	ErrNotReady           = errors.New("hxui: document not ready")

	ErrDecryptFailed    = errors.New("hxui: props decryption failed")
	ErrSignatureInvalid = errors.New("hxui: props signature verification failed")
	ErrInvalidFormat    = errors.New("hxui: invalid props format")
	ErrNoKey            = errors.New("hxui: sealed props need a signing key")
)

// IsUnknownComponent checks if err reports a name missing from the registry.
func IsUnknownComponent(err error) bool {
	return errors.Is(err, ErrUnknownComponent)
}

// IsInvalidProps checks if err reports a property bag that failed to decode
// or validate.
func IsInvalidProps(err error) bool {
	return errors.Is(err, ErrInvalidProps)
}

// IsMountFailed checks if err reports a component that failed while
// rendering into its placeholder.
func IsMountFailed(err error) bool {
	return errors.Is(err, ErrMountFailed)
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}
