package hxui

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	errs := []error{
		ErrUnknownComponent,
		ErrDuplicateComponent,
		ErrInvalidProps,
		ErrMountFailed,
		ErrMissingName,
		ErrNotReady,
		ErrDecryptFailed,
		ErrSignatureInvalid,
		ErrInvalidFormat,
		ErrNoKey,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name string
		is   func(error) bool
		err  error
		want bool
	}{
		{"unknown nil", IsUnknownComponent, nil, false},
		{"unknown direct", IsUnknownComponent, ErrUnknownComponent, true},
		{"unknown wrapped", IsUnknownComponent, fmt.Errorf("x: %w", ErrUnknownComponent), true},
		{"unknown other", IsUnknownComponent, ErrInvalidProps, false},
		{"props wrapped", IsInvalidProps, fmt.Errorf("%w: Button", ErrInvalidProps), true},
		{"props in skip", IsInvalidProps, &SkipError{Err: fmt.Errorf("%w: x", ErrInvalidProps)}, true},
		{"mount wrapped", IsMountFailed, fmt.Errorf("%w: boom", ErrMountFailed), true},
		{"mount other", IsMountFailed, errors.New("other"), false},
		{"decrypt", IsDecryptionError, ErrDecryptFailed, true},
		{"signature", IsDecryptionError, ErrSignatureInvalid, true},
		{"format", IsDecryptionError, ErrInvalidFormat, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.is(tt.err); got != tt.want {
				t.Errorf("got %v, want %v for %v", got, tt.want, tt.err)
			}
		})
	}
}

func TestWrapEncodingError(t *testing.T) {
	reg := MustRegistry([]Descriptor{greeting}, WithSigningKey([]byte("k")))

	_, err := greeting.Decode(reg.Codec(), "abc.def")
	if !errors.Is(err, ErrInvalidProps) {
		t.Fatalf("expected ErrInvalidProps, got %v", err)
	}
	if !IsDecryptionError(err) && !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected a codec sentinel in %v", err)
	}

	_, err = greeting.Decode(MustRegistry(nil).Codec(), "c2VhbGVk")
	if !errors.Is(err, ErrNoKey) {
		t.Errorf("expected ErrNoKey, got %v", err)
	}
}
