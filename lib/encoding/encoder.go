// Package encoding serializes component property bags for transport inside
// a placeholder attribute.
//
// Three payload forms are understood by Decode:
//   - JSON: compact object notation, the default form emitted by servers
//   - Signed: msgpack + base64url + HMAC, visible but tamper-proof
//   - Encrypted: AES-256-GCM over msgpack, fully opaque
//
// Struct fields are named by their json tags in every form, so one Props
// type describes the wire shape regardless of encoding.
package encoding

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Errors returned by Decode.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid payload format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	ErrDecryptFailed    = errors.New("encoding: payload decryption failed")
	ErrNoKey            = errors.New("encoding: payload requires a key")
)

const structTag = "json"

// Encoder encodes and decodes property bags. The zero key disables the
// signed and encrypted forms; JSON always works.
type Encoder struct {
	key []byte
	gcm cipher.AEAD
}

// NewEncoder creates an encoder. A nil or empty key yields a JSON-only
// encoder. Keys shorter than 32 bytes are stretched with SHA-256.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) == 0 {
		return &Encoder{}, nil
	}
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		key: key,
		gcm: gcm,
	}, nil
}

// HasKey reports whether signed and encrypted payloads are available.
func (e *Encoder) HasKey() bool {
	return e.gcm != nil
}

// JSON encodes v as compact JSON. Fields tagged omitempty are dropped when
// unset, which is how optional properties defer to component defaults.
func (e *Encoder) JSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Sign encodes v as signed msgpack.
func (e *Encoder) Sign(v any) (string, error) {
	if !e.HasKey() {
		return "", ErrNoKey
	}
	packed, err := pack(v)
	if err != nil {
		return "", err
	}
	return e.sign(packed), nil
}

// Encrypt encodes v as encrypted msgpack.
func (e *Encoder) Encrypt(v any) (string, error) {
	if !e.HasKey() {
		return "", ErrNoKey
	}
	packed, err := pack(v)
	if err != nil {
		return "", err
	}
	return e.encrypt(packed)
}

// Decode fills v from payload, detecting the payload form. An empty or
// blank payload leaves v untouched.
func (e *Encoder) Decode(payload string, v any) error {
	payload = strings.TrimSpace(payload)
	switch {
	case payload == "":
		return nil
	case payload[0] == '{':
		if err := json.Unmarshal([]byte(payload), v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return nil
	case !e.HasKey():
		return ErrNoKey
	}

	var packed []byte
	var err error
	if strings.Contains(payload, ".") {
		packed, err = e.verify(payload)
	} else {
		packed, err = e.decrypt(payload)
	}
	if err != nil {
		return err
	}
	return unpack(packed, v)
}

func pack(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag(structTag)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unpack(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag(structTag)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

// sign creates a signed (but visible) encoding: base64.signature
func (e *Encoder) sign(data []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:16]) // 128 bits
	return b64 + "." + sig
}

func (e *Encoder) verify(encoded string) ([]byte, error) {
	parts := strings.SplitN(encoded, ".", 2)
	if len(parts) != 2 {
		return nil, ErrInvalidFormat
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, ErrInvalidFormat
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrSignatureInvalid
	}

	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	expected := mac.Sum(nil)[:16]

	if !hmac.Equal(sig, expected) {
		return nil, ErrSignatureInvalid
	}

	return data, nil
}

func (e *Encoder) encrypt(data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	ciphertext := e.gcm.Seal(nonce, nonce, data, nil)
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

func (e *Encoder) decrypt(encoded string) ([]byte, error) {
	ciphertext, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	if len(ciphertext) < e.gcm.NonceSize() {
		return nil, ErrDecryptFailed
	}

	nonce := ciphertext[:e.gcm.NonceSize()]
	ciphertext = ciphertext[e.gcm.NonceSize():]

	plain, err := e.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return plain, nil
}
