// Package fieldcipher provides reversible obfuscation of individual
// response fields. It is not a substitute for transport or at-rest
// encryption; it mirrors the field scrambling the API has always done.
package fieldcipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
)

// ErrInvalidCiphertext is returned for values that do not decode or fail
// authentication.
var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// Cipher encrypts and decrypts short string fields with AES-256-GCM.
type Cipher struct {
	aead cipher.AEAD
}

// New derives a 32 byte key from the configured secret and returns the
// field cipher.
func New(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("field cipher secret is required")
	}

	key := sha256.Sum256([]byte(secret))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals the plaintext and returns base64(nonce || ciphertext).
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt.
func (c *Cipher) Decrypt(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidCiphertext
	}

	if len(raw) < c.aead.NonceSize() {
		return "", ErrInvalidCiphertext
	}

	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrInvalidCiphertext
	}

	return string(plain), nil
}

// EncryptFields returns a copy of data with the named fields encrypted.
// Missing fields are skipped.
func (c *Cipher) EncryptFields(data map[string]string, fields ...string) (map[string]string, error) {
	out := make(map[string]string, len(data))
	for k, v := range data {
		out[k] = v
	}

	for _, field := range fields {
		value, ok := out[field]
		if !ok {
			continue
		}
		enc, err := c.Encrypt(value)
		if err != nil {
			return nil, err
		}
		out[field] = enc
	}

	return out, nil
}

// DecryptFields reverses EncryptFields.
func (c *Cipher) DecryptFields(data map[string]string, fields ...string) (map[string]string, error) {
	out := make(map[string]string, len(data))
	for k, v := range data {
		out[k] = v
	}

	for _, field := range fields {
		value, ok := out[field]
		if !ok {
			continue
		}
		plain, err := c.Decrypt(value)
		if err != nil {
			return nil, err
		}
		out[field] = plain
	}

	return out, nil
}
