// Package crypto encrypts lead PII stored by the flat-file backend.
//
// Values are AES-256-CBC with PKCS#7 padding, encoded as "hex(iv):hex(ciphertext)".
// The key is derived from a server secret with scrypt.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	keyLen = 32

	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

var (
	ErrMalformed  = errors.New("malformed ciphertext")
	ErrBadPadding = errors.New("invalid padding")
)

// FieldCipher encrypts and decrypts single string fields.
type FieldCipher struct {
	block cipher.Block
	rand  io.Reader
}

// NewFieldCipher derives the AES key from secret and salt.
func NewFieldCipher(secret, salt string) (*FieldCipher, error) {
	key, err := scrypt.Key([]byte(secret), []byte(salt), scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	return &FieldCipher{block: block, rand: rand.Reader}, nil
}

// Encrypt returns the encoded ciphertext of plaintext. Empty input stays empty.
func (c *FieldCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(c.rand, iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	data := pad([]byte(plaintext))
	out := make([]byte, len(data))
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(out, data)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Empty input stays empty.
func (c *FieldCipher) Decrypt(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	ivHex, ctHex, ok := strings.Cut(encoded, ":")
	if !ok {
		return "", ErrMalformed
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		return "", ErrMalformed
	}
	ct, err := hex.DecodeString(ctHex)
	if err != nil || len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return "", ErrMalformed
	}

	out := make([]byte, len(ct))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(out, ct)

	plain, err := unpad(out)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrBadPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, ErrBadPadding
	}
	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, ErrBadPadding
		}
	}
	return b[:len(b)-n], nil
}
