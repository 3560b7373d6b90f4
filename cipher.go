package folio

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// Cipher encrypts and decrypts persisted portfolio documents.
type Cipher interface {
	Encrypt(plain []byte) ([]byte, error)
	Decrypt(data []byte) ([]byte, error)
}

// NewCipher builds a cipher from a scheme name and a secret.
// Supported schemes: "aes" (authenticated AES-GCM, the default for any
// unrecognized or empty scheme), "xor" (legacy obfuscation) and "none".
func NewCipher(scheme, secret string) (Cipher, error) {
	switch scheme {
	case "none":
		return nil, nil
	case "xor":
		return NewXORCipher(secret)
	default:
		return NewAESCipher(secret)
	}
}

// XORCipher obfuscates bytes with a repeating key. This is NOT encryption:
// it only keeps portfolio files from being casually readable. Prefer
// AESCipher for anything that needs confidentiality.
type XORCipher struct {
	key []byte
}

// NewXORCipher fails on an empty key, which would be the identity transform.
func NewXORCipher(key string) (*XORCipher, error) {
	if key == "" {
		return nil, errors.New("xor key cannot be empty")
	}
	return &XORCipher{key: []byte(key)}, nil
}

// code applies the repeating-key XOR. Encrypt and Decrypt are the same
// operation.
func (c *XORCipher) code(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ c.key[i%len(c.key)]
	}
	return out
}

func (c *XORCipher) Encrypt(plain []byte) ([]byte, error) { return c.code(plain), nil }
func (c *XORCipher) Decrypt(data []byte) ([]byte, error)  { return c.code(data), nil }

// aesMagic prefixes AESCipher output so that decryption can reject files
// written by another scheme instead of producing garbage.
var aesMagic = []byte("FOLIO1")

const (
	aesSaltLen = 16
	aesKeyLen  = 32
)

// AESCipher is authenticated AES-256-GCM with a scrypt-derived key.
type AESCipher struct {
	passphrase []byte
}

func NewAESCipher(passphrase string) (*AESCipher, error) {
	if passphrase == "" {
		return nil, errors.New("passphrase cannot be empty")
	}
	return &AESCipher{passphrase: []byte(passphrase)}, nil
}

func (c *AESCipher) gcm(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(c.passphrase, salt, 1<<15, 8, 1, aesKeyLen)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt produces magic || salt || nonce || ciphertext with a fresh random
// salt and nonce per call.
func (c *AESCipher) Encrypt(plain []byte) ([]byte, error) {
	salt := make([]byte, aesSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	gcm, err := c.gcm(salt)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(aesMagic)+aesSaltLen+gcm.NonceSize()+len(plain)+gcm.Overhead())
	out = append(out, aesMagic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plain, nil), nil
}

func (c *AESCipher) Decrypt(data []byte) ([]byte, error) {
	if len(data) < len(aesMagic)+aesSaltLen || string(data[:len(aesMagic)]) != string(aesMagic) {
		return nil, errors.New("not an encrypted portfolio file")
	}
	data = data[len(aesMagic):]
	salt, data := data[:aesSaltLen], data[aesSaltLen:]
	gcm, err := c.gcm(salt)
	if err != nil {
		return nil, err
	}
	if len(data) < gcm.NonceSize() {
		return nil, errors.New("encrypted file truncated")
	}
	nonce, ciphertext := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed (wrong passphrase?): %w", err)
	}
	return plain, nil
}
