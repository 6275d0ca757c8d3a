// Package securefile implements the device secure store as encrypted flat
// files: one file per key, sealed with nacl/secretbox under a key derived
// from the app secret via scrypt.
package securefile

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	"github.com/planora/planora-app/internal/core/domain"
)

const (
	saltFile = ".salt"
	saltLen  = 16
	nonceLen = 24
	keyLen   = 32
	scryptN  = 1 << 15
	scryptR  = 8
	scryptP  = 1
	dirPerm  = 0o700
	filePerm = 0o600
	fileExt  = ".bin"
)

// Store is an encrypted file-backed key-value store. It satisfies
// ports.Store. Safe for use from a single goroutine, matching the app's
// single-threaded access pattern.
type Store struct {
	dir string
	key [keyLen]byte
}

// New opens (or initialises) the store under dir. The encryption key is
// derived from secret and a per-store random salt created on first use, so
// files cannot be decrypted when copied to another install.
func New(dir, secret string) (*Store, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("securefile: create dir: %w", err)
	}

	salt, err := loadOrCreateSalt(filepath.Join(dir, saltFile))
	if err != nil {
		return nil, err
	}

	derived, err := scrypt.Key([]byte(secret), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return nil, fmt.Errorf("securefile: derive key: %w", err)
	}

	s := &Store{dir: dir}
	copy(s.key[:], derived)
	return s, nil
}

func loadOrCreateSalt(path string) ([]byte, error) {
	salt, err := os.ReadFile(path)
	if err == nil && len(salt) == saltLen {
		return salt, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("securefile: read salt: %w", err)
	}

	salt = make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("securefile: generate salt: %w", err)
	}
	if err := os.WriteFile(path, salt, filePerm); err != nil {
		return nil, fmt.Errorf("securefile: write salt: %w", err)
	}
	return salt, nil
}

// Get returns the decrypted value under key. Missing keys yield
// domain.ErrKeyNotFound; tampered or truncated files yield an error, never
// garbage.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sealed, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", domain.ErrKeyNotFound, key)
		}
		return "", fmt.Errorf("securefile: read %q: %w", key, err)
	}
	if len(sealed) < nonceLen {
		return "", fmt.Errorf("securefile: value for %q is truncated", key)
	}

	var nonce [nonceLen]byte
	copy(nonce[:], sealed[:nonceLen])
	plain, ok := secretbox.Open(nil, sealed[nonceLen:], &nonce, &s.key)
	if !ok {
		return "", fmt.Errorf("securefile: cannot decrypt value for %q", key)
	}
	return string(plain), nil
}

// Save encrypts value and writes it under key, replacing any previous value.
func (s *Store) Save(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var nonce [nonceLen]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return fmt.Errorf("securefile: generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(value), &nonce, &s.key)
	if err := os.WriteFile(s.path(key), sealed, filePerm); err != nil {
		return fmt.Errorf("securefile: write %q: %w", key, err)
	}
	return nil
}

// Delete removes the value under key. Deleting a missing key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("securefile: delete %q: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+fileExt)
}

// sanitizeKey maps a store key to a safe filename. Keys are short
// identifiers ("user", "categoryId"); anything outside [A-Za-z0-9._-] is
// replaced to keep the name portable.
func sanitizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
