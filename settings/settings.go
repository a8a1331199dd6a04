// Package settings persists the client number and, optionally, the
// password between runs. The settings live in the platform config
// directory as a JSON file; the password is never written in clear, it is
// sealed with a key derived from a per-installation random salt stored
// next to the settings.
package settings

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/bourso"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// Settings is what bourso remembers between runs.
type Settings struct {
	ClientNumber string `json:"clientNumber,omitempty"`
	// SealedPassword is the password encrypted with the installation key,
	// base64 encoded. Empty when the user chose not to store it.
	SealedPassword string `json:"sealedPassword,omitempty"`
}

// Store loads and saves settings.
type Store interface {
	Load() (Settings, error)
	Save(Settings) error
}

const (
	settingsFile = "settings.json"
	saltFile     = "salt"
	appDir       = "bourso"
)

// FileStore keeps settings in a directory, one JSON file plus the salt.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// DefaultStore roots the store in the platform config directory
// (~/.config/bourso on Linux).
func DefaultStore() (*FileStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("cannot locate the user config directory: %w", err)
	}
	return NewFileStore(filepath.Join(dir, appDir)), nil
}

func (s *FileStore) path() string { return filepath.Join(s.dir, settingsFile) }

// Load reads the settings, creating an empty file on first run.
func (s *FileStore) Load() (Settings, error) {
	var settings Settings
	b, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return settings, s.Save(settings)
	}
	if err != nil {
		return settings, fmt.Errorf("cannot read settings: %w", err)
	}
	if err := json.Unmarshal(b, &settings); err != nil {
		return settings, fmt.Errorf("cannot decode settings %s: %w", s.path(), err)
	}
	return settings, nil
}

// Save writes the settings. The file is chmod 600: it may hold a sealed
// password.
func (s *FileStore) Save(settings Settings) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("cannot create settings directory: %w", err)
	}
	b, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(), b, 0o600); err != nil {
		return fmt.Errorf("cannot persist settings: %w", err)
	}
	return nil
}

// SealPassword encrypts a password with the installation key.
func (s *FileStore) SealPassword(password bourso.Password) (string, error) {
	aead, err := s.cipher()
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := aead.Seal(nonce, nonce, []byte(password), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenPassword decrypts a sealed password.
func (s *FileStore) OpenPassword(sealed string) (bourso.Password, error) {
	aead, err := s.cipher()
	if err != nil {
		return "", err
	}
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("cannot decode sealed password: %w", err)
	}
	if len(raw) < aead.NonceSize() {
		return "", errors.New("sealed password is truncated")
	}
	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("cannot unseal password: %w", err)
	}
	return bourso.NewPassword(string(plain))
}

// cipher derives the installation AEAD from the salt file, creating the
// salt on first use.
func (s *FileStore) cipher() (cipher.AEAD, error) {
	salt, err := s.salt()
	if err != nil {
		return nil, err
	}
	key := make([]byte, chacha20poly1305.KeySize)
	kdf := hkdf.New(sha256.New, salt, nil, []byte("bourso settings password"))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, err
	}
	return chacha20poly1305.New(key)
}

func (s *FileStore) salt() ([]byte, error) {
	path := filepath.Join(s.dir, saltFile)
	salt, err := os.ReadFile(path)
	if err == nil {
		// Never regenerate over an existing file: a fresh salt would
		// orphan every password sealed with the old one.
		if len(salt) != 32 {
			return nil, fmt.Errorf("salt file %s is corrupted (%d bytes, want 32)", path, len(salt))
		}
		return salt, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot read salt: %w", err)
	}
	salt = make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, salt, 0o600); err != nil {
		return nil, fmt.Errorf("cannot persist salt: %w", err)
	}
	return salt, nil
}
