package session

import (
	"errors"
	"fmt"

	"github.com/99designs/keyring"
)

const (
	serviceName = "contactflow"
	sessionKey  = "current_session"
)

// KeyringStorage persists the session slot in the system keyring, falling
// back to an encrypted file backend where no native keyring is available.
type KeyringStorage struct {
	fileDir string
}

// NewKeyringStorage creates a keyring-backed session storage. fileDir is
// used by the file fallback backend.
func NewKeyringStorage(fileDir string) *KeyringStorage {
	return &KeyringStorage{fileDir: fileDir}
}

// open returns a configured keyring instance.
func (k *KeyringStorage) open() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  k.fileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt("contactflow-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

func (k *KeyringStorage) Read() ([]byte, error) {
	ring, err := k.open()
	if err != nil {
		return nil, err
	}

	item, err := ring.Get(sessionKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	return item.Data, nil
}

func (k *KeyringStorage) Write(data []byte) error {
	ring, err := k.open()
	if err != nil {
		return err
	}

	if err := ring.Set(keyring.Item{Key: sessionKey, Data: data}); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

func (k *KeyringStorage) Clear() error {
	ring, err := k.open()
	if err != nil {
		return err
	}

	err = ring.Remove(sessionKey)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
