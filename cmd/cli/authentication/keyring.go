// Package authentication stores the dashboard JWT in the OS keyring so a
// login survives between CLI invocations without writing the token to disk.
package authentication

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "s2mangas-dash"
	tokenKey    = "auth_token"
)

// KeyringStore implements client.TokenStore on top of the OS keyring.
type KeyringStore struct{}

func (KeyringStore) Save(token string) error {
	return keyring.Set(serviceName, tokenKey, token)
}

func (KeyringStore) Load() (string, error) {
	token, err := keyring.Get(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return token, err
}

func (KeyringStore) Clear() error {
	err := keyring.Delete(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
