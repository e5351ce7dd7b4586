// Package credentials stores sftp passwords in the system keyring so remote
// patterns can be expanded without retyping them.
package credentials

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

const defaultService = "pathglob"

// Store is a keyring-backed password store namespaced by a service name.
type Store struct {
	service string
}

// NewStore creates a Store for the given service name. An empty name uses
// the default pathglob namespace.
func NewStore(service string) *Store {
	if service == "" {
		service = defaultService
	}
	return &Store{service: service}
}

func key(host, user string) string {
	return user + "@" + host
}

// SetPassword stores the password for user on host.
func (s *Store) SetPassword(host, user, password string) error {
	if host == "" || user == "" {
		return fmt.Errorf("host and user cannot be empty")
	}
	return keyring.Set(s.service, key(host, user), password)
}

// Password retrieves the stored password for user on host. Returns an empty
// string when none is stored.
func (s *Store) Password(host, user string) string {
	value, err := keyring.Get(s.service, key(host, user))
	if err != nil {
		return ""
	}
	return value
}

// HasPassword checks whether a password is stored for user on host.
func (s *Store) HasPassword(host, user string) bool {
	_, err := keyring.Get(s.service, key(host, user))
	return err == nil
}

// DeletePassword removes the stored password for user on host.
func (s *Store) DeletePassword(host, user string) error {
	return keyring.Delete(s.service, key(host, user))
}
