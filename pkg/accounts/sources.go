package accounts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/jibchain/deploykit/pkg/env"
	"github.com/jibchain/deploykit/pkg/lazy"
)

const (
	EnvPrefix     = "env:"
	KeyringPrefix = "keyring:"
	// AlternativeSeparator joins references tried in order, e.g. "env:KEY|keyring:deployer".
	AlternativeSeparator = "|"
)

var ErrKeyNotFound = errors.New("key not found")

// Source produces a raw private key string.
type Source func() (string, error)

// FromEnv reads name from acc each time it is invoked.
func FromEnv(acc *env.Accessor, name string) Source {
	return func() (string, error) {
		return acc.Get(name)
	}
}

// Literal returns key as-is.
func Literal(key string) Source {
	return func() (string, error) {
		return key, nil
	}
}

// FromKeyring reads a key stored in the OS keyring under service/account.
func FromKeyring(service, account string) Source {
	return func() (string, error) {
		key, err := keyring.Get(service, account)
		if err != nil {
			return "", wrapKeyringError(err, account)
		}
		return key, nil
	}
}

// FirstOf returns the first source that succeeds. If all fail, the errors are joined.
func FirstOf(sources ...Source) Source {
	return func() (string, error) {
		var errs []error
		for _, src := range sources {
			if src == nil {
				continue
			}
			key, err := src()
			if err == nil {
				return key, nil
			}
			errs = append(errs, err)
		}
		if len(errs) == 0 {
			return "", fmt.Errorf("%w: no sources", ErrKeyNotFound)
		}
		return "", errors.Join(errs...)
	}
}

// ParseSource builds a Source from a reference: "env:NAME", "keyring:ACCOUNT", or a literal key.
// Alternatives joined with "|" are tried left to right.
func ParseSource(ref string, acc *env.Accessor, keyringService string) (Source, error) {
	if strings.Contains(ref, AlternativeSeparator) {
		parts := strings.Split(ref, AlternativeSeparator)
		sources := make([]Source, len(parts))
		for i, part := range parts {
			src, err := ParseSource(strings.TrimSpace(part), acc, keyringService)
			if err != nil {
				return nil, err
			}
			sources[i] = src
		}
		return FirstOf(sources...), nil
	}

	switch {
	case strings.HasPrefix(ref, EnvPrefix):
		name := strings.TrimPrefix(ref, EnvPrefix)
		if name == "" {
			return nil, fmt.Errorf("%w: empty environment variable name in %q", ErrInvalidCredential, ref)
		}
		return FromEnv(acc, name), nil
	case strings.HasPrefix(ref, KeyringPrefix):
		account := strings.TrimPrefix(ref, KeyringPrefix)
		if account == "" {
			return nil, fmt.Errorf("%w: empty keyring account in %q", ErrInvalidCredential, ref)
		}
		return FromKeyring(keyringService, account), nil
	case ref == "":
		return nil, fmt.Errorf("%w: empty account reference", ErrInvalidCredential)
	default:
		return Literal(ref), nil
	}
}

// wrapKeyringError converts keyring backend errors to our standard error types
func wrapKeyringError(err error, account string) error {
	if errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, account)
	}
	return fmt.Errorf("keyring lookup for %s failed: %w", account, err)
}

// StoreInKeyring validates key and stores it in the OS keyring under service/account.
// It returns the address of the stored key.
func StoreInKeyring(service, account, key string) (string, error) {
	normalized, err := NormalizePrivateKey(key)
	if err != nil {
		return "", err
	}
	addr, err := Address(lazy.Of(normalized))
	if err != nil {
		return "", err
	}
	if err := keyring.Set(service, account, normalized); err != nil {
		return "", fmt.Errorf("failed to store key %s in keyring: %w", account, err)
	}
	return addr.Hex(), nil
}

// DeleteFromKeyring removes service/account from the OS keyring.
func DeleteFromKeyring(service, account string) error {
	if err := keyring.Delete(service, account); err != nil {
		return wrapKeyringError(err, account)
	}
	return nil
}
