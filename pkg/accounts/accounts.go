// Package accounts turns raw signing-key sources into lazily validated credentials.
package accounts

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/jibchain/deploykit/pkg/lazy"
)

var ErrInvalidCredential = errors.New("invalid credential")

// Credential is a private key that is read and validated on first use.
type Credential = *lazy.Value[string]

// Resolve maps each source to a Credential, preserving order. Index 0 is the deployer by convention.
// Nothing is read until a credential is.
func Resolve(sources ...Source) []Credential {
	creds := make([]Credential, len(sources))
	for i, src := range sources {
		if src == nil {
			creds[i] = lazy.New(func() (string, error) {
				return "", fmt.Errorf("%w: account %d has no source", ErrInvalidCredential, i)
			})
			continue
		}
		creds[i] = lazy.New(func() (string, error) {
			raw, err := src()
			if err != nil {
				return "", err
			}
			key, err := NormalizePrivateKey(raw)
			if err != nil {
				return "", fmt.Errorf("account %d: %w", i, err)
			}
			return key, nil
		})
	}
	return creds
}

// NormalizePrivateKey validates a hex secp256k1 private key and returns it lowercased with a 0x prefix.
func NormalizePrivateKey(raw string) (string, error) {
	key := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if key == "" {
		return "", fmt.Errorf("%w: empty private key", ErrInvalidCredential)
	}
	if len(key) != 64 {
		return "", fmt.Errorf("%w: expected 64 hex characters, got %d", ErrInvalidCredential, len(key))
	}
	if _, err := hex.DecodeString(key); err != nil {
		return "", fmt.Errorf("%w: private key is not hex encoded", ErrInvalidCredential)
	}
	if _, err := crypto.HexToECDSA(key); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	return "0x" + strings.ToLower(key), nil
}

// Address reads the credential and derives its signer address.
func Address(cred Credential) (common.Address, error) {
	return Signer(cred).Get()
}

// Signer derives the signer address of cred without reading it.
func Signer(cred Credential) *lazy.Value[common.Address] {
	return lazy.Map(cred, func(key string) (common.Address, error) {
		privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(key, "0x"))
		if err != nil {
			return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
		}
		return crypto.PubkeyToAddress(privateKey.PublicKey), nil
	})
}
