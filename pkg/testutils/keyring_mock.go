package testutils

import (
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/jibchain/deploykit/pkg/accounts"
	"github.com/jibchain/deploykit/pkg/common"
)

// MockKeyring provides a test helper for keyring operations using the native mock
type MockKeyring struct {
	t *testing.T
}

// SetupMockKeyring initializes the native keyring mock for testing
func SetupMockKeyring(t *testing.T) *MockKeyring {
	keyring.MockInit()

	mock := &MockKeyring{t: t}
	mock.Clear()

	t.Cleanup(func() {
		mock.Clear()
	})

	return mock
}

// StorePrivateKey stores a key using the real implementation (which talks to the mock)
func (m *MockKeyring) StorePrivateKey(name, privateKey string) error {
	_, err := accounts.StoreInKeyring(common.KeyringServiceName, name, privateKey)
	return err
}

// Get returns the raw stored value for name.
func (m *MockKeyring) Get(name string) (string, error) {
	return keyring.Get(common.KeyringServiceName, name)
}

// Clear removes all stored keys from the mock
func (m *MockKeyring) Clear() {
	_ = keyring.DeleteAll(common.KeyringServiceName)
}
