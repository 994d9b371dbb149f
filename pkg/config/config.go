// Package config assembles the build and deploy configuration of a contract project.
package config

import (
	"errors"
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/jibchain/deploykit/pkg/accounts"
	"github.com/jibchain/deploykit/pkg/compiler"
	"github.com/jibchain/deploykit/pkg/explorer"
	"github.com/jibchain/deploykit/pkg/network"
)

var (
	ErrUnknownNetwork = errors.New("unknown network")
	ErrUnknownRole    = errors.New("unknown named account")
)

// Configuration is the assembled, validated project configuration. It is not
// modified after Assemble returns; credentials inside it are still unread.
type Configuration struct {
	DefaultNetwork  string
	NamedAccounts   map[string]int
	Networks        map[string]network.Spec
	Compilers       []compiler.Spec
	Explorers       map[uint64]explorer.Endpoint
	Paths           Paths
	Typechain       Typechain
	VerifyContracts bool
}

// Network returns the named network.
func (c *Configuration) Network(name string) (network.Spec, error) {
	spec, ok := c.Networks[name]
	if !ok {
		return network.Spec{}, fmt.Errorf("%w: %s", ErrUnknownNetwork, name)
	}
	return spec, nil
}

// DefaultNetworkSpec returns the network used when none is selected.
func (c *Configuration) DefaultNetworkSpec() network.Spec {
	return c.Networks[c.DefaultNetwork]
}

// NetworkNames returns all network names sorted alphabetically.
func (c *Configuration) NetworkNames() []string {
	return network.Names(c.Networks)
}

// NamedAccount returns the credential bound to role on the given network without reading it.
func (c *Configuration) NamedAccount(role, networkName string) (accounts.Credential, error) {
	idx, ok := c.NamedAccounts[role]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
	spec, err := c.Network(networkName)
	if err != nil {
		return nil, err
	}
	if idx >= len(spec.Accounts) {
		return nil, fmt.Errorf("network %s has no account %d for role %s", networkName, idx, role)
	}
	return spec.Accounts[idx], nil
}

// NamedAccountAddress reads the credential bound to role and derives its address.
func (c *Configuration) NamedAccountAddress(role, networkName string) (ethcommon.Address, error) {
	cred, err := c.NamedAccount(role, networkName)
	if err != nil {
		return ethcommon.Address{}, err
	}
	return accounts.Address(cred)
}

// Explorer returns the verification endpoint for chainID.
func (c *Configuration) Explorer(chainID uint64) (explorer.Endpoint, bool) {
	e, ok := c.Explorers[chainID]
	return e, ok
}

// ExplorerForNetwork returns the verification endpoint of a live network.
func (c *Configuration) ExplorerForNetwork(name string) (explorer.Endpoint, bool) {
	spec, ok := c.Networks[name]
	if !ok || !spec.Live {
		return explorer.Endpoint{}, false
	}
	return c.Explorer(spec.ChainID)
}
