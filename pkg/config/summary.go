package config

import (
	"github.com/jibchain/deploykit/pkg/compiler"
	"github.com/jibchain/deploykit/pkg/explorer"
	"github.com/jibchain/deploykit/pkg/network"
)

// Summary is a printable view of a Configuration with secrets left out.
type Summary struct {
	DefaultNetwork  string                    `yaml:"default_network" json:"defaultNetwork"`
	NamedAccounts   map[string]int            `yaml:"named_accounts" json:"namedAccounts"`
	Networks        map[string]NetworkSummary `yaml:"networks" json:"networks"`
	Compilers       []compiler.Spec           `yaml:"compilers" json:"compilers"`
	Explorers       []ExplorerSummary         `yaml:"explorers,omitempty" json:"explorers,omitempty"`
	Paths           Paths                     `yaml:"paths" json:"paths"`
	Typechain       Typechain                 `yaml:"typechain" json:"typechain"`
	VerifyContracts bool                      `yaml:"verify_contracts" json:"verifyContracts"`
}

type NetworkSummary struct {
	URL           string `yaml:"url,omitempty" json:"url,omitempty"`
	ChainID       uint64 `yaml:"chain_id" json:"chainId"`
	BlockGasLimit uint64 `yaml:"block_gas_limit" json:"blockGasLimit"`
	GasPrice      string `yaml:"gas_price" json:"gasPrice"`
	Accounts      int    `yaml:"accounts" json:"accounts"`
	Live          bool   `yaml:"live" json:"live"`
}

type ExplorerSummary struct {
	Network    string `yaml:"network,omitempty" json:"network,omitempty"`
	ChainID    uint64 `yaml:"chain_id" json:"chainId"`
	APIURL     string `yaml:"api_url" json:"apiUrl"`
	BrowserURL string `yaml:"browser_url" json:"browserUrl"`
	APIKey     string `yaml:"api_key" json:"apiKey"`
}

// Summary builds the redacted view. It shares no memory with c. Credentials are counted, not read, and
// explorer API keys are reported only as set or unset.
func (c *Configuration) Summary() Summary {
	s := Summary{
		DefaultNetwork:  c.DefaultNetwork,
		NamedAccounts:   make(map[string]int, len(c.NamedAccounts)),
		Networks:        make(map[string]NetworkSummary, len(c.Networks)),
		Compilers:       append([]compiler.Spec(nil), c.Compilers...),
		Paths:           c.Paths,
		Typechain:       c.Typechain,
		VerifyContracts: c.VerifyContracts,
	}

	for role, idx := range c.NamedAccounts {
		s.NamedAccounts[role] = idx
	}

	for name, spec := range c.Networks {
		s.Networks[name] = NetworkSummary{
			URL:           spec.URL,
			ChainID:       spec.ChainID,
			BlockGasLimit: spec.BlockGasLimit,
			GasPrice:      network.FormatGwei(spec.GasPrice),
			Accounts:      len(spec.Accounts),
			Live:          spec.Live,
		}
	}

	for _, id := range explorer.ChainIDs(c.Explorers) {
		e := c.Explorers[id]
		key := "unset"
		if e.Configured() {
			key = "set"
		}
		s.Explorers = append(s.Explorers, ExplorerSummary{
			Network:    e.Network,
			ChainID:    e.ChainID,
			APIURL:     e.APIURL,
			BrowserURL: e.BrowserURL,
			APIKey:     key,
		})
	}
	return s
}
