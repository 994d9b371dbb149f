package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jibchain/deploykit/pkg/accounts"
	"github.com/jibchain/deploykit/pkg/common/iface"
	"github.com/jibchain/deploykit/pkg/compiler"
	"github.com/jibchain/deploykit/pkg/env"
	"github.com/jibchain/deploykit/pkg/explorer"
	"github.com/jibchain/deploykit/pkg/network"
)

// Options are the capabilities the assembler reads from.
type Options struct {
	// Env is used for account and api key references and the verification flag.
	// Defaults to the process environment.
	Env *env.Accessor

	// Logger receives soft-fail warnings. Optional.
	Logger iface.Logger

	// KeyringService is used for keyring: references. Defaults to DefaultKeyringService.
	KeyringService string
}

// Assemble builds and cross-validates the configuration described by p. The
// first violation is returned. Credentials are structurally checked but not read.
func Assemble(p Project, opts Options) (*Configuration, error) {
	if opts.Env == nil {
		opts.Env = env.NewAccessor(nil)
	}
	if opts.KeyringService == "" {
		opts.KeyringService = DefaultKeyringService
	}

	if len(p.Compilers) == 0 {
		return nil, violation(InvariantCompilersNonEmpty, "no compiler versions declared")
	}
	compilers, err := buildCompilers(p.Compilers)
	if err != nil {
		return nil, err
	}

	networks, err := buildNetworks(p.Networks, opts)
	if err != nil {
		return nil, err
	}

	explorers, err := buildExplorers(p.Explorers, opts)
	if err != nil {
		if errors.Is(err, explorer.ErrInvalidEndpoint) {
			return nil, &InvariantError{Invariant: InvariantExplorerWellFormed, Detail: err.Error(), Err: err}
		}
		return nil, err
	}

	defaultNetwork := p.DefaultNetwork
	if defaultNetwork == "" {
		defaultNetwork = network.SimulationNetwork
	}

	namedAccounts := make(map[string]int, len(p.NamedAccounts))
	for role, idx := range p.NamedAccounts {
		namedAccounts[role] = idx
	}
	if len(namedAccounts) == 0 {
		namedAccounts[DeployerRole] = 0
	}

	cfg := &Configuration{
		DefaultNetwork:  defaultNetwork,
		NamedAccounts:   namedAccounts,
		Networks:        networks,
		Compilers:       compilers,
		Explorers:       explorers,
		Paths:           p.Paths,
		Typechain:       p.Typechain,
		VerifyContracts: opts.Env.Flag(VerifyContractsEnvVar),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.VerifyContracts && opts.Logger != nil {
		opts.Logger.Info("%s=1. Will verify contracts.", VerifyContractsEnvVar)
	}
	return cfg, nil
}

// Load reads the project at path (see LoadProject) and assembles it.
func Load(path string, opts Options) (*Configuration, error) {
	p, err := LoadProject(path)
	if err != nil {
		return nil, err
	}
	return Assemble(p, opts)
}

func buildCompilers(specs []compiler.Spec) ([]compiler.Spec, error) {
	b := compiler.NewBuilder()
	for _, s := range specs {
		b.AddSpec(s)
	}
	return b.Build()
}

func buildNetworks(entries map[string]NetworkEntry, opts Options) (map[string]network.Spec, error) {
	registry := network.NewRegistry()
	for _, name := range sortedKeys(entries) {
		spec, err := networkSpec(name, entries[name], opts)
		if err != nil {
			return nil, err
		}
		registry.Add(spec)
	}
	return registry.Build()
}

func networkSpec(name string, entry NetworkEntry, opts Options) (network.Spec, error) {
	spec := network.Spec{
		Name:          name,
		URL:           entry.URL,
		ChainID:       entry.ChainID,
		BlockGasLimit: entry.BlockGasLimit,
		Live:          entry.Live,
	}
	if name == network.SimulationNetwork && spec.ChainID == 0 {
		spec.ChainID = network.SimulationChainID
	}
	if spec.BlockGasLimit == 0 {
		spec.BlockGasLimit = network.DefaultBlockGasLimit
	}

	if entry.GasPrice != "" && entry.GasPrice != "auto" {
		price, err := network.ParseGasPriceString(entry.GasPrice)
		if err != nil {
			return network.Spec{}, &network.IncompleteSpecError{Network: name, Field: "gas price", Reason: err.Error()}
		}
		spec.GasPrice = price
	}

	sources := make([]accounts.Source, 0, len(entry.Accounts))
	for i, ref := range entry.Accounts {
		src, err := accounts.ParseSource(strings.TrimSpace(ref), opts.Env, opts.KeyringService)
		if err != nil {
			return network.Spec{}, fmt.Errorf("network %s account %d: %w", name, i, err)
		}
		sources = append(sources, src)
	}
	spec.Accounts = accounts.Resolve(sources...)
	return spec, nil
}

func buildExplorers(entries []ExplorerEntry, opts Options) (map[uint64]explorer.Endpoint, error) {
	registry := explorer.NewRegistry(opts.Logger)
	for _, e := range entries {
		registry.Add(explorer.Endpoint{
			Network:    e.Network,
			ChainID:    e.ChainID,
			APIURL:     e.APIURL,
			BrowserURL: e.BrowserURL,
			APIKey:     resolveAPIKey(e.APIKey, opts.Env),
		})
	}
	return registry.Build()
}

// resolveAPIKey expands env:NAME references. A missing variable yields an
// empty key, which the explorer registry accepts with a warning.
func resolveAPIKey(ref string, acc *env.Accessor) string {
	if name, ok := strings.CutPrefix(ref, accounts.EnvPrefix); ok {
		return acc.GetOr(name, "")
	}
	return ref
}

func sortedKeys(entries map[string]NetworkEntry) []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
