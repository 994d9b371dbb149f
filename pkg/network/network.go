// Package network declares the networks a project can deploy to.
package network

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"

	"github.com/jibchain/deploykit/pkg/accounts"
)

const (
	// SimulationNetwork is the in-process network that is always registered
	SimulationNetwork = "hardhat"

	SimulationChainID uint64 = 31337

	DefaultBlockGasLimit uint64 = 30_000_000

	// MaxBlockGasLimit bounds configured gas limits
	MaxBlockGasLimit uint64 = 1_000_000_000
)

var (
	ErrIncompleteSpec  = errors.New("incomplete network spec")
	ErrChainIDMismatch = errors.New("chain id mismatch")
)

// Spec describes one deploy target.
type Spec struct {
	Name          string
	URL           string
	ChainID       uint64
	BlockGasLimit uint64
	// GasPrice in wei. Nil means the node's suggestion is used.
	GasPrice *uint256.Int
	Accounts []accounts.Credential
	Live     bool
}

// IsSimulation reports whether spec is an ephemeral network without a remote endpoint.
func (s Spec) IsSimulation() bool {
	return !s.Live && s.URL == ""
}

// Simulation returns the default local simulation network.
func Simulation() Spec {
	return Spec{
		Name:          SimulationNetwork,
		ChainID:       SimulationChainID,
		BlockGasLimit: DefaultBlockGasLimit,
	}
}

// IncompleteSpecError names the network and field that failed validation.
type IncompleteSpecError struct {
	Network string
	Field   string
	Reason  string
}

func (e *IncompleteSpecError) Error() string {
	return fmt.Sprintf("%s: network %q: %s %s", ErrIncompleteSpec, e.Network, e.Field, e.Reason)
}

func (e *IncompleteSpecError) Is(target error) bool {
	return target == ErrIncompleteSpec
}

// Validate checks a single network. Credentials are counted, never read.
func Validate(s Spec) error {
	if s.Name == "" {
		return &IncompleteSpecError{Network: s.Name, Field: "name", Reason: "is empty"}
	}
	if s.BlockGasLimit == 0 || s.BlockGasLimit > MaxBlockGasLimit {
		return &IncompleteSpecError{
			Network: s.Name,
			Field:   "block gas limit",
			Reason:  fmt.Sprintf("must be between 1 and %d, got %d", MaxBlockGasLimit, s.BlockGasLimit),
		}
	}
	if !s.Live {
		return nil
	}
	if s.URL == "" {
		return &IncompleteSpecError{Network: s.Name, Field: "url", Reason: "is required for live networks"}
	}
	if len(s.Accounts) == 0 {
		return &IncompleteSpecError{Network: s.Name, Field: "accounts", Reason: "must list at least one account for live networks"}
	}
	for i, cred := range s.Accounts {
		if cred == nil {
			return &IncompleteSpecError{Network: s.Name, Field: "accounts", Reason: fmt.Sprintf("entry %d is nil", i)}
		}
	}
	return nil
}

// Registry collects networks keyed by name. The simulation network is always present.
type Registry struct {
	specs map[string]Spec
	err   error
}

func NewRegistry() *Registry {
	return &Registry{
		specs: map[string]Spec{SimulationNetwork: Simulation()},
	}
}

// Add registers spec. The simulation network may be overridden by a non-live spec;
// any other duplicate name is an error reported by Build.
func (r *Registry) Add(spec Spec) *Registry {
	if r.err != nil {
		return r
	}
	if _, exists := r.specs[spec.Name]; exists {
		if spec.Name != SimulationNetwork {
			r.err = &IncompleteSpecError{Network: spec.Name, Field: "name", Reason: "is registered more than once"}
			return r
		}
		if spec.Live {
			r.err = &IncompleteSpecError{Network: spec.Name, Field: "live", Reason: "cannot be set on the simulation network"}
			return r
		}
	}
	r.specs[spec.Name] = spec
	return r
}

// Build validates all networks, in name order, and returns them keyed by name.
func (r *Registry) Build() (map[string]Spec, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make(map[string]Spec, len(r.specs))
	for _, name := range sortedNames(r.specs) {
		spec := r.specs[name]
		if err := Validate(spec); err != nil {
			return nil, err
		}
		out[name] = spec
	}
	return out, nil
}

func sortedNames(specs map[string]Spec) []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Names returns network names sorted alphabetically.
func Names(specs map[string]Spec) []string {
	return sortedNames(specs)
}

// CheckChainID dials the network's RPC endpoint and verifies its chain id
// matches the configured one. It returns the remote chain id.
func CheckChainID(ctx context.Context, spec Spec) (uint64, error) {
	if spec.URL == "" {
		return 0, &IncompleteSpecError{Network: spec.Name, Field: "url", Reason: "is not set"}
	}

	client, err := ethclient.DialContext(ctx, spec.URL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC for %s: %w", spec.Name, err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID for %s: %w", spec.Name, err)
	}

	remote := chainID.Uint64()
	if spec.ChainID != 0 && remote != spec.ChainID {
		return remote, fmt.Errorf("%w: network %s is configured with %d but endpoint reports %d",
			ErrChainIDMismatch, spec.Name, spec.ChainID, remote)
	}
	return remote, nil
}
