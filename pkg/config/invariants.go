package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jibchain/deploykit/pkg/explorer"
	"github.com/jibchain/deploykit/pkg/network"
)

var ErrInvariantViolation = errors.New("configuration invariant violation")

// Invariant names a cross-field rule of an assembled configuration.
type Invariant string

const (
	InvariantCompilersNonEmpty        Invariant = "compilers-non-empty"
	InvariantDefaultNetworkRegistered Invariant = "default-network-registered"
	InvariantNamedAccountInBounds     Invariant = "named-account-in-bounds"
	InvariantExplorerWellFormed       Invariant = "explorer-endpoint-well-formed"
	InvariantExplorerMatchesNetwork   Invariant = "explorer-matches-live-network"
	InvariantPathsNonEmpty            Invariant = "paths-non-empty"
)

// InvariantError carries the violated invariant and what violated it.
type InvariantError struct {
	Invariant Invariant
	Detail    string
	Err       error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvariantViolation, e.Invariant, e.Detail)
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

func violation(inv Invariant, format string, args ...any) error {
	return &InvariantError{Invariant: inv, Detail: fmt.Sprintf(format, args...)}
}

// validate checks the cross-component invariants. Credentials are counted but never read.
func (c *Configuration) validate() error {
	if len(c.Compilers) == 0 {
		return violation(InvariantCompilersNonEmpty, "no compiler versions declared")
	}

	if _, ok := c.Networks[c.DefaultNetwork]; !ok {
		return violation(InvariantDefaultNetworkRegistered, "default network %q is not registered", c.DefaultNetwork)
	}

	if err := c.validateNamedAccounts(); err != nil {
		return err
	}
	if err := c.validateExplorers(); err != nil {
		return err
	}
	return c.Paths.validate()
}

func (c *Configuration) validateNamedAccounts() error {
	roles := make([]string, 0, len(c.NamedAccounts))
	for role := range c.NamedAccounts {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	for _, role := range roles {
		idx := c.NamedAccounts[role]
		if idx < 0 {
			return violation(InvariantNamedAccountInBounds, "role %q has negative account index %d", role, idx)
		}
		for _, name := range network.Names(c.Networks) {
			spec := c.Networks[name]
			if !spec.Live {
				continue
			}
			if idx >= len(spec.Accounts) {
				return violation(InvariantNamedAccountInBounds,
					"role %q uses account %d but network %q has %d account(s)", role, idx, name, len(spec.Accounts))
			}
		}
	}
	return nil
}

func (c *Configuration) validateExplorers() error {
	for _, id := range explorer.ChainIDs(c.Explorers) {
		e := c.Explorers[id]
		var matches []string
		for _, name := range network.Names(c.Networks) {
			spec := c.Networks[name]
			if spec.Live && spec.ChainID == e.ChainID {
				matches = append(matches, name)
			}
		}

		switch len(matches) {
		case 0:
			return violation(InvariantExplorerMatchesNetwork, "chain id %d has no live network", e.ChainID)
		case 1:
		default:
			return violation(InvariantExplorerMatchesNetwork, "chain id %d matches live networks %v", e.ChainID, matches)
		}

		if e.Network != "" && e.Network != matches[0] {
			return violation(InvariantExplorerMatchesNetwork,
				"explorer for chain id %d names network %q but the chain belongs to %q", e.ChainID, e.Network, matches[0])
		}
	}
	return nil
}

func (p Paths) validate() error {
	fields := []struct {
		name, value string
	}{
		{"sources", p.Sources},
		{"tests", p.Tests},
		{"cache", p.Cache},
		{"artifacts", p.Artifacts},
	}
	for _, f := range fields {
		if f.value == "" {
			return violation(InvariantPathsNonEmpty, "%s path is empty", f.name)
		}
	}
	return nil
}
