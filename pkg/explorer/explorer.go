// Package explorer declares block-explorer verification endpoints keyed by chain id.
package explorer

import (
	"errors"
	"fmt"
	"net/url"
	"sort"

	"github.com/jibchain/deploykit/pkg/common/iface"
)

var ErrInvalidEndpoint = errors.New("invalid explorer endpoint")

// Endpoint is the verification API of one chain's block explorer.
type Endpoint struct {
	Network    string
	ChainID    uint64
	APIURL     string
	BrowserURL string
	// APIKey may be empty when verification is not set up for this chain yet.
	APIKey string
}

// Configured reports whether an API key is present.
func (e Endpoint) Configured() bool {
	return e.APIKey != ""
}

// Registry collects endpoints in declaration order.
type Registry struct {
	logger    iface.Logger
	endpoints []Endpoint
}

func NewRegistry(logger iface.Logger) *Registry {
	return &Registry{logger: logger}
}

func (r *Registry) Add(e Endpoint) *Registry {
	r.endpoints = append(r.endpoints, e)
	return r
}

// Build validates endpoints and returns them keyed by chain id. An empty API
// key is logged and accepted.
func (r *Registry) Build() (map[uint64]Endpoint, error) {
	out := make(map[uint64]Endpoint, len(r.endpoints))
	for _, e := range r.endpoints {
		if err := Validate(e); err != nil {
			return nil, err
		}
		if prev, exists := out[e.ChainID]; exists {
			return nil, fmt.Errorf("%w: chain id %d declared for both %q and %q",
				ErrInvalidEndpoint, e.ChainID, prev.Network, e.Network)
		}
		if !e.Configured() && r.logger != nil {
			r.logger.Warn("No explorer API key for chain %d (%s); contract verification is not configured", e.ChainID, e.Network)
		}
		out[e.ChainID] = e
	}
	return out, nil
}

// Validate checks the chain id and that both URLs are absolute http(s) URLs.
func Validate(e Endpoint) error {
	if e.ChainID == 0 {
		return fmt.Errorf("%w: chain id is required (network %q)", ErrInvalidEndpoint, e.Network)
	}
	if err := validateURL(e.APIURL); err != nil {
		return fmt.Errorf("%w: chain %d api url: %v", ErrInvalidEndpoint, e.ChainID, err)
	}
	if err := validateURL(e.BrowserURL); err != nil {
		return fmt.Errorf("%w: chain %d browser url: %v", ErrInvalidEndpoint, e.ChainID, err)
	}
	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return errors.New("is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%q is not an absolute URL", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q must use http or https", raw)
	}
	return nil
}

// ChainIDs returns the registered chain ids in ascending order.
func ChainIDs(endpoints map[uint64]Endpoint) []uint64 {
	ids := make([]uint64, 0, len(endpoints))
	for id := range endpoints {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
