package utils

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/common"
	"github.com/jibchain/deploykit/pkg/config"
	"github.com/jibchain/deploykit/pkg/env"
	"github.com/jibchain/deploykit/pkg/network"
)

// GetConfiguration returns the configuration stored on the context, or loads
// and assembles the project named by --config.
func GetConfiguration(cCtx *cli.Context) (*config.Configuration, error) {
	if cfg, ok := config.FromContext(cCtx.Context); ok {
		return cfg, nil
	}

	cfg, err := config.Load(cCtx.String("config"), config.Options{
		Env:            env.NewAccessor(env.OS()),
		Logger:         common.LoggerFromContext(cCtx),
		KeyringService: common.KeyringServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assemble configuration: %w", err)
	}

	cCtx.Context = config.WithConfiguration(cCtx.Context, cfg)
	return cfg, nil
}

// GetNetwork resolves --network, falling back to the project's default network.
func GetNetwork(cCtx *cli.Context, cfg *config.Configuration) (network.Spec, error) {
	if name := cCtx.String(common.NetworkFlag.Name); name != "" {
		return cfg.Network(name)
	}
	return cfg.DefaultNetworkSpec(), nil
}

// GetNetworkDescription returns a human-readable description for a network
func GetNetworkDescription(spec network.Spec) string {
	switch {
	case spec.IsSimulation():
		return "local simulation"
	case spec.Live:
		return fmt.Sprintf("live, chain %d", spec.ChainID)
	default:
		return fmt.Sprintf("chain %d", spec.ChainID)
	}
}
