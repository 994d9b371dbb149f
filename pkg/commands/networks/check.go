package networks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/commands/utils"
	"github.com/jibchain/deploykit/pkg/common"
	"github.com/jibchain/deploykit/pkg/network"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Dial live networks and compare the remote chain id with the configured one",
	Flags: []cli.Flag{
		common.NetworkFlag,
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Timeout per network",
			Value: 10 * time.Second,
		},
	},
	Action: checkAction,
}

func checkAction(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx)

	cfg, err := utils.GetConfiguration(cCtx)
	if err != nil {
		return err
	}

	var targets []network.Spec
	if name := cCtx.String(common.NetworkFlag.Name); name != "" {
		spec, err := cfg.Network(name)
		if err != nil {
			return err
		}
		targets = append(targets, spec)
	} else {
		for _, name := range cfg.NetworkNames() {
			if spec := cfg.Networks[name]; spec.URL != "" {
				targets = append(targets, spec)
			}
		}
	}

	var errs []error
	for _, spec := range targets {
		if spec.URL == "" {
			logger.Info("%s: no RPC endpoint, skipping", spec.Name)
			continue
		}
		ctx, cancel := context.WithTimeout(cCtx.Context, cCtx.Duration("timeout"))
		remote, err := network.CheckChainID(ctx, spec)
		cancel()
		if err != nil {
			logger.Error("%s: %v", spec.Name, err)
			errs = append(errs, err)
			continue
		}
		logger.Info("%s: chain id %d OK", spec.Name, remote)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d network check(s) failed: %w", len(errs), errors.Join(errs...))
	}
	return nil
}
