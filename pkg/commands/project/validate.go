package project

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/accounts"
	"github.com/jibchain/deploykit/pkg/commands/utils"
	"github.com/jibchain/deploykit/pkg/common"
	"github.com/jibchain/deploykit/pkg/compiler"
)

var ValidateCommand = &cli.Command{
	Name:  "validate",
	Usage: "Assemble the configuration and check its invariants",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "resolve-accounts",
			Usage: "Also read and validate every account of live networks",
		},
	},
	Action: validateAction,
}

func validateAction(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx)

	cfg, err := utils.GetConfiguration(cCtx)
	if err != nil {
		return err
	}

	if cCtx.Bool("resolve-accounts") {
		for _, name := range cfg.NetworkNames() {
			spec := cfg.Networks[name]
			if !spec.Live {
				continue
			}
			for i, cred := range spec.Accounts {
				addr, err := accounts.Address(cred)
				if err != nil {
					return fmt.Errorf("network %s account %d: %w", name, i, err)
				}
				logger.Debug("network %s account %d: %s", name, i, addr.Hex())
			}
		}
	}

	latest, _ := compiler.Latest(cfg.Compilers)
	logger.Info("Configuration is valid: %d network(s), %d compiler(s), %d explorer(s), latest compiler %s",
		len(cfg.Networks), len(cfg.Compilers), len(cfg.Explorers), latest.Version)
	return nil
}
