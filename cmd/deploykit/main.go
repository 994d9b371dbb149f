package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/commands"
	"github.com/jibchain/deploykit/pkg/commands/version"
	"github.com/jibchain/deploykit/pkg/common"
	"github.com/jibchain/deploykit/pkg/common/logger"
	"github.com/jibchain/deploykit/pkg/hooks"
)

func validateBuildEnvironment() {
	if common.Build == "" {
		log.Fatal("Build environment not properly configured")
	}
}

func main() {
	validateBuildEnvironment()

	ctx := common.WithShutdown(context.Background())

	app := &cli.App{
		Name:  "deploykit",
		Usage: "Smart-contract build and deploy configuration",
		Flags: common.GlobalFlags,
		Before: func(cCtx *cli.Context) error {
			if err := hooks.LoadEnvFile(cCtx); err != nil {
				return err
			}

			// Parse verbose flags from raw argv to capture from subcommand flags
			if common.PeelBoolFromFlags(os.Args[1:], "--verbose", "-v") {
				if err := cCtx.Set("verbose", "true"); err != nil {
					return fmt.Errorf("failed to set verbose flag globally: %w", err)
				}
			}

			logger := common.GetLoggerFromCLIContext(cCtx)
			cCtx.Context = common.WithLogger(cCtx.Context, logger)
			return nil
		},
		After: func(cCtx *cli.Context) error {
			if zl, ok := common.LoggerFromContext(cCtx).(*logger.ZapLogger); ok {
				_ = zl.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			commands.ConfigCommand,
			commands.NetworksCommand,
			commands.AccountsCommand,
			commands.ExplorersCommand,
			version.VersionCommand,
		},
		UseShortOptionHandling: true,
	}

	actionChain := hooks.NewActionChain()
	actionChain.Use(hooks.WithCommandLogging)

	hooks.ApplyMiddleware(app.Commands, actionChain)

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
