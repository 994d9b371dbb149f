package account

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/accounts"
	"github.com/jibchain/deploykit/pkg/common"
	"github.com/jibchain/deploykit/pkg/common/output"
)

var RemoveCommand = &cli.Command{
	Name:      "remove",
	Usage:     "Remove a private key from the OS keyring",
	ArgsUsage: "<name>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "force",
			Usage: "Skip confirmation prompt",
		},
	},
	Action: removeAction,
}

func removeAction(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx)

	name := cCtx.Args().First()
	if name == "" {
		return fmt.Errorf("key name is required")
	}

	if !cCtx.Bool("force") {
		prompter := output.NewPrompter(cCtx.App.Reader, cCtx.App.ErrWriter)
		confirmed, err := prompter.Confirm(fmt.Sprintf("Remove key %s from the keyring? This cannot be undone.", name))
		if err != nil {
			return fmt.Errorf("failed to get confirmation: %w", err)
		}
		if !confirmed {
			logger.Info("Removal cancelled")
			return nil
		}
	}

	if err := accounts.DeleteFromKeyring(common.KeyringServiceName, name); err != nil {
		return err
	}

	logger.Info("Removed key %s", name)
	return nil
}
