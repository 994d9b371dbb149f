package account

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/accounts"
	"github.com/jibchain/deploykit/pkg/common"
	"github.com/jibchain/deploykit/pkg/common/output"
)

var StoreCommand = &cli.Command{
	Name:      "store",
	Usage:     "Store a private key in the OS keyring for use as keyring:<name>",
	ArgsUsage: "<name>",
	Action:    storeAction,
}

func storeAction(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx)

	name := cCtx.Args().First()
	if name == "" {
		return fmt.Errorf("key name is required")
	}

	prompter := output.NewPrompter(cCtx.App.Reader, cCtx.App.ErrWriter)
	key, err := prompter.InputHiddenString(
		"Private key:",
		"Hex private key for signing transactions (input will be hidden)",
		validatePrivateKey,
	)
	if err != nil {
		return fmt.Errorf("failed to read private key: %w", err)
	}

	address, err := accounts.StoreInKeyring(common.KeyringServiceName, name, key)
	if err != nil {
		return err
	}

	logger.Info("Stored key %s", name)
	logger.Info("Address: %s", address)
	logger.Info("Reference it in the project file as %s%s", accounts.KeyringPrefix, name)
	return nil
}

func validatePrivateKey(key string) error {
	_, err := accounts.NormalizePrivateKey(key)
	return err
}
