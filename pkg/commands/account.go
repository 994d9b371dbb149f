package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/commands/account"
)

var AccountsCommand = &cli.Command{
	Name:  "accounts",
	Usage: "Inspect and manage signing accounts",
	Subcommands: []*cli.Command{
		account.ListCommand,
		account.StoreCommand,
		account.RemoveCommand,
	},
}
