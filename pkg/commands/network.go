package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/commands/networks"
)

var NetworksCommand = &cli.Command{
	Name:  "networks",
	Usage: "List configured networks and check their RPC endpoints",
	Subcommands: []*cli.Command{
		networks.ListCommand,
		networks.CheckCommand,
	},
}
