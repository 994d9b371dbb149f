package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/commands/explorers"
)

var ExplorersCommand = &cli.Command{
	Name:  "explorers",
	Usage: "Show block explorer verification endpoints",
	Subcommands: []*cli.Command{
		explorers.ListCommand,
	},
}
