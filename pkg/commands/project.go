package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/commands/project"
)

var ConfigCommand = &cli.Command{
	Name:  "config",
	Usage: "Inspect and validate the project configuration",
	Subcommands: []*cli.Command{
		project.ShowCommand,
		project.ValidateCommand,
		project.InitCommand,
	},
}
