package common

import "github.com/urfave/cli/v2"

// Common flag definitions
var (
	NetworkFlag = &cli.StringFlag{
		Name:    "network",
		Aliases: []string{"n"},
		Usage:   "Network to use (defaults to the project's default network)",
	}

	RoleFlag = &cli.StringFlag{
		Name:  "role",
		Usage: "Named account role, e.g. deployer",
	}

	ForceFlag = &cli.BoolFlag{
		Name:  "force",
		Usage: "Overwrite existing files",
	}
)

// GlobalFlags defines flags that apply to the entire application (global flags).
var GlobalFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Enable verbose logging",
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the project file (defaults to ./deploykit.yaml, then the built-in project)",
		EnvVars: []string{ConfigEnvVar},
	},
	&cli.StringFlag{
		Name:  "env-file",
		Usage: "Environment file to load before running",
		Value: EnvFile,
	},
}
