package project

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	defaults "github.com/jibchain/deploykit/config"
	"github.com/jibchain/deploykit/pkg/commands/utils"
	"github.com/jibchain/deploykit/pkg/common"
	"github.com/jibchain/deploykit/pkg/config"
)

var InitCommand = &cli.Command{
	Name:  "init",
	Usage: "Write the default project file and add missing variables to the env file",
	Flags: []cli.Flag{
		common.ForceFlag,
	},
	Action: initAction,
}

func initAction(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx)

	path := cCtx.String("config")
	if path == "" {
		path = config.ProjectFile
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil && !cCtx.Bool(common.ForceFlag.Name):
		logger.Info("%s already exists, leaving it unchanged (use --force to overwrite)", path)
	case statErr != nil && !os.IsNotExist(statErr):
		return fmt.Errorf("failed to access %s: %w", path, statErr)
	default:
		if err := os.WriteFile(path, defaults.DefaultProject, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Info("Wrote %s", path)
	}

	envFile := cCtx.String("env-file")
	if envFile == "" {
		envFile = common.EnvFile
	}
	added, err := utils.EnsureEnvFileVariables(envFile, []utils.EnvVariable{
		{Key: config.DeployerPrivateKeyEnvVar, Value: ""},
		{Key: config.VerifyContractsEnvVar, Value: "0"},
	})
	if err != nil {
		return err
	}
	for _, key := range added {
		logger.Info("Added %s to %s", key, envFile)
	}
	return nil
}
