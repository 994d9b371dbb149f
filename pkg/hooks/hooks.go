package hooks

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/common"
	"github.com/jibchain/deploykit/pkg/env"
)

type ActionChain struct {
	Processors []func(action cli.ActionFunc) cli.ActionFunc
}

// NewActionChain creates a new action chain
func NewActionChain() *ActionChain {
	return &ActionChain{
		Processors: make([]func(action cli.ActionFunc) cli.ActionFunc, 0),
	}
}

// Use appends a new processor to the chain
func (ac *ActionChain) Use(processor func(action cli.ActionFunc) cli.ActionFunc) {
	ac.Processors = append(ac.Processors, processor)
}

func (ac *ActionChain) Wrap(action cli.ActionFunc) cli.ActionFunc {
	for i := len(ac.Processors) - 1; i >= 0; i-- {
		action = ac.Processors[i](action)
	}
	return action
}

func ApplyMiddleware(commands []*cli.Command, chain *ActionChain) {
	for _, cmd := range commands {
		if cmd.Action != nil {
			cmd.Action = chain.Wrap(cmd.Action)
		}
		if len(cmd.Subcommands) > 0 {
			ApplyMiddleware(cmd.Subcommands, chain)
		}
	}
}

// WithCommandLogging logs each command's duration and outcome at debug level.
func WithCommandLogging(action cli.ActionFunc) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx)
		start := time.Now()

		err := action(cCtx)

		result := "success"
		if err != nil {
			result = "failure"
		}
		logger.Debug("command %q finished in %s (%s)", cCtx.Command.HelpName, time.Since(start).Round(time.Millisecond), result)
		return err
	}
}

// LoadEnvFile loads the file named by --env-file into the process environment.
// A missing file is ignored.
func LoadEnvFile(cCtx *cli.Context) error {
	path := cCtx.String("env-file")
	if path == "" {
		path = common.EnvFile
	}
	if err := env.LoadDotEnv(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
