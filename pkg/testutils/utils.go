package testutils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/common"
	"github.com/jibchain/deploykit/pkg/common/logger"
)

// CreateTestAppWithNoopLoggerAndAccess creates a CLI app with no-op logger and returns both app and logger
func CreateTestAppWithNoopLoggerAndAccess(name string, flags []cli.Flag, action cli.ActionFunc) (*cli.App, *logger.NoopLogger) {
	noopLogger := logger.NewNoopLogger()
	app := &cli.App{
		Name:  name,
		Flags: flags,
		Before: func(cCtx *cli.Context) error {
			cCtx.Context = common.WithLogger(cCtx.Context, noopLogger)
			return nil
		},
		Action: action,
	}
	return app, noopLogger
}

// CreateTestAppWithOutput is CreateTestAppWithNoopLoggerAndAccess with stdout and stderr
// redirected into the returned buffer and stdin read from input.
func CreateTestAppWithOutput(name string, flags []cli.Flag, input string, action cli.ActionFunc) (*cli.App, *logger.NoopLogger, *bytes.Buffer) {
	app, noopLogger := CreateTestAppWithNoopLoggerAndAccess(name, flags, action)
	out := &bytes.Buffer{}
	app.Writer = out
	app.ErrWriter = out
	app.Reader = bytes.NewBufferString(input)
	return app, noopLogger, out
}

// WriteProject writes a project file into a temporary directory and returns its path.
func WriteProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deploykit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
