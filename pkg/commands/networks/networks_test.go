package networks

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	defaults "github.com/jibchain/deploykit/config"
	"github.com/jibchain/deploykit/pkg/common"
	"github.com/jibchain/deploykit/pkg/network"
	"github.com/jibchain/deploykit/pkg/testutils"
)

const projectTemplate = `
default_network: jibchain
named_accounts:
  deployer: 0
networks:
  jibchain:
    url: %s
    chain_id: 8899
    accounts: ["0x1234567890123456789012345678901234567890123456789012345678901234"]
    live: true
compilers:
  - version: "0.8.20"
    settings:
      optimizer:
        enabled: true
        runs: 200
`

func TestListCommand(t *testing.T) {
	t.Setenv("VERIFY_CONTRACTS", "")
	path := testutils.WriteProject(t, string(defaults.DefaultProject))

	app, _, out := testutils.CreateTestAppWithOutput("test-app", common.GlobalFlags, "", listAction)
	require.NoError(t, app.Run([]string{"test-app", "--config", path}))

	output := out.String()
	assert.Contains(t, output, "* hardhat")
	assert.Contains(t, output, "local simulation")
	assert.Contains(t, output, "https://rpc-l1.jibchain.net")
	assert.Contains(t, output, "1.5 gwei")
	assert.Contains(t, output, "live, chain 8899")
}

func TestCheckCommand(t *testing.T) {
	t.Setenv("VERIFY_CONTRACTS", "")
	flags := append(common.GlobalFlags, CheckCommand.Flags...)

	t.Run("matching chain id", func(t *testing.T) {
		srv := testutils.NewChainIDServer(t, 8899)
		path := testutils.WriteProject(t, fmt.Sprintf(projectTemplate, srv.URL))

		app, noopLogger, _ := testutils.CreateTestAppWithOutput("test-app", flags, "", checkAction)
		require.NoError(t, app.Run([]string{"test-app", "--config", path}))

		infos := noopLogger.Messages("info")
		require.Len(t, infos, 1)
		assert.Contains(t, infos[0], "jibchain: chain id 8899 OK")
	})

	t.Run("mismatched chain id", func(t *testing.T) {
		srv := testutils.NewChainIDServer(t, 1)
		path := testutils.WriteProject(t, fmt.Sprintf(projectTemplate, srv.URL))

		app, noopLogger, _ := testutils.CreateTestAppWithOutput("test-app", flags, "", checkAction)
		err := app.Run([]string{"test-app", "--config", path})
		require.Error(t, err)
		assert.ErrorIs(t, err, network.ErrChainIDMismatch)
		assert.Len(t, noopLogger.Messages("error"), 1)
	})

	t.Run("simulation network is skipped", func(t *testing.T) {
		srv := testutils.NewChainIDServer(t, 8899)
		path := testutils.WriteProject(t, fmt.Sprintf(projectTemplate, srv.URL))

		app, noopLogger, _ := testutils.CreateTestAppWithOutput("test-app", flags, "", checkAction)
		require.NoError(t, app.Run([]string{"test-app", "--config", path, "--network", "hardhat"}))
		assert.Contains(t, noopLogger.Messages("info")[0], "no RPC endpoint")
	})

	t.Run("unknown network", func(t *testing.T) {
		srv := testutils.NewChainIDServer(t, 8899)
		path := testutils.WriteProject(t, fmt.Sprintf(projectTemplate, srv.URL))

		app, _, _ := testutils.CreateTestAppWithOutput("test-app", flags, "", checkAction)
		err := app.Run([]string{"test-app", "--config", path, "--network", "mainnet"})
		assert.Error(t, err)
	})
}
