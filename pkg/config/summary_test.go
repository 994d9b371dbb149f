package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSummary_Redacts(t *testing.T) {
	cfg, err := Assemble(testProject(), options(map[string]string{DeployerPrivateKeyEnvVar: testKey}))
	require.NoError(t, err)

	s := cfg.Summary()
	assert.Equal(t, "1.5 gwei", s.Networks["jibchain"].GasPrice)
	assert.Equal(t, "auto", s.Networks["hardhat"].GasPrice)
	assert.Equal(t, 1, s.Networks["jibchain"].Accounts)
	require.Len(t, s.Explorers, 1)
	assert.Equal(t, "set", s.Explorers[0].APIKey)

	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "abc")
	assert.NotContains(t, string(out), testKey[2:])
	assert.Contains(t, string(out), "rpc-l1.jibchain.net")

	// Building the summary must not read credentials.
	jib, _ := cfg.Network("jibchain")
	assert.False(t, jib.Accounts[0].Resolved())
}

func TestSummary_IsIndependentCopy(t *testing.T) {
	cfg, err := Assemble(testProject(), options(nil))
	require.NoError(t, err)

	s := cfg.Summary()
	s.NamedAccounts["deployer"] = 7
	s.NamedAccounts["minter"] = 1
	s.Compilers[0].Version = "9.9.9"
	s.Compilers[0].Settings.Optimizer.Runs = 1

	assert.Equal(t, map[string]int{"deployer": 0}, cfg.NamedAccounts)
	assert.Equal(t, "0.8.10", cfg.Compilers[0].Version)
	assert.Equal(t, 200, cfg.Compilers[0].Settings.Optimizer.Runs)
	assert.Equal(t, 0, cfg.Summary().NamedAccounts["deployer"])
}
