package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jibchain/deploykit/pkg/common/logger"
	"github.com/jibchain/deploykit/pkg/compiler"
	"github.com/jibchain/deploykit/pkg/env"
	"github.com/jibchain/deploykit/pkg/network"
)

const (
	testKey     = "0x1234567890123456789012345678901234567890123456789012345678901234"
	testAddress = "0x2e988A386a799F506693793c6A5AF6B54dfAaBfB"
)

func options(vars map[string]string) Options {
	return Options{Env: env.NewAccessor(env.Map(vars)), Logger: logger.NewNoopLogger()}
}

func testProject() Project {
	return Project{
		DefaultNetwork: "hardhat",
		NamedAccounts:  map[string]int{"deployer": 0},
		Networks: map[string]NetworkEntry{
			"hardhat": {BlockGasLimit: 30_000_000},
			"jibchain": {
				URL:           "https://rpc-l1.jibchain.net",
				ChainID:       8899,
				BlockGasLimit: 30_000_000,
				GasPrice:      "1.5 gwei",
				Accounts:      []string{"env:DEPLOYER_PRIVATE_KEY"},
				Live:          true,
			},
		},
		Compilers: []compiler.Spec{
			{Version: "0.8.10", Settings: compiler.Settings{Optimizer: compiler.Optimizer{Enabled: true, Runs: 200}}},
			{Version: "0.8.20", Settings: compiler.Settings{Optimizer: compiler.Optimizer{Enabled: true, Runs: 200}}},
		},
		Explorers: []ExplorerEntry{{
			Network:    "jibchain",
			ChainID:    8899,
			APIURL:     "https://exp-l1.jibchain.net/api",
			BrowserURL: "https://exp-l1.jibchain.net",
			APIKey:     "abc",
		}},
		Paths: DefaultPaths(),
	}
}

func TestAssemble_DefaultProject(t *testing.T) {
	p, err := DefaultProject()
	require.NoError(t, err)

	cfg, err := Assemble(p, options(nil))
	require.NoError(t, err)

	assert.Equal(t, "hardhat", cfg.DefaultNetwork)
	assert.Equal(t, map[string]int{"deployer": 0}, cfg.NamedAccounts)
	assert.Equal(t, []string{"hardhat", "jibchain"}, cfg.NetworkNames())

	jib, err := cfg.Network("jibchain")
	require.NoError(t, err)
	assert.True(t, jib.Live)
	assert.Equal(t, uint64(8899), jib.ChainID)
	assert.Equal(t, uint64(1_500_000_000), jib.GasPrice.Uint64())
	assert.Len(t, jib.Accounts, 1)

	e, ok := cfg.ExplorerForNetwork("jibchain")
	require.True(t, ok)
	assert.Equal(t, "https://exp-l1.jibchain.net/api", e.APIURL)
	assert.Equal(t, "abc", e.APIKey)

	assert.Equal(t, DefaultPaths(), cfg.Paths)
	assert.Equal(t, Typechain{
		OutDir:                  "./typechain",
		Target:                  "ethers-v6",
		AlwaysGenerateOverloads: true,
		DiscriminateTypes:       true,
	}, cfg.Typechain)
}

// Scenario A: no signing key in the environment.
func TestAssemble_MissingKeyOnlyFailsOnLiveRead(t *testing.T) {
	cfg, err := Assemble(testProject(), options(nil))
	require.NoError(t, err)

	sim := cfg.DefaultNetworkSpec()
	assert.Equal(t, network.SimulationNetwork, sim.Name)
	assert.False(t, sim.Live)
	assert.Equal(t, uint64(30_000_000), sim.BlockGasLimit)
	assert.Empty(t, sim.Accounts)

	cred, err := cfg.NamedAccount("deployer", "jibchain")
	require.NoError(t, err)

	_, err = cred.Get()
	require.Error(t, err)
	assert.ErrorIs(t, err, env.ErrMissingVariable)
	assert.Contains(t, err.Error(), DeployerPrivateKeyEnvVar)

	var missing *env.MissingVariableError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, DeployerPrivateKeyEnvVar, missing.Name)
}

func TestAssemble_KeyReadFromEnvironmentAtReadTime(t *testing.T) {
	vars := map[string]string{}
	opts := Options{Env: env.NewAccessor(func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	})}

	cfg, err := Assemble(testProject(), opts)
	require.NoError(t, err)

	_, err = cfg.NamedAccountAddress("deployer", "jibchain")
	require.ErrorIs(t, err, env.ErrMissingVariable)

	vars[DeployerPrivateKeyEnvVar] = testKey
	addr, err := cfg.NamedAccountAddress("deployer", "jibchain")
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr.Hex())
}

// Scenario B: the verification flag.
func TestAssemble_VerifyContractsFlag(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want bool
	}{
		{name: "set to 1", vars: map[string]string{VerifyContractsEnvVar: "1"}, want: true},
		{name: "set to 0", vars: map[string]string{VerifyContractsEnvVar: "0"}, want: false},
		{name: "absent", vars: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options(tt.vars)
			cfg, err := Assemble(testProject(), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.VerifyContracts)

			infos := opts.Logger.(*logger.NoopLogger).Messages("info")
			if tt.want {
				assert.Contains(t, infos, "VERIFY_CONTRACTS=1. Will verify contracts.")
			} else {
				assert.Empty(t, infos)
			}
		})
	}
}

// Scenario C: compiler order.
func TestAssemble_CompilersOrderPreserved(t *testing.T) {
	cfg, err := Assemble(testProject(), options(nil))
	require.NoError(t, err)

	require.Len(t, cfg.Compilers, 2)
	assert.Equal(t, "0.8.10", cfg.Compilers[0].Version)
	assert.Equal(t, "0.8.20", cfg.Compilers[1].Version)
	assert.Equal(t, 200, cfg.Compilers[0].Settings.Optimizer.Runs)
	assert.Equal(t, 200, cfg.Compilers[1].Settings.Optimizer.Runs)
}

func TestAssemble_Failures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Project)
		wantErr   error
		invariant Invariant
	}{
		{
			name:      "no compilers",
			mutate:    func(p *Project) { p.Compilers = nil },
			wantErr:   ErrInvariantViolation,
			invariant: InvariantCompilersNonEmpty,
		},
		{
			name:    "zero optimizer runs",
			mutate:  func(p *Project) { p.Compilers[0].Settings.Optimizer.Runs = 0 },
			wantErr: compiler.ErrInvalidSetting,
		},
		{
			name: "live network without url",
			mutate: func(p *Project) {
				e := p.Networks["jibchain"]
				e.URL = ""
				p.Networks["jibchain"] = e
			},
			wantErr: network.ErrIncompleteSpec,
		},
		{
			name: "live network without accounts",
			mutate: func(p *Project) {
				e := p.Networks["jibchain"]
				e.Accounts = nil
				p.Networks["jibchain"] = e
			},
			wantErr: network.ErrIncompleteSpec,
		},
		{
			name: "bad gas price",
			mutate: func(p *Project) {
				e := p.Networks["jibchain"]
				e.GasPrice = "-1 gwei"
				p.Networks["jibchain"] = e
			},
			wantErr: network.ErrIncompleteSpec,
		},
		{
			name:      "unknown default network",
			mutate:    func(p *Project) { p.DefaultNetwork = "mainnet" },
			wantErr:   ErrInvariantViolation,
			invariant: InvariantDefaultNetworkRegistered,
		},
		{
			name:      "role index out of bounds",
			mutate:    func(p *Project) { p.NamedAccounts["operator"] = 1 },
			wantErr:   ErrInvariantViolation,
			invariant: InvariantNamedAccountInBounds,
		},
		{
			name:      "negative role index",
			mutate:    func(p *Project) { p.NamedAccounts["deployer"] = -1 },
			wantErr:   ErrInvariantViolation,
			invariant: InvariantNamedAccountInBounds,
		},
		{
			name:      "explorer without live network",
			mutate:    func(p *Project) { p.Explorers[0].ChainID = 1 },
			wantErr:   ErrInvariantViolation,
			invariant: InvariantExplorerMatchesNetwork,
		},
		{
			name: "explorer chain id matches two live networks",
			mutate: func(p *Project) {
				p.Networks["jibchain-backup"] = p.Networks["jibchain"]
			},
			wantErr:   ErrInvariantViolation,
			invariant: InvariantExplorerMatchesNetwork,
		},
		{
			name:      "explorer names wrong network",
			mutate:    func(p *Project) { p.Explorers[0].Network = "other" },
			wantErr:   ErrInvariantViolation,
			invariant: InvariantExplorerMatchesNetwork,
		},
		{
			name:      "explorer api url relative",
			mutate:    func(p *Project) { p.Explorers[0].APIURL = "/api" },
			wantErr:   ErrInvariantViolation,
			invariant: InvariantExplorerWellFormed,
		},
		{
			name: "explorer on simulation chain id",
			mutate: func(p *Project) {
				p.Explorers[0].ChainID = network.SimulationChainID
				p.Explorers[0].Network = ""
			},
			wantErr:   ErrInvariantViolation,
			invariant: InvariantExplorerMatchesNetwork,
		},
		{
			name:      "empty artifacts path",
			mutate:    func(p *Project) { p.Paths.Artifacts = "" },
			wantErr:   ErrInvariantViolation,
			invariant: InvariantPathsNonEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProject()
			tt.mutate(&p)

			_, err := Assemble(p, options(nil))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			if tt.invariant != "" {
				var inv *InvariantError
				require.ErrorAs(t, err, &inv)
				assert.Equal(t, tt.invariant, inv.Invariant)
			}
		})
	}
}

func TestAssemble_ExplorerWellFormedKeepsCause(t *testing.T) {
	p := testProject()
	p.Explorers[0].BrowserURL = "not a url"

	_, err := Assemble(p, options(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvariantViolation)
	assert.Contains(t, err.Error(), "browser url")
}

func TestAssemble_DoesNotReadCredentials(t *testing.T) {
	reads := 0
	opts := Options{Env: env.NewAccessor(func(name string) (string, bool) {
		if name == DeployerPrivateKeyEnvVar {
			reads++
		}
		return "", false
	})}

	_, err := Assemble(testProject(), opts)
	require.NoError(t, err)
	assert.Equal(t, 0, reads)
}

func TestAssemble_SimulationExemptFromLiveChecks(t *testing.T) {
	p := testProject()
	p.Networks = map[string]NetworkEntry{"hardhat": {}}
	p.Explorers = nil

	cfg, err := Assemble(p, options(nil))
	require.NoError(t, err)

	sim := cfg.DefaultNetworkSpec()
	assert.Equal(t, network.DefaultBlockGasLimit, sim.BlockGasLimit)
	assert.Equal(t, network.SimulationChainID, sim.ChainID)
}

func TestAssemble_Defaults(t *testing.T) {
	p := testProject()
	p.DefaultNetwork = ""
	p.NamedAccounts = nil

	cfg, err := Assemble(p, options(nil))
	require.NoError(t, err)
	assert.Equal(t, network.SimulationNetwork, cfg.DefaultNetwork)
	assert.Equal(t, map[string]int{DeployerRole: 0}, cfg.NamedAccounts)
}

func TestAssemble_ExplorerAPIKeyFromEnv(t *testing.T) {
	p := testProject()
	p.Explorers[0].APIKey = "env:JIBCHAIN_EXPLORER_KEY"

	cfg, err := Assemble(p, options(map[string]string{"JIBCHAIN_EXPLORER_KEY": "secret"}))
	require.NoError(t, err)
	e, _ := cfg.Explorer(8899)
	assert.Equal(t, "secret", e.APIKey)

	opts := options(nil)
	cfg, err = Assemble(p, opts)
	require.NoError(t, err)
	e, _ = cfg.Explorer(8899)
	assert.False(t, e.Configured())
	assert.Len(t, opts.Logger.(*logger.NoopLogger).Messages("warn"), 1)
}

func TestAssemble_KeyringAccount(t *testing.T) {
	keyring.MockInit()
	const service = "deploykit-config-test"
	t.Cleanup(func() { _ = keyring.DeleteAll(service) })
	require.NoError(t, keyring.Set(service, "deployer", testKey))

	p := testProject()
	e := p.Networks["jibchain"]
	e.Accounts = []string{"keyring:deployer"}
	p.Networks["jibchain"] = e

	opts := options(nil)
	opts.KeyringService = service
	cfg, err := Assemble(p, opts)
	require.NoError(t, err)

	addr, err := cfg.NamedAccountAddress("deployer", "jibchain")
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr.Hex())
}

func TestNamedAccount_Errors(t *testing.T) {
	cfg, err := Assemble(testProject(), options(nil))
	require.NoError(t, err)

	_, err = cfg.NamedAccount("treasury", "jibchain")
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = cfg.NamedAccount("deployer", "mainnet")
	assert.ErrorIs(t, err, ErrUnknownNetwork)

	_, err = cfg.NamedAccount("deployer", "hardhat")
	assert.Error(t, err)

	_, ok := cfg.ExplorerForNetwork("hardhat")
	assert.False(t, ok)
}

func TestParseProject(t *testing.T) {
	p, err := ParseProject(strings.NewReader(`
networks:
  sepolia:
    url: https://ethereum-sepolia-rpc.publicnode.com
    chain_id: 11155111
    accounts: ["env:DEPLOYER_PRIVATE_KEY"]
    live: true
compilers:
  - version: "0.8.24"
    settings: {optimizer: {enabled: true, runs: 1000}}
paths:
  sources: ./src
`))
	require.NoError(t, err)

	assert.Equal(t, "./src", p.Paths.Sources)
	assert.Equal(t, "./test", p.Paths.Tests)
	assert.Equal(t, 1000, p.Compilers[0].Settings.Optimizer.Runs)

	cfg, err := Assemble(p, options(nil))
	require.NoError(t, err)
	sepolia, err := cfg.Network("sepolia")
	require.NoError(t, err)
	assert.Nil(t, sepolia.GasPrice)
	assert.Equal(t, network.DefaultBlockGasLimit, sepolia.BlockGasLimit)
}

func TestParseProject_UnknownField(t *testing.T) {
	_, err := ParseProject(strings.NewReader("networkz: {}\n"))
	assert.Error(t, err)
}

func TestParseProject_Empty(t *testing.T) {
	p, err := ParseProject(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultPaths(), p.Paths)

	_, err = Assemble(p, options(nil))
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
compilers:
  - version: "0.8.20"
    settings: {optimizer: {enabled: false, runs: 200}}
`), 0644))

	cfg, err := Load(path, options(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"hardhat"}, cfg.NetworkNames())

	_, err = Load(filepath.Join(dir, "missing.yaml"), options(nil))
	assert.Error(t, err)
}

func TestLoad_DefaultsToEmbeddedProject(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("", options(nil))
	require.NoError(t, err)
	assert.Contains(t, cfg.NetworkNames(), "jibchain")
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	cfg, err := Assemble(testProject(), options(nil))
	require.NoError(t, err)

	got, ok := FromContext(WithConfiguration(context.Background(), cfg))
	require.True(t, ok)
	assert.Same(t, cfg, got)
}
