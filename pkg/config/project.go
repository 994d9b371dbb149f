package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	defaults "github.com/jibchain/deploykit/config"
	"github.com/jibchain/deploykit/pkg/compiler"
)

// Project is the declarative input the configuration is assembled from.
type Project struct {
	DefaultNetwork string                  `yaml:"default_network"`
	NamedAccounts  map[string]int          `yaml:"named_accounts"`
	Networks       map[string]NetworkEntry `yaml:"networks"`
	Compilers      []compiler.Spec         `yaml:"compilers"`
	Explorers      []ExplorerEntry         `yaml:"explorers"`
	Paths          Paths                   `yaml:"paths"`
	Typechain      Typechain               `yaml:"typechain"`
}

// NetworkEntry declares a network. Accounts are references understood by accounts.ParseSource.
type NetworkEntry struct {
	URL           string   `yaml:"url"`
	ChainID       uint64   `yaml:"chain_id"`
	BlockGasLimit uint64   `yaml:"block_gas_limit"`
	GasPrice      string   `yaml:"gas_price"`
	Accounts      []string `yaml:"accounts"`
	Live          bool     `yaml:"live"`
}

// ExplorerEntry declares a verification endpoint. APIKey may be "env:NAME".
type ExplorerEntry struct {
	Network    string `yaml:"network"`
	ChainID    uint64 `yaml:"chain_id"`
	APIURL     string `yaml:"api_url"`
	BrowserURL string `yaml:"browser_url"`
	APIKey     string `yaml:"api_key"`
}

type Paths struct {
	Sources   string `yaml:"sources"`
	Tests     string `yaml:"tests"`
	Cache     string `yaml:"cache"`
	Artifacts string `yaml:"artifacts"`
}

type Typechain struct {
	OutDir                  string `yaml:"out_dir"`
	Target                  string `yaml:"target"`
	AlwaysGenerateOverloads bool   `yaml:"always_generate_overloads"`
	DiscriminateTypes       bool   `yaml:"discriminate_types"`
}

// DefaultPaths mirrors the conventional project layout.
func DefaultPaths() Paths {
	return Paths{
		Sources:   "./contracts",
		Tests:     "./test",
		Cache:     "./cache",
		Artifacts: "./artifacts",
	}
}

// DefaultProject returns the embedded project definition.
func DefaultProject() (Project, error) {
	return ParseProject(bytes.NewReader(defaults.DefaultProject))
}

// LoadProject reads a project file. An empty path loads ./deploykit.yaml if it
// exists and the embedded default otherwise.
func LoadProject(path string) (Project, error) {
	if path == "" {
		if _, err := os.Stat(ProjectFile); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return DefaultProject()
			}
			return Project{}, fmt.Errorf("failed to access %s: %w", ProjectFile, err)
		}
		path = ProjectFile
	}

	f, err := os.Open(path)
	if err != nil {
		return Project{}, fmt.Errorf("failed to open project file: %w", err)
	}
	defer f.Close()

	p, err := ParseProject(f)
	if err != nil {
		return Project{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseProject decodes a YAML project, rejecting unknown fields.
// Omitted paths fall back to DefaultPaths.
func ParseProject(r io.Reader) (Project, error) {
	var p Project
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Project{}, fmt.Errorf("failed to parse project: %w", err)
	}

	def := DefaultPaths()
	if p.Paths.Sources == "" {
		p.Paths.Sources = def.Sources
	}
	if p.Paths.Tests == "" {
		p.Paths.Tests = def.Tests
	}
	if p.Paths.Cache == "" {
		p.Paths.Cache = def.Cache
	}
	if p.Paths.Artifacts == "" {
		p.Paths.Artifacts = def.Artifacts
	}
	return p, nil
}
