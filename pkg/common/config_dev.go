//go:build !prod
// +build !prod

package common

// Build-specific constants for dev environment
const (
	BuildSuffix        = "-dev"
	KeyringServiceName = "deploykit-dev"
	Build              = "dev"
)
