//go:build prod
// +build prod

package common

// Build-specific constants for prod environment
const (
	BuildSuffix        = ""
	KeyringServiceName = "deploykit"
	Build              = "prod"
)
