package config

import _ "embed"

//go:embed deploykit.yaml
var DefaultProject []byte

//go:embed .env.example
var EnvExample string
