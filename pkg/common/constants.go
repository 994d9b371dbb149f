package common

const (
	// EnvFile is the dotenv file loaded before every command
	EnvFile = ".env"

	// ConfigEnvVar overrides the project file path
	ConfigEnvVar = "DEPLOYKIT_CONFIG"
)
