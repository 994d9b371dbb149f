package config

const (
	// DeployerPrivateKeyEnvVar holds the signing key of the deployer role
	DeployerPrivateKeyEnvVar = "DEPLOYER_PRIVATE_KEY"

	// VerifyContractsEnvVar enables contract verification when set to exactly "1"
	VerifyContractsEnvVar = "VERIFY_CONTRACTS"

	// DefaultKeyringService is the OS keyring service used for keyring: account references
	DefaultKeyringService = "deploykit"

	// ProjectFile is the default project file name looked up in the working directory
	ProjectFile = "deploykit.yaml"

	// DeployerRole is the conventional named account for index 0
	DeployerRole = "deployer"
)
