package version

// Set at build time with -ldflags "-X github.com/jibchain/deploykit/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
)

func GetVersion() string {
	return Version
}

func GetCommit() string {
	return Commit
}
