package version

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/internal/version"
	"github.com/jibchain/deploykit/pkg/common"
)

var VersionCommand = &cli.Command{
	Name:  "version",
	Usage: "Print the version of deploykit",
	Action: func(cCtx *cli.Context) error {
		return VersionRun(cCtx)
	},
}

func VersionRun(cCtx *cli.Context) error {
	fmt.Fprintf(cCtx.App.Writer, "Version: %s%s\nCommit: %s\n", version.GetVersion(), common.BuildSuffix, version.GetCommit())
	return nil
}
