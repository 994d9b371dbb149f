package explorers

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/commands/utils"
	"github.com/jibchain/deploykit/pkg/explorer"
)

var ListCommand = &cli.Command{
	Name:   "list",
	Usage:  "List verification endpoints by chain id",
	Action: listAction,
}

func listAction(cCtx *cli.Context) error {
	cfg, err := utils.GetConfiguration(cCtx)
	if err != nil {
		return err
	}

	w := cCtx.App.Writer
	if len(cfg.Explorers) == 0 {
		fmt.Fprintln(w, "No explorer endpoints configured")
		return nil
	}

	if cfg.VerifyContracts {
		fmt.Fprintln(w, "Contract verification: enabled")
	} else {
		fmt.Fprintln(w, "Contract verification: disabled (set VERIFY_CONTRACTS=1 to enable)")
	}
	fmt.Fprintln(w, "")

	for _, id := range explorer.ChainIDs(cfg.Explorers) {
		e := cfg.Explorers[id]
		key := "api key set"
		if !e.Configured() {
			key = "no api key"
		}
		fmt.Fprintf(w, "  %-8d %-12s %s (%s)\n", id, e.Network, e.APIURL, key)
		fmt.Fprintf(w, "  %-8s %-12s %s\n", "", "", e.BrowserURL)
	}
	return nil
}
