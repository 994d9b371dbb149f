package networks

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/commands/utils"
	"github.com/jibchain/deploykit/pkg/network"
)

var ListCommand = &cli.Command{
	Name:   "list",
	Usage:  "List all configured networks",
	Action: listAction,
}

func listAction(cCtx *cli.Context) error {
	cfg, err := utils.GetConfiguration(cCtx)
	if err != nil {
		return err
	}

	w := cCtx.App.Writer
	fmt.Fprintln(w, "Networks:")
	fmt.Fprintln(w, "")
	for _, name := range cfg.NetworkNames() {
		spec := cfg.Networks[name]
		marker := " "
		if name == cfg.DefaultNetwork {
			marker = "*"
		}
		url := spec.URL
		if url == "" {
			url = "-"
		}
		fmt.Fprintf(w, "%s %-12s %-32s gas price %-10s accounts %d  (%s)\n",
			marker, name, url, network.FormatGwei(spec.GasPrice), len(spec.Accounts), utils.GetNetworkDescription(spec))
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "* default network")
	return nil
}
