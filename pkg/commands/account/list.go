package account

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/jibchain/deploykit/pkg/accounts"
	"github.com/jibchain/deploykit/pkg/commands/utils"
	"github.com/jibchain/deploykit/pkg/common"
)

var ListCommand = &cli.Command{
	Name:  "list",
	Usage: "Show signer addresses of a network's accounts",
	Flags: []cli.Flag{
		common.NetworkFlag,
		common.RoleFlag,
	},
	Action: listAction,
}

func listAction(cCtx *cli.Context) error {
	cfg, err := utils.GetConfiguration(cCtx)
	if err != nil {
		return err
	}

	spec, err := utils.GetNetwork(cCtx, cfg)
	if err != nil {
		return err
	}

	w := cCtx.App.Writer
	if role := cCtx.String(common.RoleFlag.Name); role != "" {
		addr, err := cfg.NamedAccountAddress(role, spec.Name)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, addr.Hex())
		return nil
	}

	if len(spec.Accounts) == 0 {
		fmt.Fprintf(w, "Network %s has no configured accounts\n", spec.Name)
		return nil
	}

	roles := make(map[int][]string)
	for role, idx := range cfg.NamedAccounts {
		roles[idx] = append(roles[idx], role)
	}
	for _, names := range roles {
		sort.Strings(names)
	}

	fmt.Fprintf(w, "Accounts for %s:\n", spec.Name)
	fmt.Fprintln(w, "")
	for i, cred := range spec.Accounts {
		label := fmt.Sprintf("%d", i)
		if names := roles[i]; len(names) > 0 {
			label = fmt.Sprintf("%d %v", i, names)
		}
		addr, err := accounts.Address(cred)
		if err != nil {
			fmt.Fprintf(w, "  %-16s unavailable: %v\n", label, err)
			continue
		}
		fmt.Fprintf(w, "  %-16s %s\n", label, addr.Hex())
	}
	return nil
}
