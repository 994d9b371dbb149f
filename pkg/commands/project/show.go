package project

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/jibchain/deploykit/pkg/commands/utils"
)

var ShowCommand = &cli.Command{
	Name:  "show",
	Usage: "Print the assembled configuration with secrets redacted",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "Output format: yaml or json",
			Value: "yaml",
		},
	},
	Action: showAction,
}

func showAction(cCtx *cli.Context) error {
	cfg, err := utils.GetConfiguration(cCtx)
	if err != nil {
		return err
	}

	summary := cfg.Summary()
	var out []byte
	switch format := cCtx.String("format"); format {
	case "yaml":
		out, err = yaml.Marshal(summary)
	case "json":
		out, err = json.MarshalIndent(summary, "", "  ")
		out = append(out, '\n')
	default:
		return fmt.Errorf("unsupported format %q, use yaml or json", format)
	}
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	_, err = cCtx.App.Writer.Write(out)
	return err
}
