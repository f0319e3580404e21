package cmd

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

type ExportParams struct {
	Input  string `json:"input"`  // 输入文件路径
	Format string `json:"format"` // yaml / json
}

func newExportCmd() *cobra.Command {
	params := &ExportParams{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "print section -> key -> value as yaml or json",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(params.Input)
			if err != nil {
				return err
			}
			var opts []yaml.EncodeOption
			switch params.Format {
			case "yaml":
			case "json":
				opts = append(opts, yaml.JSON())
			default:
				return fmt.Errorf("unknown format %q", params.Format)
			}
			b, err := yaml.MarshalWithOptions(doc.ToMap(), opts...)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	cmd.Flags().StringVarP(&params.Format, "format", "f", "yaml", "yaml or json")
	return cmd
}
