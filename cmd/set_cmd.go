package cmd

import (
	"fmt"

	"github.com/dzjyyds666/iniq/parse"
	"github.com/dzjyyds666/iniq/parse/ini"
	"github.com/spf13/cobra"
)

type EditParams struct {
	Input   string `json:"input"`   // 输入文件路径
	Output  string `json:"output"`  // 输出文件地址，默认覆盖输入文件
	Section string `json:"section"` // 节名
	Key     string `json:"key"`     // key
	Value   string `json:"value"`   // 新的值
	Diff    bool   `json:"diff"`    // 只打印差异，不写文件
}

func (p *EditParams) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.Input, "input", "i", "", "input file path")
	cmd.Flags().StringVarP(&p.Output, "output", "o", "", "output path (default: overwrite input)")
	cmd.Flags().StringVarP(&p.Section, "section", "s", "", "section name")
	cmd.Flags().StringVarP(&p.Key, "key", "k", "", "key")
	cmd.Flags().BoolVar(&p.Diff, "diff", false, "print a diff instead of writing")
}

func newSetCmd() *cobra.Command {
	params := &EditParams{}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "set a value, adding the key or section when missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, params, func(doc *ini.Document) (*ini.Document, error) {
				return doc.SetValue(params.Section, params.Key, params.Value)
			})
		},
	}
	params.bind(cmd)
	cmd.Flags().StringVarP(&params.Value, "value", "v", "", "value")
	return cmd
}

func newDelCmd() *cobra.Command {
	params := &EditParams{}
	cmd := &cobra.Command{
		Use:   "del",
		Short: "delete a key, or a whole section when no key is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, params, func(doc *ini.Document) (*ini.Document, error) {
				if params.Key == "" {
					return doc.RemoveSection(params.Section)
				}
				return doc.RemoveKey(params.Section, params.Key)
			})
		},
	}
	params.bind(cmd)
	return cmd
}

func runEdit(cmd *cobra.Command, params *EditParams, edit func(*ini.Document) (*ini.Document, error)) error {
	doc, err := loadDocument(params.Input)
	if err != nil {
		return err
	}
	edited, err := edit(doc)
	if err != nil {
		return err
	}
	if params.Diff {
		fmt.Fprint(cmd.OutOrStdout(), lineDiff(doc.String(), edited.String()))
		return nil
	}
	out := params.Output
	if out == "" {
		out = params.Input
	}
	theLog.Debug("writing", "path", out)
	return parse.WriteIniFile(out, edited)
}
