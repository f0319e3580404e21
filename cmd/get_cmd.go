package cmd

import (
	"fmt"

	"github.com/dzjyyds666/iniq/parse/ini"
	"github.com/spf13/cobra"
)

type GetParams struct {
	Input   string `json:"input"`   // 输入文件路径
	Section string `json:"section"` // 节名，大小写不敏感
	Key     string `json:"key"`     // 查找的key，大小写不敏感
}

func newGetCmd() *cobra.Command {
	params := &GetParams{}
	cmd := &cobra.Command{
		Use:   "get",
		Short: "print the value of a key",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(params.Input)
			if err != nil {
				return err
			}
			var value string
			if cmd.Flags().Changed("section") {
				value, err = doc.Get(params.Section, params.Key)
			} else {
				value, err = getOutsideSection(doc, params.Key)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	cmd.Flags().StringVarP(&params.Section, "section", "s", "", "section name; omit for keys before the first section")
	cmd.Flags().StringVarP(&params.Key, "key", "k", "", "key")
	return cmd
}

func getOutsideSection(doc *ini.Document, key string) (string, error) {
	kv, ok := doc.KeyValue(key)
	if !ok {
		return "", ini.Error.Errorf("%w: %s", ini.ErrKeyNotFound, key)
	}
	return kv.Value, nil
}

func newSectionsCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "list section names",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(input)
			if err != nil {
				return err
			}
			for _, name := range doc.SectionNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input file path")
	return cmd
}

func newKeysCmd() *cobra.Command {
	params := &GetParams{}
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "list the keys of a section",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(params.Input)
			if err != nil {
				return err
			}
			s, ok := doc.Section(params.Section)
			if !ok {
				return ini.Error.Errorf("%w: [%s]", ini.ErrSectionNotFound, params.Section)
			}
			for _, k := range s.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	cmd.Flags().StringVarP(&params.Section, "section", "s", "", "section name")
	return cmd
}
