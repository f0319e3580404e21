package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dzjyyds666/iniq/parse/ini"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type DumpParams struct {
	Input string `json:"input"` // 输入文件路径
	Color string `json:"color"` // auto / always / never
}

type palette struct {
	kind, name, value, trivia func(a ...interface{}) string
}

func newPalette(enabled bool) palette {
	if !enabled {
		plain := fmt.Sprint
		return palette{kind: plain, name: plain, value: plain, trivia: plain}
	}
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return palette{
		kind:   mk(color.FgBlue, color.Bold),
		name:   mk(color.FgCyan),
		value:  mk(color.FgGreen),
		trivia: mk(color.FgHiBlack),
	}
}

func newDumpCmd() *cobra.Command {
	params := &DumpParams{}
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "print the syntax tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(params.Input)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			enabled, err := useColor(params.Color, w)
			if err != nil {
				return err
			}
			dumpDocument(w, doc, newPalette(enabled))
			return nil
		},
	}
	cmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	cmd.Flags().StringVar(&params.Color, "color", "auto", "auto, always or never")
	return cmd
}

func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	}
	return false, fmt.Errorf("unknown color mode %q", mode)
}

func dumpDocument(w io.Writer, doc *ini.Document, p palette) {
	fmt.Fprintln(w, p.kind("document"))
	doc.Walk(func(n ini.Node, depth int) {
		indent := strings.Repeat("  ", depth+1)
		fmt.Fprintf(w, "%s%s\n", indent, describe(n, p))
	})
}

func describe(n ini.Node, p palette) string {
	var b strings.Builder
	switch n := n.(type) {
	case *ini.SectionNode:
		fmt.Fprintf(&b, "%s %s", p.kind("section"), p.name(fmt.Sprintf("%q", n.Name)))
		if n.ClosingBracket == nil {
			b.WriteString(p.trivia(" (unterminated)"))
		}
	case *ini.KeyValueNode:
		fmt.Fprintf(&b, "%s %s = %s", p.kind("key_value"), p.name(fmt.Sprintf("%q", n.Key)), p.value(fmt.Sprintf("%q", n.Value)))
		if n.Quoted() {
			b.WriteString(p.trivia(" quoted " + n.OpeningQuote.Text))
		}
	case *ini.TriviaLine:
		fmt.Fprintf(&b, "%s %s", p.kind(string(n.Class)), p.trivia(fmt.Sprintf("%q", n.Tokens.String())))
	}
	if n.LineBreakToken() == nil {
		b.WriteString(p.trivia(" (no line break)"))
	}
	return b.String()
}
