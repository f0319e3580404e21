package cmd

import (
	"errors"
	"strings"

	"github.com/dzjyyds666/iniq/parse"
	"github.com/dzjyyds666/iniq/parse/ini"
	"github.com/dzjyyds666/iniq/pkg"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	errNoInput      = errors.New("no input file path")
	errInputMissing = errors.New("input file not exist")
)

func loadDocument(path string) (*ini.Document, error) {
	if len(path) == 0 {
		return nil, errNoInput
	}
	exist, err := pkg.CheckFileExist(path)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errInputMissing
	}
	doc, err := parse.ParseIniFile(path)
	if err != nil {
		return nil, err
	}
	theLog.Debug("parsed", "path", path, "sections", len(doc.Sections), "outside", len(doc.NodesOutsideSection))
	return doc, nil
}

// lineDiff renders a line-oriented diff of from and to, one line per
// output line prefixed with '-', '+' or ' '. Line endings are shown quoted
// so that CRLF and LF differences are visible.
func lineDiff(from, to string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(showLine(line))
			out.WriteString("\n")
		}
	}
	return out.String()
}

func showLine(line string) string {
	body := strings.TrimRight(line, "\r\n")
	if eol := line[len(body):]; eol != "\n" {
		return body + strings.NewReplacer("\r", `\r`, "\n", `\n`).Replace(eol)
	}
	return body
}
