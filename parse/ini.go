package parse

// Package parse reads and writes INI files through the lossless syntax tree
// in parse/ini. Parsing itself cannot fail; the only errors come from I/O.

import (
	"io"
	"os"

	"github.com/dzjyyds666/iniq/parse/ini"
	"github.com/dzjyyds666/iniq/pkg"
	"github.com/zeebo/errs/v2"
)

// Error tags I/O failures while loading or saving documents.
var Error = errs.Tag("parse")

// =========================
// Public API
// =========================

// ParseIni reads r to the end and returns its syntax tree.
func ParseIni(r io.Reader) (*ini.Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return ini.Parse(string(b)), nil
}

// ParseIniFile parses the file at path.
func ParseIniFile(path string) (*ini.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	defer f.Close()
	return ParseIni(f)
}

// WriteIni prints doc to w.
func WriteIni(w io.Writer, doc *ini.Document) error {
	if _, err := doc.WriteTo(w); err != nil {
		return Error.Wrap(err)
	}
	return nil
}

// WriteIniFile replaces the file at path with the printed document.
func WriteIniFile(path string, doc *ini.Document) error {
	if err := pkg.WriteFileAtomic(path, []byte(doc.String())); err != nil {
		return Error.Wrap(err)
	}
	return nil
}

// RoundTrip reports whether printing the parsed src reproduces it, along
// with the printed text.
func RoundTrip(src string) (string, bool) {
	out := ini.Parse(src).String()
	return out, out == src
}
