package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var errRoundTrip = errors.New("round trip mismatch")

type CheckParams struct {
	Input string `json:"input"` // 输入文件路径
	Watch bool   `json:"watch"` // 文件变化时重新检查
}

func newCheckCmd() *cobra.Command {
	params := &CheckParams{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "verify that the file prints back byte for byte",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFile(cmd.OutOrStdout(), params.Input); err != nil || !params.Watch {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchFile(ctx, params.Input, func() {
				if err := checkFile(cmd.OutOrStdout(), params.Input); err != nil {
					theLog.Error("check failed", "path", params.Input, "err", err)
				}
			})
		},
	}
	cmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	cmd.Flags().BoolVarP(&params.Watch, "watch", "w", false, "re-check whenever the file is written")
	return cmd
}

func checkFile(w io.Writer, path string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if out := doc.String(); out != string(src) {
		fmt.Fprint(w, lineDiff(string(src), out))
		return fmt.Errorf("%s: %w", path, errRoundTrip)
	}
	fmt.Fprintf(w, "%s: ok\n", path)
	return nil
}

// watchFile calls onChange after every write to path until ctx is done.
// The parent directory is watched so editors that replace the file by
// renaming are still noticed.
func watchFile(ctx context.Context, path string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	theLog.Debug("watching", "path", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			theLog.Debug("changed", "path", ev.Name, "op", ev.Op.String())
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			theLog.Warn("watch error", "err", err)
		}
	}
}
