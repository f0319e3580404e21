package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const version = "iniq v0.1 -- HEAD"

type RootParams struct {
	Verbose bool `json:"verbose"` // 输出调试日志
}

var rootCmd = NewRootCmd()

// NewRootCmd builds the full command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	params := &RootParams{}
	root := &cobra.Command{
		Use:           "iniq",
		Short:         "iniq reads and edits INI files without losing formatting.",
		Long:          "iniq reads and edits INI files. Comments, blank lines, indentation and malformed lines are kept exactly as they are; lookups match keys and sections case-insensitively like GetPrivateProfileString.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if params.Verbose {
				logLevel.Set(slog.LevelDebug)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	root.PersistentFlags().BoolVarP(&params.Verbose, "verbose", "V", false, "debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newGetCmd())
	root.AddCommand(newSectionsCmd())
	root.AddCommand(newKeysCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newDelCmd())
	root.AddCommand(newDumpCmd())
	root.AddCommand(newExportCmd())
	return root
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of iniq",
		Long:  `All software has versions. This is iniq's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
