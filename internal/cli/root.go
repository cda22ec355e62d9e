package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "fqcnfix",
		Short:        "fqcnfix — prefix Ansible builtin module keys with ansible.builtin.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .fqcnfix/logs/fqcnfix.log")

	cmd.AddCommand(
		fixCmd(&debug),
		checkCmd(&debug),
		modulesCmd(),
		versionCmd(),
	)
	return cmd
}

// logRoot picks the directory that holds the .fqcnfix log dir for a run:
// the first target itself when it is a directory, its parent otherwise.
func logRoot(target string) string {
	abs, err := filepath.Abs(target)
	if err != nil {
		return "."
	}
	if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
		return abs
	}
	return filepath.Dir(abs)
}
