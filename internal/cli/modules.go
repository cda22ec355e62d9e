package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scriptautomation123/fqcnfix/internal/domain"
)

func modulesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "modules",
		Short: "Inspect the builtin module catalog",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the module names that receive the ansible.builtin. prefix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, m := range domain.BuiltinModules {
				fmt.Fprintf(cmd.OutOrStdout(), "%-17s %s\n", m, domain.FQCN(m))
			}
			return nil
		},
	}

	c.AddCommand(list)
	return c
}
