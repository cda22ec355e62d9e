package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scriptautomation123/fqcnfix/internal/domain"
	"github.com/scriptautomation123/fqcnfix/internal/infra/fsplaybook"
	"github.com/scriptautomation123/fqcnfix/internal/infra/logger"
	"github.com/scriptautomation123/fqcnfix/internal/infra/playbookfinder"
	"github.com/scriptautomation123/fqcnfix/internal/infra/yamlcheck"
	"github.com/scriptautomation123/fqcnfix/internal/usecase"
)

func fixCmd(debug *bool) *cobra.Command {
	var verify bool
	var format string

	c := &cobra.Command{
		Use:   "fix <path...>",
		Short: "Rewrite playbook files in place, adding ansible.builtin. prefixes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot(args[0]),
				Debug: *debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}
			log := logger.L()
			log.Info("fix.start", "targets", args, "verify", verify)

			opts := []usecase.FixOption{}
			if verify {
				opts = append(opts, usecase.WithSyntaxChecker(yamlcheck.NewChecker()))
			}
			fixer := usecase.NewFixPlaybook(fsplaybook.NewStore(), opts...)
			tree := usecase.NewFixTree(playbookfinder.NewFinder(), fixer)

			var reports []domain.FixReport
			for _, target := range args {
				tr, err := tree.Execute(cmd.Context(), target)
				reports = append(reports, tr.Reports...)
				if err != nil {
					// Print what did get processed before failing.
					_ = printReports(os.Stdout, reports, format)
					log.Error("fix.failed", "target", target, "error", err)
					return err
				}
			}

			log.Info("fix.done", "files", len(reports), "changed", countChanged(reports))
			return printReports(os.Stdout, reports, format)
		},
	}

	c.Flags().BoolVar(&verify, "verify", false, "Verify rewritten content still parses as YAML before writing")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
