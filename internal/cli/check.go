package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scriptautomation123/fqcnfix/internal/domain"
	"github.com/scriptautomation123/fqcnfix/internal/infra/fsplaybook"
	"github.com/scriptautomation123/fqcnfix/internal/infra/logger"
	"github.com/scriptautomation123/fqcnfix/internal/infra/playbookfinder"
	"github.com/scriptautomation123/fqcnfix/internal/usecase"
)

func checkCmd(debug *bool) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "check <path...>",
		Short: "Report playbooks that need ansible.builtin. prefixes (no writes)",
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
			log.Info("check.start", "targets", args)

			checker := usecase.NewCheckPlaybook(fsplaybook.NewStore())
			tree := usecase.NewFixTree(playbookfinder.NewFinder(), checker)

			var reports []domain.FixReport
			for _, target := range args {
				tr, err := tree.Execute(cmd.Context(), target)
				reports = append(reports, tr.Reports...)
				if err != nil {
					_ = printReports(os.Stdout, reports, format)
					log.Error("check.failed", "target", target, "error", err)
					return err
				}
			}

			if err := printReports(os.Stdout, reports, format); err != nil {
				return err
			}

			pending := countChanged(reports)
			log.Info("check.done", "files", len(reports), "pending", pending)
			if pending > 0 {
				return fmt.Errorf("%d file(s) need FQCN fixes", pending)
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
