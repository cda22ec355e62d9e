package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/scriptautomation123/fqcnfix/internal/domain"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
)

func printReports(w io.Writer, reports []domain.FixReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"files":   reports,
			"changed": countChanged(reports),
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyReports(w, reports)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReports(w io.Writer, reports []domain.FixReport) {
	for _, r := range reports {
		switch {
		case r.Applied:
			fmt.Fprintf(w, "%s fixed FQCN issues in %s (%d line(s))\n", okMark, r.Path, len(r.Changes))
		case r.Changed:
			fmt.Fprintf(w, "%s %s needs %d fix(es)\n", failMark, r.Path, len(r.Changes))
		default:
			fmt.Fprintf(w, "%s %s unchanged\n", okMark, r.Path)
		}

		for _, c := range r.Changes {
			fmt.Fprintf(w, "    line %d: %s\n", c.Line, c.After)
		}

		if counts := r.ModuleCounts(); len(counts) > 0 {
			names := make([]string, 0, len(counts))
			for name := range counts {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintf(w, "    modules:")
			for _, name := range names {
				fmt.Fprintf(w, " %s=%d", name, counts[name])
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintf(w, "%d file(s) scanned, %d changed\n", len(reports), countChanged(reports))
}

func countChanged(reports []domain.FixReport) int {
	n := 0
	for _, r := range reports {
		if r.Changed {
			n++
		}
	}
	return n
}
