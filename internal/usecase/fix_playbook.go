package usecase

import (
	"context"
	"fmt"

	"github.com/scriptautomation123/fqcnfix/internal/domain"
	"github.com/scriptautomation123/fqcnfix/internal/ports"
)

type FixPlaybook struct {
	store    ports.PlaybookStore
	checker  ports.SyntaxChecker
	rewriter *domain.Rewriter
}

type FixOption func(*FixPlaybook)

// WithSyntaxChecker enables YAML verification of the rewritten content;
// a document that no longer parses is reported and not written back.
func WithSyntaxChecker(sc ports.SyntaxChecker) FixOption {
	return func(uc *FixPlaybook) {
		if sc != nil {
			uc.checker = sc
		}
	}
}

func WithRewriter(r *domain.Rewriter) FixOption {
	return func(uc *FixPlaybook) {
		if r != nil {
			uc.rewriter = r
		}
	}
}

func NewFixPlaybook(store ports.PlaybookStore, opts ...FixOption) *FixPlaybook {
	uc := &FixPlaybook{
		store:    store,
		rewriter: domain.NewRewriter(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads one playbook, applies the FQCN rewrite, and writes the result
// back to the same path. Unchanged documents are never rewritten to disk.
func (uc *FixPlaybook) Execute(ctx context.Context, path string) (domain.FixReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.FixReport{}, err
	}

	pb, err := uc.store.Load(path)
	if err != nil {
		return domain.FixReport{}, err
	}

	fixed, changes := uc.rewriter.Apply(pb.Content)

	report := domain.FixReport{
		Path:    path,
		Changed: len(changes) > 0,
		Changes: changes,
	}
	if !report.Changed {
		return report, nil
	}

	if uc.checker != nil {
		if cerr := uc.checker.Check(fixed); cerr != nil {
			return report, fmt.Errorf("refusing to write %q: rewritten content does not parse: %w", path, cerr)
		}
	}

	pb.Content = fixed
	if err := uc.store.Save(pb); err != nil {
		return report, err
	}

	report.Applied = true
	return report, nil
}
