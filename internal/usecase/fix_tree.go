package usecase

import (
	"context"

	"github.com/scriptautomation123/fqcnfix/internal/domain"
	"github.com/scriptautomation123/fqcnfix/internal/ports"
)

// playbookFixer is satisfied by both FixPlaybook and CheckPlaybook, so a tree
// walk can run either in-place fixing or dry-run checking.
type playbookFixer interface {
	Execute(ctx context.Context, path string) (domain.FixReport, error)
}

type FixTree struct {
	finder ports.PlaybookFinder
	fixer  playbookFixer
}

func NewFixTree(finder ports.PlaybookFinder, fixer playbookFixer) *FixTree {
	return &FixTree{
		finder: finder,
		fixer:  fixer,
	}
}

// Execute discovers playbooks under root and processes each in discovery
// order. The first error aborts the walk; reports already produced are kept
// so the caller can still print what happened before the failure.
func (uc *FixTree) Execute(ctx context.Context, root string) (domain.TreeReport, error) {
	tree := domain.TreeReport{Root: root}

	paths, err := uc.finder.ListPlaybooks(root)
	if err != nil {
		return tree, err
	}

	tree.Reports = make([]domain.FixReport, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return tree, err
		}

		rep, err := uc.fixer.Execute(ctx, p)
		if err != nil {
			return tree, err
		}
		tree.Reports = append(tree.Reports, rep)
	}

	return tree, nil
}
