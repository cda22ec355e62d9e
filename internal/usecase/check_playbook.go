package usecase

import (
	"context"

	"github.com/scriptautomation123/fqcnfix/internal/domain"
	"github.com/scriptautomation123/fqcnfix/internal/ports"
)

// CheckPlaybook is the dry-run twin of FixPlaybook: it reports the changes a
// fix would make without writing anything.
type CheckPlaybook struct {
	store    ports.PlaybookStore
	rewriter *domain.Rewriter
}

type CheckOption func(*CheckPlaybook)

func WithCheckRewriter(r *domain.Rewriter) CheckOption {
	return func(uc *CheckPlaybook) {
		if r != nil {
			uc.rewriter = r
		}
	}
}

func NewCheckPlaybook(store ports.PlaybookStore, opts ...CheckOption) *CheckPlaybook {
	uc := &CheckPlaybook{
		store:    store,
		rewriter: domain.NewRewriter(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *CheckPlaybook) Execute(ctx context.Context, path string) (domain.FixReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.FixReport{}, err
	}

	pb, err := uc.store.Load(path)
	if err != nil {
		return domain.FixReport{}, err
	}

	_, changes := uc.rewriter.Apply(pb.Content)

	return domain.FixReport{
		Path:    path,
		Changed: len(changes) > 0,
		Changes: changes,
	}, nil
}
