package usecase

import (
	"context"
	"testing"

	"github.com/scriptautomation123/fqcnfix/internal/domain"
)

type memFinder struct {
	paths []string
	err   error
}

func (m *memFinder) ListPlaybooks(string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.paths, nil
}

func TestFixTree_ProcessesAllPlaybooks(t *testing.T) {
	store := newMemStore(map[string]string{
		"a.yml": "  debug:\n",
		"b.yml": "  tasks: []\n",
	})
	finder := &memFinder{paths: []string{"a.yml", "b.yml"}}
	uc := NewFixTree(finder, NewFixPlaybook(store))

	tree, err := uc.Execute(context.Background(), ".")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(tree.Reports) != 2 {
		t.Fatalf("expected 2 reports, got %+v", tree.Reports)
	}
	if tree.ChangedCount() != 1 {
		t.Errorf("expected 1 changed file, got %d", tree.ChangedCount())
	}
	if _, ok := store.saved["a.yml"]; !ok {
		t.Errorf("expected a.yml to be saved")
	}
	if _, ok := store.saved["b.yml"]; ok {
		t.Errorf("expected b.yml untouched")
	}
}

func TestFixTree_FinderErrorPropagates(t *testing.T) {
	finder := &memFinder{err: &domain.OpError{Op: "memfinder.list", Kind: domain.KindNotFound, Err: domain.ErrNotFound}}
	uc := NewFixTree(finder, NewFixPlaybook(newMemStore(nil)))

	_, err := uc.Execute(context.Background(), "absent")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got %v", err)
	}
}

func TestFixTree_StopsOnFirstErrorKeepingEarlierReports(t *testing.T) {
	store := newMemStore(map[string]string{
		"a.yml": "  debug:\n",
		// b.yml missing: Load fails
	})
	finder := &memFinder{paths: []string{"a.yml", "b.yml", "c.yml"}}
	uc := NewFixTree(finder, NewFixPlaybook(store))

	tree, err := uc.Execute(context.Background(), ".")
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(tree.Reports) != 1 || tree.Reports[0].Path != "a.yml" {
		t.Fatalf("expected the a.yml report to survive, got %+v", tree.Reports)
	}
}

func TestFixTree_DryRunViaCheckPlaybook(t *testing.T) {
	store := newMemStore(map[string]string{"a.yml": "  copy:\n"})
	finder := &memFinder{paths: []string{"a.yml"}}
	uc := NewFixTree(finder, NewCheckPlaybook(store))

	tree, err := uc.Execute(context.Background(), ".")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if tree.ChangedCount() != 1 {
		t.Fatalf("expected 1 pending file, got %d", tree.ChangedCount())
	}
	if len(store.saved) != 0 {
		t.Errorf("dry run must never save, got %v", store.saved)
	}
}
