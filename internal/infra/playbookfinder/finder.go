package playbookfinder

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/scriptautomation123/fqcnfix/internal/domain"
	"github.com/scriptautomation123/fqcnfix/internal/ports"
)

// Finder discovers *.yml / *.yaml files under a directory tree, skipping
// dot-directories (.git, .fqcnfix, ...). A root that is a plain file is
// returned as-is without extension filtering, so explicit arguments always
// win over discovery rules.
type Finder struct{}

func NewFinder() *Finder {
	return &Finder{}
}

var _ ports.PlaybookFinder = (*Finder)(nil)

func (f *Finder) ListPlaybooks(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		kind := domain.KindIO
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "playbookfinder.list",
			Kind: kind,
			Path: root,
			Err:  err,
		}
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	var paths []string
	walkErr := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if hasYAMLExt(d.Name()) {
			paths = append(paths, p)
		}
		return nil
	})
	if walkErr != nil {
		return nil, &domain.OpError{
			Op:   "playbookfinder.list",
			Kind: domain.KindIO,
			Path: root,
			Err:  walkErr,
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func hasYAMLExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
