package fsplaybook

import (
	"io/fs"
	"os"

	"github.com/scriptautomation123/fqcnfix/internal/domain"
	"github.com/scriptautomation123/fqcnfix/internal/ports"
)

// Store reads and writes playbook files wholesale. Writes overwrite the
// original path directly; there is no backup and no temp-file rename, so a
// crash mid-write can leave a partial file. That is the documented contract
// of the tool, not an oversight.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

var _ ports.PlaybookStore = (*Store)(nil)

func (s *Store) Load(path string) (domain.Playbook, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindIO
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return domain.Playbook{}, &domain.OpError{
			Op:   "fsplaybook.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	return domain.Playbook{Path: path, Content: string(b)}, nil
}

func (s *Store) Save(pb domain.Playbook) error {
	// Keep the file's existing permission bits when it can be stat'ed.
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(pb.Path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(pb.Path, []byte(pb.Content), mode); err != nil {
		return &domain.OpError{
			Op:   "fsplaybook.save",
			Kind: domain.KindIO,
			Path: pb.Path,
			Err:  err,
		}
	}
	return nil
}
