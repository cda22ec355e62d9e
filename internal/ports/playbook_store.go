package ports

import "github.com/scriptautomation123/fqcnfix/internal/domain"

// PlaybookStore loads and persists playbook documents wholesale.
type PlaybookStore interface {
	Load(path string) (domain.Playbook, error)
	Save(pb domain.Playbook) error
}
