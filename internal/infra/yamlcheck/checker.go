package yamlcheck

import (
	"github.com/scriptautomation123/fqcnfix/internal/domain"
	"github.com/scriptautomation123/fqcnfix/internal/ports"
	"gopkg.in/yaml.v3"
)

// Checker verifies YAML well-formedness. It never inspects the parsed
// structure; the rewrite itself stays a raw text transform.
type Checker struct{}

func NewChecker() *Checker {
	return &Checker{}
}

var _ ports.SyntaxChecker = (*Checker)(nil)

func (c *Checker) Check(content string) error {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(content), &node); err != nil {
		return &domain.OpError{
			Op:   "yamlcheck.check",
			Kind: domain.KindInvalidYAML,
			Err:  err,
		}
	}
	return nil
}
