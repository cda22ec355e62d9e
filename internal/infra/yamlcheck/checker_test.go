package yamlcheck

import (
	"testing"

	"github.com/scriptautomation123/fqcnfix/internal/domain"
)

func TestCheck_ValidYAML(t *testing.T) {
	c := NewChecker()
	if err := c.Check("- name: task\n  ansible.builtin.debug:\n    msg: hi\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheck_EmptyDocument(t *testing.T) {
	c := NewChecker()
	if err := c.Check(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheck_InvalidYAML(t *testing.T) {
	c := NewChecker()
	err := c.Check("key: [unclosed\n  bad")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidYAML) {
		t.Errorf("expected invalid_yaml kind, got %v", err)
	}
}
