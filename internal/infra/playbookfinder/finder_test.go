package playbookfinder

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/scriptautomation123/fqcnfix/internal/domain"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestListPlaybooks_Recursive(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "site.yml"))
	writeFile(t, filepath.Join(tmp, "roles", "web", "tasks", "main.yaml"))
	writeFile(t, filepath.Join(tmp, "README.md"))
	writeFile(t, filepath.Join(tmp, ".git", "config.yml"))

	got, err := NewFinder().ListPlaybooks(tmp)
	if err != nil {
		t.Fatalf("ListPlaybooks error: %v", err)
	}

	want := []string{
		filepath.Join(tmp, "roles", "web", "tasks", "main.yaml"),
		filepath.Join(tmp, "site.yml"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestListPlaybooks_SingleFilePassthrough(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "playbook.txt")
	writeFile(t, p)

	got, err := NewFinder().ListPlaybooks(p)
	if err != nil {
		t.Fatalf("ListPlaybooks error: %v", err)
	}
	if len(got) != 1 || got[0] != p {
		t.Errorf("expected [%s], got %v", p, got)
	}
}

func TestListPlaybooks_MissingRoot(t *testing.T) {
	tmp := t.TempDir()
	_, err := NewFinder().ListPlaybooks(filepath.Join(tmp, "absent"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Errorf("expected not_found kind, got %v", err)
	}
}

func TestHasYAMLExt(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"site.yaml", true},
		{"site.yml", true},
		{"SITE.YML", true},
		{"site.json", false},
		{"site", false},
	}
	for _, c := range cases {
		if got := hasYAMLExt(c.input); got != c.want {
			t.Errorf("hasYAMLExt(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}
