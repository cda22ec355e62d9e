package domain

// Playbook is a playbook document held wholesale in memory. The content is
// opaque text: fqcnfix never interprets it as structured YAML when rewriting.
type Playbook struct {
	Path    string
	Content string
}

// LineChange records one rewritten line.
type LineChange struct {
	Line   int    `json:"line"`
	Module string `json:"module,omitempty"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// FixReport is the outcome of fixing (or dry-run checking) one playbook.
type FixReport struct {
	Path    string       `json:"path"`
	Changed bool         `json:"changed"`
	Applied bool         `json:"applied"`
	Changes []LineChange `json:"changes,omitempty"`
}

// ModuleCounts aggregates changes per module name.
func (r FixReport) ModuleCounts() map[string]int {
	out := map[string]int{}
	for _, c := range r.Changes {
		if c.Module != "" {
			out[c.Module]++
		}
	}
	return out
}

// TreeReport aggregates per-file reports for one fix/check invocation root.
type TreeReport struct {
	Root    string      `json:"root"`
	Reports []FixReport `json:"reports"`
}

// ChangedCount returns how many files had (or need) changes.
func (t TreeReport) ChangedCount() int {
	n := 0
	for _, r := range t.Reports {
		if r.Changed {
			n++
		}
	}
	return n
}
