package domain

import (
	"regexp"
	"strings"
)

// Rewriter prefixes bare builtin module keys with ansible.builtin.
//
// Each catalog module compiles to one rule: `(?m)^(\s+)<module>:(\s*)`.
// The anchor is deliberately loose text matching, not YAML: any mapping key
// that happens to share a builtin name gets rewritten too. Notable
// consequences of the anchor, all preserved on purpose:
//
//   - a key behind a sequence dash (`  - command:`) never matches, since only
//     whitespace may sit between line start and the module name;
//   - a column-0 key matches only when the previous line is blank, because
//     the leading `\s+` may consume that blank line's newline;
//   - an already-prefixed key never re-matches (the prefix text is not
//     whitespace), so applying the rewrite twice is a no-op.
//
// This lives in domain because it does not depend on YAML/FS/CLI. Only stdlib.
type Rewriter struct {
	rules []rule
}

type rule struct {
	module string
	re     *regexp.Regexp
	repl   string
}

// RewriterOption configures Rewriter.
type RewriterOption func(*Rewriter)

// WithModules overrides the module catalog (useful for tests).
func WithModules(modules []string) RewriterOption {
	return func(r *Rewriter) { r.setModules(modules) }
}

func NewRewriter(opts ...RewriterOption) *Rewriter {
	r := &Rewriter{}
	r.setModules(BuiltinModules)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Rewriter) setModules(modules []string) {
	rules := make([]rule, 0, len(modules))
	for _, m := range modules {
		rules = append(rules, rule{
			module: m,
			re:     regexp.MustCompile(`(?m)^(\s+)` + regexp.QuoteMeta(m) + `:(\s*)`),
			repl:   "${1}" + FQCNPrefix + m + ":${2}",
		})
	}
	r.rules = rules
}

// Apply runs every rule as an independent full-document pass, in catalog
// order, and returns the rewritten content plus the per-line changes.
// Non-matching lines come through byte-for-byte.
func (r *Rewriter) Apply(content string) (string, []LineChange) {
	out := content
	for _, rl := range r.rules {
		out = rl.re.ReplaceAllString(out, rl.repl)
	}
	return out, diffLines(content, out)
}

// diffLines pairs up before/after lines. Substitutions preserve every byte of
// whitespace they capture, so the line counts always agree.
func diffLines(before, after string) []LineChange {
	bl := strings.Split(before, "\n")
	al := strings.Split(after, "\n")

	var changes []LineChange
	for i := range bl {
		if i >= len(al) || bl[i] == al[i] {
			continue
		}
		changes = append(changes, LineChange{
			Line:   i + 1,
			Module: moduleOf(al[i]),
			Before: bl[i],
			After:  al[i],
		})
	}
	return changes
}

func moduleOf(line string) string {
	rest, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), FQCNPrefix)
	if !ok {
		return ""
	}
	if idx := strings.IndexByte(rest, ':'); idx >= 0 {
		return rest[:idx]
	}
	return ""
}
