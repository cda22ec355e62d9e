package ports

// SyntaxChecker verifies that document content parses as YAML.
type SyntaxChecker interface {
	Check(content string) error
}
