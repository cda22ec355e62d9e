package ports

// PlaybookFinder discovers playbook files under a root path.
// A root that is itself a file resolves to just that file.
type PlaybookFinder interface {
	ListPlaybooks(root string) ([]string, error)
}
