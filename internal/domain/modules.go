package domain

// FQCNPrefix is the collection namespace prepended to bare builtin module keys.
const FQCNPrefix = "ansible.builtin."

// BuiltinModules lists the Ansible builtin modules that historically could be
// used without a namespace and therefore need the ansible.builtin. prefix.
// Rewrite passes run in this order.
var BuiltinModules = []string{
	"assert", "command", "copy", "debug", "fail", "file", "get_url",
	"group", "include_tasks", "include_vars", "lineinfile", "meta",
	"pause", "raw", "script", "service", "set_fact", "setup",
	"shell", "slurp", "stat", "template", "unarchive", "uri",
	"user", "wait_for", "yum", "apt", "package", "systemd",
	"blockinfile", "replace", "import_tasks", "import_playbook",
}

// FQCN returns the fully qualified collection name for a builtin module.
func FQCN(module string) string {
	return FQCNPrefix + module
}

// IsBuiltinModule reports whether name is in the builtin catalog.
func IsBuiltinModule(name string) bool {
	for _, m := range BuiltinModules {
		if m == name {
			return true
		}
	}
	return false
}
