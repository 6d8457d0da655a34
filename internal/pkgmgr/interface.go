package pkgmgr

// Executor is the narrow capability the update check needs from the
// package manager. Implementations return the command output with one
// trailing newline removed, and a *CommandError when the command exits
// non-zero.
type Executor interface {
	// Version compares the installed version of pkg against the remote
	// repository (exact match)
	Version(pkg string) (string, error)

	// Search looks pkg up in the remote repository, printing only the
	// package identifier
	Search(pkg string) (string, error)
}
