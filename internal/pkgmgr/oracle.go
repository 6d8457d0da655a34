package pkgmgr

import (
	"fmt"
	"strings"
)

// Result is the outcome of one update check
type Result struct {
	HasUpdate bool
	// Version is only set when HasUpdate is true
	Version string
}

// ParseVersionOutput reports whether `pkg version --remote` flagged the
// remote as newer. "Up to date" and "not found" are both false.
func ParseVersionOutput(output string) bool {
	return strings.HasSuffix(output, "<")
}

// ParseSearchOutput returns the last '-' separated segment of the search
// output. Package names that contain hyphens are fine, but anything after the
// last hyphen of a multi-line or unusual result is taken as-is.
func ParseSearchOutput(output string) string {
	parts := strings.Split(output, "-")
	return parts[len(parts)-1]
}

// HasUpdate asks the package manager whether pkg has a newer remote version
func HasUpdate(exec Executor, pkg string) (bool, error) {
	out, err := exec.Version(pkg)
	if err != nil {
		return false, err
	}
	return ParseVersionOutput(out), nil
}

// NewVersion returns the remote version string of pkg
func NewVersion(exec Executor, pkg string) (string, error) {
	out, err := exec.Search(pkg)
	if err != nil {
		return "", err
	}
	return ParseSearchOutput(out), nil
}

// Check runs the compare step and, only when it reports an update, the
// version lookup
func Check(exec Executor, pkg string) (Result, error) {
	hasUpdate, err := HasUpdate(exec, pkg)
	if err != nil {
		return Result{}, fmt.Errorf("checking %s: %w", pkg, err)
	}
	if !hasUpdate {
		return Result{}, nil
	}

	version, err := NewVersion(exec, pkg)
	if err != nil {
		return Result{}, fmt.Errorf("looking up %s: %w", pkg, err)
	}
	return Result{HasUpdate: true, Version: version}, nil
}
