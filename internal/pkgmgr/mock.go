package pkgmgr

// MockExecutor implements Executor for testing.
// Each method can be configured with a custom function to control behavior.
type MockExecutor struct {
	VersionFunc func(pkg string) (string, error)
	SearchFunc  func(pkg string) (string, error)

	VersionCalls int
	SearchCalls  int
}

// NewMockExecutor returns a mock that answers with fixed outputs
func NewMockExecutor(versionOut, searchOut string) *MockExecutor {
	return &MockExecutor{
		VersionFunc: func(string) (string, error) { return versionOut, nil },
		SearchFunc:  func(string) (string, error) { return searchOut, nil },
	}
}

// Version returns the configured compare output
func (m *MockExecutor) Version(pkg string) (string, error) {
	m.VersionCalls++
	if m.VersionFunc != nil {
		return m.VersionFunc(pkg)
	}
	return "", nil
}

// Search returns the configured search output
func (m *MockExecutor) Search(pkg string) (string, error) {
	m.SearchCalls++
	if m.SearchFunc != nil {
		return m.SearchFunc(pkg)
	}
	return "", nil
}

var _ Executor = (*MockExecutor)(nil)
