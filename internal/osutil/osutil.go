// Package osutil wraps the OS calls used to locate waterlog's files so that
// failure paths can be exercised in tests.
package osutil

import "os"

// HomeEnv overrides the application directory when set
const HomeEnv = "WATERLOG_HOME"

// PathProvider abstracts the OS operations needed to resolve and create
// application directories.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
	Getenv(key string) string
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// UserConfigDir returns the default root directory for user-specific configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Getenv returns the value of the environment variable key.
func (DefaultPathProvider) Getenv(key string) string {
	return os.Getenv(key)
}

// Provider is the package-level path provider instance.
// Tests can replace it with SetProvider.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}
