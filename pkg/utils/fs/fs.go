package fs

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// DefaultResultsDirectory is where figures and logs land unless configured otherwise.
	DefaultResultsDirectory = "./Results"
	dirPermissions          = 0777
)

// GetResultsPath returns path of name inside the results directory.
// Empty directory means DefaultResultsDirectory.
func GetResultsPath(directory, name string) string {
	if directory == "" {
		directory = DefaultResultsDirectory
	}
	return filepath.Join(directory, name)
}

// CreateResultsDir makes sure the results directory exists and returns its path.
func CreateResultsDir(directory string) (string, error) {
	if directory == "" {
		directory = DefaultResultsDirectory
	}
	err := os.MkdirAll(directory, dirPermissions)
	if err != nil {
		return "", errors.Wrapf(err, "could not create results directory %q", directory)
	}
	return directory, nil
}
