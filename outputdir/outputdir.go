package outputdir

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bitrise-io/go-utils/v2/pathutil"
)

var (
	// ErrNotFound is returned when the directory does not exist.
	ErrNotFound = errors.New("directory doesn't exist")
	// ErrNotDirectory is returned when the path exists but is a file.
	ErrNotDirectory = errors.New("path is not a directory")
)

// Resolver turns the directory input into the absolute path of an existing directory.
type Resolver interface {
	Resolve(string) (string, error)
}

type resolver struct {
	pathModifier pathutil.PathModifier
	pathChecker  pathutil.PathChecker
}

// NewResolver returns a Resolver. Relative paths are resolved against the working directory
// and a leading ~ is expanded.
func NewResolver(modifier pathutil.PathModifier, checker pathutil.PathChecker) Resolver {
	return resolver{
		pathModifier: modifier,
		pathChecker:  checker,
	}
}

func (r resolver) Resolve(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", errors.New("output directory is not set")
	}

	pth, err := r.pathModifier.AbsPath(dir)
	if err != nil {
		return "", fmt.Errorf("failed to expand path (%s): %w", dir, err)
	}

	isDir, err := r.pathChecker.IsDirExists(pth)
	if err != nil {
		return "", fmt.Errorf("failed to check if path (%s) is a directory: %w", pth, err)
	}
	if isDir {
		return pth, nil
	}

	exists, err := r.pathChecker.IsPathExists(pth)
	if err != nil {
		return "", fmt.Errorf("failed to check if path (%s) exists: %w", pth, err)
	}
	if exists {
		return "", fmt.Errorf("%s: %w", pth, ErrNotDirectory)
	}

	return "", fmt.Errorf("%s: %w", pth, ErrNotFound)
}
