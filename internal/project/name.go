package project

import (
	"path/filepath"
	"strings"
)

// ValidateName rejects project names that are empty, contain a path separator
// or a ".." segment, or resolve to workDir itself. On success the name is
// returned unchanged and is safe to join onto workDir.
//
// The filesystem is never touched.
func ValidateName(candidate, workDir string) (string, error) {
	if candidate == "" {
		return "", &InvalidNameError{Name: candidate, Reason: "project name is required"}
	}
	if strings.Contains(candidate, "..") || strings.ContainsAny(candidate, `/\`) {
		return "", &InvalidNameError{Name: candidate, Reason: "avoid using '..' or path separators"}
	}

	base := filepath.Clean(workDir)
	if filepath.Join(base, candidate) == base {
		return "", &InvalidNameError{Name: candidate, Reason: "cannot create project in the current directory"}
	}
	return candidate, nil
}
