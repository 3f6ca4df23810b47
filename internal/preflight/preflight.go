// Package preflight validates that every source file exists before any
// power or network action runs. Validation is batch, not fail-on-first:
// the error lists every file absent from both search roots.
package preflight

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MissingFileError reports source files absent from both search roots.
type MissingFileError struct {
	Files []string
	Roots []string
}

// Error implements the error interface.
func (e *MissingFileError) Error() string {
	return fmt.Sprintf("source files not found in %s: %s",
		strings.Join(e.Roots, " or "), strings.Join(e.Files, ", "))
}

// Validate checks that every filename resolves to a regular file. The
// first pass checks all names against the current working directory; if
// ANY is missing there, a second all-or-nothing pass checks the WHOLE
// list against dir. The run then reads from a single root — the returned
// one — so copies never mix roots per file.
func Validate(filenames []string, dir string) (string, error) {
	if missing := missingIn(".", filenames); len(missing) == 0 {
		return ".", nil
	}

	missing := missingIn(dir, filenames)
	if len(missing) == 0 {
		return dir, nil
	}

	return "", &MissingFileError{Files: missing, Roots: []string{".", dir}}
}

// missingIn returns the filenames that are not regular files under root.
func missingIn(root string, filenames []string) []string {
	var missing []string
	for _, name := range filenames {
		info, err := os.Stat(filepath.Join(root, name))
		if err != nil || !info.Mode().IsRegular() {
			missing = append(missing, name)
		}
	}
	return missing
}
