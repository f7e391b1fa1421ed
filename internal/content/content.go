// Package content bundles the default documents served by the shell.
// They are embedded in the binary so the shell runs without a content
// directory on disk.
package content

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:docs
var docsFS embed.FS

// FS returns the bundled documents rooted at the docs directory.
func FS() (fs.FS, error) {
	sub, err := fs.Sub(docsFS, "docs")
	if err != nil {
		return nil, fmt.Errorf("failed to open bundled docs: %w", err)
	}
	return sub, nil
}
