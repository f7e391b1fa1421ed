// Package files groups the packages that turn documents into the shell's
// virtual filesystem:
//   - filesystem: the immutable Tree, its Node type and the Path resolver
//   - scanner: document discovery over fs.FS or afero, producing ordered entries
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/termfolio/internal/files/filesystem"
//	    "github.com/vvka-141/termfolio/internal/files/scanner"
//	)
//
//	tree, err := scanner.NewOSScanner("./docs", scanner.DefaultExtensions).Load()
//	if err != nil {
//	    return err
//	}
//	node, ok := tree.Lookup(filesystem.Resolve(nil, "projects/termfolio.md"))
package files
