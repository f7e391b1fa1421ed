// Package scanner discovers content documents and converts them into
// filesystem entries for the virtual filesystem.
//
// The scanner is responsible for:
//   - Recursively discovering documents with configured extensions
//   - Skipping hidden files and directories
//   - Returning entries sorted by path, independent of how content is staged
//
// Sources are any fs.FS: the bundled embed.FS, or an afero filesystem
// (local disk in production, MemMapFs in tests).
package scanner
