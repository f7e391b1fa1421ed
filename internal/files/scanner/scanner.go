package scanner

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/vvka-141/termfolio/internal/files/filesystem"
	"github.com/vvka-141/termfolio/pkg/termfolio"
)

// DefaultExtensions lists the document types loaded when none are configured.
var DefaultExtensions = []string{termfolio.MarkdownExt}

// Scanner discovers content documents in a directory tree and turns them into
// filesystem entries. Hidden files and directories (leading ".") are skipped.
// Scanner is safe for concurrent use as long as the underlying fs.FS is.
type Scanner struct {
	fsys       fs.FS
	extensions []string
}

// NewScanner creates a scanner over fsys.
// An empty extensions list falls back to DefaultExtensions.
// Panics if fsys is nil.
func NewScanner(fsys fs.FS, extensions []string) *Scanner {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}

	return &Scanner{
		fsys:       fsys,
		extensions: normalized,
	}
}

// NewScannerWithAfero wraps an afero filesystem rooted at dir.
// Production passes afero.NewOsFs(); tests pass afero.NewMemMapFs().
func NewScannerWithAfero(base afero.Fs, dir string, extensions []string) *Scanner {
	if dir != "" && dir != "." {
		base = afero.NewBasePathFs(base, dir)
	}
	return NewScanner(afero.NewIOFS(base), extensions)
}

// NewOSScanner scans a directory on the local disk.
func NewOSScanner(dir string, extensions []string) *Scanner {
	return NewScannerWithAfero(afero.NewOsFs(), dir, extensions)
}

// Scan walks the whole tree and returns one entry per matching document,
// sorted by path so the resulting filesystem is reproducible.
func (s *Scanner) Scan() ([]filesystem.Entry, error) {
	var entries []filesystem.Entry

	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path %s: %w", p, err)
		}

		if p != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() || !s.matches(d.Name()) {
			return nil
		}

		content, err := fs.ReadFile(s.fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", p, err)
		}

		entries = append(entries, filesystem.Entry{
			Path:    p,
			Content: string(content),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", termfolio.ErrContentLoad, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return entries, nil
}

// Load scans and builds the virtual filesystem in one step.
func (s *Scanner) Load() (*filesystem.Tree, error) {
	entries, err := s.Scan()
	if err != nil {
		return nil, err
	}
	return filesystem.Build(entries)
}

func (s *Scanner) matches(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, want := range s.extensions {
		if ext == want {
			return true
		}
	}
	return false
}
