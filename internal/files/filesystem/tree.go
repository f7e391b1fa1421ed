package filesystem

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vvka-141/termfolio/pkg/termfolio"
)

// Entry is one (relative path, raw text) input pair for Build.
// A Path ending in "/" declares a directory without adding a file.
type Entry struct {
	Path    string
	Content string
}

// Tree is an immutable virtual filesystem rooted at a directory named "~".
// Safe for concurrent reads by multiple goroutines.
type Tree struct {
	root  *Node
	files int
}

// Build constructs a Tree from entries in slice order. Siblings keep the order
// in which they were first created, so the same slice always yields the same
// tree.
func Build(entries []Entry) (*Tree, error) {
	t := &Tree{root: newDirectory(termfolio.RootName)}

	for _, entry := range entries {
		if err := t.add(entry); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// BuildFromMap sorts the map keys before building so results never depend on
// map iteration order.
func BuildFromMap(entries map[string]string) (*Tree, error) {
	paths := make([]string, 0, len(entries))
	for p := range entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	list := make([]Entry, 0, len(paths))
	for _, p := range paths {
		list = append(list, Entry{Path: p, Content: entries[p]})
	}
	return Build(list)
}

func (t *Tree) add(entry Entry) error {
	segments := splitSegments(entry.Path)
	if len(segments) == 0 {
		return fmt.Errorf("%w: %q has no path segments", termfolio.ErrConflict, entry.Path)
	}

	dirOnly := strings.HasSuffix(entry.Path, "/")
	parents := segments
	if !dirOnly {
		parents = segments[:len(segments)-1]
	}

	current := t.root
	for _, name := range parents {
		next := current.child(name)
		switch {
		case next == nil:
			next = newDirectory(name)
			current.children = append(current.children, next)
		case !next.IsDir():
			return fmt.Errorf("%w: %q needs %q to be a directory", termfolio.ErrConflict, entry.Path, name)
		}
		current = next
	}

	if dirOnly {
		return nil
	}

	name := segments[len(segments)-1]
	if existing := current.child(name); existing != nil {
		return fmt.Errorf("%w: %q already exists as a %s", termfolio.ErrConflict, entry.Path, existing.Kind())
	}
	current.children = append(current.children, newFile(name, entry.Content))
	t.files++
	return nil
}

func splitSegments(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Root returns the root directory.
func (t *Tree) Root() *Node { return t.root }

// FileCount returns the number of file nodes in the tree.
func (t *Tree) FileCount() int { return t.files }

// Lookup walks the tree one segment at a time. It reports false as soon as a
// segment is missing or an intermediate node is a file.
func (t *Tree) Lookup(p Path) (*Node, bool) {
	current := t.root
	for _, segment := range p {
		if !current.IsDir() {
			return nil, false
		}
		current = current.child(segment)
		if current == nil {
			return nil, false
		}
	}
	return current, true
}

// List returns the children of the directory at p.
// It returns termfolio.ErrNotFound when nothing resolves and
// termfolio.ErrNotADirectory when p names a file. An empty directory yields
// an empty, non-nil slice.
func (t *Tree) List(p Path) ([]*Node, error) {
	node, ok := t.Lookup(p)
	if !ok {
		return nil, termfolio.ErrNotFound
	}
	if !node.IsDir() {
		return nil, termfolio.ErrNotADirectory
	}
	return node.Children(), nil
}

// Walk visits every node depth-first in pre-order, starting with the root at
// the empty path. Returning an error from fn stops the walk.
func (t *Tree) Walk(fn func(Path, *Node) error) error {
	return walk(Path{}, t.root, fn)
}

func walk(p Path, n *Node, fn func(Path, *Node) error) error {
	if err := fn(p, n); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := walk(p.Join(c.name), c, fn); err != nil {
			return err
		}
	}
	return nil
}
