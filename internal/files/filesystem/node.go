package filesystem

import "strings"

// Kind discriminates the two node variants.
type Kind int

const (
	// KindFile is a leaf holding document text.
	KindFile Kind = iota
	// KindDirectory holds an ordered list of children.
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Node is one entry of the virtual filesystem: either a file with content or
// a directory with ordered children. Nodes are immutable once a Tree is built.
type Node struct {
	kind     Kind
	name     string
	content  string
	children []*Node
}

func newDirectory(name string) *Node {
	return &Node{kind: KindDirectory, name: name, children: []*Node{}}
}

func newFile(name, content string) *Node {
	return &Node{kind: KindFile, name: name, content: content}
}

// Kind returns the node variant.
func (n *Node) Kind() Kind { return n.kind }

// Name returns the node's segment name.
func (n *Node) Name() string { return n.name }

// Content returns the file text. Directories have none.
func (n *Node) Content() string { return n.content }

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool { return n.kind == KindDirectory }

// IsMarkdown reports whether the node is a file with a .md name.
func (n *Node) IsMarkdown() bool {
	return n.kind == KindFile && strings.HasSuffix(n.name, ".md")
}

// Children returns a copy of the directory's children in insertion order.
// Files return nil.
func (n *Node) Children() []*Node {
	if n.kind != KindDirectory {
		return nil
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// child finds a direct child by exact name.
func (n *Node) child(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}
