package filesystem

import "strings"

// Path is a normalized, root-relative sequence of segments.
// The empty path denotes the root. A Path produced by Resolve never contains
// ".", "..", "~" or empty segments.
type Path []string

// Resolve turns the current location plus a user-supplied path into an
// absolute Path. Resolution is purely syntactic and never fails.
//
//	Resolve(["docs"], "../about.md") → ["about.md"]
//	Resolve(["docs"], "~/projects")  → ["projects"]
//	Resolve([], "..")                → []
//
// A "~" segment anywhere resets to the root and processing continues with the
// remaining segments.
func Resolve(current Path, input string) Path {
	resolved := make(Path, len(current))
	copy(resolved, current)

	for _, segment := range strings.Split(input, "/") {
		switch segment {
		case "", ".":
		case "~":
			resolved = resolved[:0]
		case "..":
			if len(resolved) > 0 {
				resolved = resolved[:len(resolved)-1]
			}
		default:
			resolved = append(resolved, segment)
		}
	}

	return resolved
}

// ParsePath resolves input relative to the root.
func ParsePath(input string) Path {
	return Resolve(nil, input)
}

// IsRoot reports whether p denotes the root directory.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Join returns a new path with name appended.
func (p Path) Join(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, name)
}

// Equal reports whether two paths name the same location.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the path the way the prompt shows it: "~" for the root,
// "~/seg1/seg2" otherwise.
func (p Path) String() string {
	if len(p) == 0 {
		return "~"
	}
	return "~/" + strings.Join(p, "/")
}
