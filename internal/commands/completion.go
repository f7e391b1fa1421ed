package commands

import (
	"regexp"
	"strings"

	"github.com/vvka-141/termfolio/internal/files/filesystem"
)

// PathCommands take a filesystem path as their argument and complete entry
// names of the current directory.
var PathCommands = []string{"cat", "cd", "ls"}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Tokenize splits a buffer on whitespace runs, keeping empty leading and
// trailing tokens: "cat " → ["cat", ""], "" → [""].
func Tokenize(buffer string) []string {
	return whitespaceRun.Split(buffer, -1)
}

// Complete returns the completion candidates for buffer.
//
// With one token, candidates are command names with that prefix. With more
// tokens and a path command first, candidates are entries of the current
// directory (not the argument's directory) whose names start with the last
// token; directories carry a trailing "/". Matching is case-insensitive and
// results keep registration or listing order.
func (r *Registry) Complete(buffer string, current filesystem.Path) []string {
	tokens := Tokenize(buffer)

	if len(tokens) == 1 {
		partial := strings.ToLower(tokens[0])
		var matches []string
		for _, name := range r.names {
			if strings.HasPrefix(name, partial) {
				matches = append(matches, name)
			}
		}
		return matches
	}

	if !isPathCommand(tokens[0]) || r.opts.tree == nil {
		return nil
	}

	children, err := r.opts.tree.List(current)
	if err != nil {
		return nil
	}

	partial := strings.ToLower(tokens[len(tokens)-1])
	var matches []string
	for _, child := range children {
		name := child.Name()
		if child.IsDir() {
			name += "/"
		}
		if strings.HasPrefix(strings.ToLower(name), partial) {
			matches = append(matches, name)
		}
	}
	return matches
}

func isPathCommand(token string) bool {
	token = strings.ToLower(token)
	for _, c := range PathCommands {
		if c == token {
			return true
		}
	}
	return false
}
