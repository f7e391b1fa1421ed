package filesystem_test

import (
	"fmt"
	"log"

	"github.com/vvka-141/termfolio/internal/files/filesystem"
)

// Example_resolve shows how relative arguments are normalized against the
// working directory before lookup.
func Example_resolve() {
	cwd := filesystem.Path{"projects"}

	fmt.Println(filesystem.Resolve(cwd, "../about.md"))
	fmt.Println(filesystem.Resolve(cwd, "./alpha/./notes"))
	fmt.Println(filesystem.Resolve(cwd, "../../.."))
	fmt.Println(filesystem.Resolve(cwd, "alpha/~/blog"))

	// Output:
	// ~/about.md
	// ~/projects/alpha/notes
	// ~
	// ~/blog
}

// Example_walk builds a tree and prints every node.
func Example_walk() {
	tree, err := filesystem.Build([]filesystem.Entry{
		{Path: "about.md", Content: "# About"},
		{Path: "projects/termfolio.md", Content: "shell"},
		{Path: "drafts/"},
	})
	if err != nil {
		log.Fatal(err)
	}

	_ = tree.Walk(func(p filesystem.Path, n *filesystem.Node) error {
		fmt.Printf("%s (%s)\n", p, n.Kind())
		return nil
	})

	// Output:
	// ~ (directory)
	// ~/about.md (file)
	// ~/projects (directory)
	// ~/projects/termfolio.md (file)
	// ~/drafts (directory)
}
