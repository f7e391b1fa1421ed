// Package commands implements the shell's command registry, dispatcher,
// built-in command set and tab-completion rules.
//
// A Registry is an immutable name → Handler mapping built once at startup
// and passed by reference. Handlers see the session only through Context and
// report failures as emitted markup plus Result{Success: false}; no command
// error is fatal.
//
// # Usage
//
//	registry := commands.New(tree, commands.WithHost("example"))
//	result := registry.Dispatch("cat about.md", ctx)
//	candidates := registry.Complete("cat ab", ctx.CurrentPath())
package commands
