// Package render implements the collaborator interfaces the shell core uses
// to produce markup: Markdown rendering (termfolio.Renderer) and HTML
// escaping (termfolio.Escaper).
package render
