// Package session implements the line editor that sits between key events
// and the command registry.
//
// An Editor owns one State: the working directory, the append-only history,
// the history navigation cursor and the in-progress input buffer. Every
// exported method performs one complete transition and returns; nothing is
// asynchronous. Output goes exclusively to a termfolio.Sink.
//
// An Editor is not safe for concurrent use.
package session
