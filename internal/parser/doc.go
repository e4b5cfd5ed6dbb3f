// Package parser turns board DSL text into boards.
//
// A parse is one Session: a single forward pass over the logical commands
// produced by package lines. Variable lines extend the session's variables,
// board lines are assembled into boards and registered by id so that later
// lines can reference them. A variable or board must be defined before it is
// used; there is no second pass.
//
// Failures never cross line boundaries. Each failing line contributes one
// message of the form
//
//	Line <n> (<name>): <detail>
//
// and parsing continues with the next line, so the result always carries
// every board that could be built alongside every error.
//
// A Session holds all mutable state of a parse and is used exactly once.
// Parse creates a fresh one per call, which makes parsing a pure function of
// the input text and options.
package parser
