// Package lines turns DSL source text into logical commands. Indented lines
// directly following a board command are continuations of it and are joined
// onto it with a single space.
package lines

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Kind is the classification of a logical command.
type Kind int

const (
	Unknown Kind = iota
	Variable
	Board
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Board:
		return "board"
	default:
		return "unknown"
	}
}

// Command is one logical command. Line is the 1-based number of its first
// physical line.
type Command struct {
	Kind Kind
	Text string
	Line int
}

var boardPrefix = regexp.MustCompile(`(?i)^board`)

var lineBreak = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Classify splits text into commands, dropping blank and comment lines.
func Classify(text string) []Command {
	text = lineBreak.Replace(norm.NFC.String(text))

	var cmds []Command
	joinable := false // the last command accepts continuations
	for i, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || isComment(trimmed) {
			joinable = false
			continue
		}

		if joinable && (raw[0] == ' ' || raw[0] == '\t') {
			last := &cmds[len(cmds)-1]
			last.Text += " " + trimmed
			continue
		}

		cmd := Command{Kind: classify(trimmed), Text: trimmed, Line: i + 1}
		cmds = append(cmds, cmd)
		joinable = cmd.Kind == Board
	}
	return cmds
}

// isComment reports whether a trimmed line is a comment.
func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//")
}

func classify(trimmed string) Kind {
	switch {
	case strings.HasPrefix(trimmed, "$"):
		return Variable
	case boardPrefix.MatchString(trimmed):
		return Board
	default:
		return Unknown
	}
}
