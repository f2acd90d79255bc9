package command

import "strings"

// ParseResult holds the tokens of a console line.
type ParseResult struct {
	// Name is the first token as typed, or empty for a blank line.
	Name string
	// Argv is every token, Name included. There is no quoting syntax.
	Argv []string
}

// Parse splits a console line on whitespace, discarding empty tokens.
//
// Postcondition: If line is blank, Name is empty and Argv is empty.
func Parse(line string) ParseResult {
	argv := strings.Fields(line)
	if len(argv) == 0 {
		return ParseResult{Argv: []string{}}
	}
	return ParseResult{Name: argv[0], Argv: argv}
}

// Arg returns the i-th argument after the command name.
//
// Postcondition: Returns ("", false) when there is no such argument.
func (p ParseResult) Arg(i int) (string, bool) {
	if i < 0 || i+1 >= len(p.Argv) {
		return "", false
	}
	return p.Argv[i+1], true
}

// HasFlag reports whether flag appears anywhere in Argv.
func (p ParseResult) HasFlag(flag string) bool {
	for _, tok := range p.Argv {
		if tok == flag {
			return true
		}
	}
	return false
}
