// Package diag defines the diagnostics reported by the Nightcode frontend.
//
// A diagnostic is an [*Error]: a [Kind], a short message and the source
// location of the token that caused it. Errors flow to the top-level caller as
// plain Go errors; recover the record with errors.As.
package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/metaphox/nightcode/ast"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// SyntaxError reports a token the lexer could not classify.
	SyntaxError Kind = iota
	// ParserError reports a lexically valid token stream that does not fit
	// the grammar, or a literal outside its numeric range.
	ParserError
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case ParserError:
		return "ParserError"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Label returns the kind with its words separated, e.g. "Syntax Error".
func (k Kind) Label() string {
	name := k.String()
	if i := strings.Index(name, "Error"); i > 0 {
		return name[:i] + " " + name[i:]
	}
	return name
}

// Error is a single frontend diagnostic.
type Error struct {
	Kind     Kind
	Message  string
	Location ast.Location
}

// New returns a diagnostic of the given kind.
func New(kind Kind, message string, loc ast.Location) *Error {
	return &Error{Kind: kind, Message: message, Location: loc}
}

// Syntax returns a SyntaxError diagnostic.
func Syntax(message string, loc ast.Location) *Error {
	return New(SyntaxError, message, loc)
}

// Parser returns a ParserError diagnostic.
func Parser(message string, loc ast.Location) *Error {
	return New(ParserError, message, loc)
}

// Error renders the diagnostic as one line:
//
//	Syntax Error: found undefined token (at line: 1, ch: 1)
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Kind.Label(), e.Message, e.Location)
}

// Render writes the one-line form of e followed by a newline.
func (e *Error) Render(w io.Writer) error {
	_, err := fmt.Fprintln(w, e.Error())
	return err
}

// stdout and exit are replaced in tests.
var (
	stdout io.Writer = os.Stdout
	exit             = os.Exit
)

// Throw renders e to standard output, next to the rest of the run's output,
// and terminates the process with status 1.
func (e *Error) Throw() {
	_ = e.Render(stdout)
	exit(1)
}
