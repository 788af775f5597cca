// Package ast defines the token types and the syntax tree shared by the
// Nightcode lexer and parser.
//
// Tokens are the smallest meaningful units of a Nightcode source file. Every
// token carries its kind, the exact text it was scanned from, and its source
// location. Locations are 1-based: the first character of a file is line 1,
// ch 1.
package ast

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/trees/redblacktree"
)

// TokenKind identifies the category of a scanned token.
type TokenKind int

const (
	// ── Literals ───────────────────────────────────────────────────────────────

	// LiteralInteger is a run of decimal digits, e.g. 0, 42.
	LiteralInteger TokenKind = iota
	// LiteralFloat is a number containing a '.', e.g. 3.14, .5.
	LiteralFloat

	// ── Operators ──────────────────────────────────────────────────────────────

	PunOperatorPlus
	PunOperatorMinus
	PunOperatorMultiply
	PunOperatorDivide

	// ── Delimiters ─────────────────────────────────────────────────────────────

	PunParenOpen
	PunParenClose
	Semicolon

	// ── Special ────────────────────────────────────────────────────────────────

	// EOF is the sentinel that terminates every token stream.
	EOF
	// Undefined is the scanner's initial state. A token that leaves the lexer
	// with this kind holds characters the lexer could not classify.
	Undefined
	// UndefinedPunctuation marks a punctuation run that is still being
	// accumulated, or one that matched nothing in the punctuation alphabet.
	UndefinedPunctuation
)

var kindNames = [...]string{
	LiteralInteger:       "LiteralInteger",
	LiteralFloat:         "LiteralFloat",
	PunOperatorPlus:      "PunOperatorPlus",
	PunOperatorMinus:     "PunOperatorMinus",
	PunOperatorMultiply:  "PunOperatorMultiply",
	PunOperatorDivide:    "PunOperatorDivide",
	PunParenOpen:         "PunParenOpen",
	PunParenClose:        "PunParenClose",
	Semicolon:            "Semicolon",
	EOF:                  "EOF",
	Undefined:            "Undefined",
	UndefinedPunctuation: "UndefinedPunctuation",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsUndefined reports whether k is one of the scanner-internal kinds that
// must never reach a parser as valid input.
func (k TokenKind) IsUndefined() bool {
	return k == Undefined || k == UndefinedPunctuation
}

// IsLiteral reports whether k is a numeric literal kind.
func (k TokenKind) IsLiteral() bool {
	return k == LiteralInteger || k == LiteralFloat
}

// Location is a 1-based line and column pair.
type Location struct {
	Line uint32
	Ch   uint32
}

func (l Location) String() string {
	return fmt.Sprintf("(at line: %d, ch: %d)", l.Line, l.Ch)
}

// Before reports whether l comes strictly before other in (line, ch) order.
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Ch < other.Ch
}

// Token is a single lexical unit produced by the lexer.
//
// Value is the exact source text of the lexeme; for EOF it is the "\x00"
// sentinel appended by the lexer. Location points at the first character.
type Token struct {
	Kind     TokenKind
	Value    string
	Location Location
}

// String renders the token the way the driver prints token dumps.
func (t Token) String() string {
	return fmt.Sprintf("token %s | value: %s | kind: %s", t.Location, printable(t.Value), t.Kind)
}

func printable(s string) string {
	return strings.ReplaceAll(s, "\x00", `\0`)
}

// ── Punctuation alphabet ──────────────────────────────────────────────────────

// punctuation holds every recognised punctuation string, ordered so that the
// maximal-munch split can ask whether any entry still starts with a prefix.
var punctuation = newPunctuationTree(map[string]TokenKind{
	"+": PunOperatorPlus,
	"-": PunOperatorMinus,
	"*": PunOperatorMultiply,
	"/": PunOperatorDivide,
	"(": PunParenOpen,
	")": PunParenClose,
	";": Semicolon,
})

func newPunctuationTree(entries map[string]TokenKind) *redblacktree.Tree[string, TokenKind] {
	tree := redblacktree.New[string, TokenKind]()
	for text, kind := range entries {
		tree.Put(text, kind)
	}
	return tree
}

// LookupPunctuation returns the kind for an exact punctuation string.
func LookupPunctuation(text string) (TokenKind, bool) {
	return punctuation.Get(text)
}

// IsPunctuationPrefix reports whether some entry of the punctuation alphabet
// starts with prefix. An exact match counts.
func IsPunctuationPrefix(prefix string) bool {
	node, found := punctuation.Ceiling(prefix)
	return found && strings.HasPrefix(node.Key, prefix)
}

// Punctuation returns the punctuation alphabet in sorted order.
func Punctuation() []string {
	return punctuation.Keys()
}
