// Package lexer implements the Nightcode lexer (tokeniser).
//
// The lexer converts a source string into a flat slice of [ast.Token] values
// that always ends with exactly one [ast.EOF] token. It never fails: text it
// cannot classify comes out as [ast.Undefined] or [ast.UndefinedPunctuation]
// tokens, which the parser rejects.
//
// Design notes:
//   - Single pass over the input with one accumulating token. Each character
//     only updates the kind of that token or flushes it.
//   - Punctuation is gathered into a run first and split afterwards by maximal
//     munch against [ast.LookupPunctuation], so multi-character operators only
//     need a new entry in the alphabet.
//   - Columns count characters (runes), whitespace included. Token values are
//     sliced from the input by byte offset, so invalid UTF-8 is kept as is.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/metaphox/nightcode/ast"
)

// sentinel is appended to the input so that the final token is flushed by the
// same code path as every other token.
const sentinel = '\x00'

// Lexer holds the state for tokenising a single source string.
// Create one with [New]; a Lexer is used once.
type Lexer struct {
	input  string
	output []ast.Token

	current ast.Token // token being accumulated
	line    uint32    // current 1-based line
	ch      uint32    // 1-based column of the character being examined
}

// New creates a [Lexer] for input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, ch: 1}
	l.reset()
	return l
}

// Tokenize is shorthand for New(source).Tokens().
func Tokenize(source string) []ast.Token {
	return New(source).Tokens()
}

// Tokens scans the whole input and returns the token stream.
func (l *Lexer) Tokens() []ast.Token {
	if l.output != nil {
		return l.output
	}
	l.output = make([]ast.Token, 0, len(l.input)/2+1)

	src := l.input + string(sentinel)
	for i := 0; i < len(src); {
		c, width := utf8.DecodeRuneInString(src[i:])
		text := src[i : i+width]
		i += width

		if c == '\n' {
			// Pending punctuation is split before the line changes so that
			// the split tokens keep the columns of the line they came from.
			l.flushPunctuation()
			l.emit()
			l.line++
			l.ch = 1
			l.reset()
			continue
		}

		if l.current.Kind == ast.UndefinedPunctuation && (!isPunctuation(c) || c == sentinel) {
			l.flushPunctuation()
		}

		if c == sentinel {
			l.emit()
			l.output = append(l.output, ast.Token{
				Kind:     ast.EOF,
				Value:    string(sentinel),
				Location: ast.Location{Line: l.line, Ch: l.ch},
			})
			break
		}

		switch {
		case isDigit(c):
			if l.current.Kind != ast.LiteralFloat {
				l.current.Kind = ast.LiteralInteger
			}
		case c == '.':
			if l.current.Kind == ast.LiteralInteger || l.current.Value == "" {
				l.current.Kind = ast.LiteralFloat
			}
		case isPunctuation(c) && l.current.Kind != ast.UndefinedPunctuation:
			l.emit()
			l.reset()
			l.current.Kind = ast.UndefinedPunctuation
		}

		l.ch++
		if unicode.IsSpace(c) {
			l.emit()
			l.reset()
			continue
		}

		l.current.Value += text
	}

	return l.output
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// reset starts a fresh token at the current position.
func (l *Lexer) reset() {
	l.current = ast.Token{
		Kind:     ast.Undefined,
		Location: ast.Location{Line: l.line, Ch: l.ch},
	}
}

// emit appends the current token to the output if it holds any text.
// It does not reset the current token.
func (l *Lexer) emit() {
	if l.current.Value != "" {
		l.output = append(l.output, l.current)
	}
}

// flushPunctuation splits a pending punctuation run into tokens and resets the
// current token. It is a no-op unless a punctuation run is pending.
//
// At each index the longest prefix found in the punctuation alphabet is
// emitted, at column ch - len(run) + index. If some index has no matching
// prefix, none of the split is kept: the whole run is emitted as a single
// UndefinedPunctuation token at the run's first column.
func (l *Lexer) flushPunctuation() {
	if l.current.Kind != ast.UndefinedPunctuation {
		return
	}
	run := []rune(l.current.Value)
	start := l.ch - uint32(len(run))

	split := make([]ast.Token, 0, len(run))
	for idx := 0; idx < len(run); {
		end, kind := longestPunctuation(run, idx)
		if end < 0 {
			split = append(split[:0], ast.Token{
				Kind:     ast.UndefinedPunctuation,
				Value:    l.current.Value,
				Location: ast.Location{Line: l.line, Ch: start},
			})
			break
		}
		split = append(split, ast.Token{
			Kind:     kind,
			Value:    string(run[idx:end]),
			Location: ast.Location{Line: l.line, Ch: start + uint32(idx)},
		})
		idx = end
	}
	l.output = append(l.output, split...)

	l.reset()
}

// longestPunctuation returns the end index of the longest alphabet entry that
// starts at run[idx], or -1 when nothing matches.
func longestPunctuation(run []rune, idx int) (int, ast.TokenKind) {
	end, kind := -1, ast.UndefinedPunctuation
	for i := idx + 1; i <= len(run); i++ {
		prefix := string(run[idx:i])
		if k, ok := ast.LookupPunctuation(prefix); ok {
			end, kind = i, k
		}
		if !ast.IsPunctuationPrefix(prefix) {
			break
		}
	}
	return end, kind
}

// isDigit reports whether c is an ASCII decimal digit (0–9).
func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// isPunctuation reports whether c is ASCII punctuation other than '.', which
// belongs to numeric literals.
func isPunctuation(c rune) bool {
	if c == '.' {
		return false
	}
	return (c >= '!' && c <= '/') ||
		(c >= ':' && c <= '@') ||
		(c >= '[' && c <= '`') ||
		(c >= '{' && c <= '~')
}
