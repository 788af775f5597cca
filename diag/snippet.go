package diag

import (
	"fmt"
	"strings"
)

// Snippet renders e with the offending source line, one line of context on
// each side, and a caret under the reported column:
//
//	Parser Error: invalid float literal (at line: 2, ch: 3)
//
//	   1 | 1 +
//	   2 | 2.3.4
//	     |   ^
//
// Locations outside src are clamped so rendering never fails.
func (e *Error) Snippet(src string) string {
	lines := strings.Split(src, "\n")
	line := clamp(int(e.Location.Line), 1, len(lines))
	col := int(e.Location.Ch)
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", e.Error())
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
