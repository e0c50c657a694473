package layout

import (
	"fmt"
	"strings"

	"github.com/tilewm/tilewm/internal/stack"
)

// Every built-in layout encodes as Name(args), where args is a
// comma-separated, decoder-specific list. Composite layouts (Mirror,
// Choose) nest a sub-layout's own Name(args) encoding directly as one
// of their args; splitArgs only splits on commas at paren-depth zero,
// so nested encodings pass through untouched.
type decodeFunc func(args string) (stack.Layout, error)

var registry = map[string]decodeFunc{}

// Register associates a layout's Encode name with a decoder.
func Register(name string, decode decodeFunc) {
	registry[name] = decode
}

// Decode parses a string produced by some stack.Layout's Encode back
// into a live layout.
func Decode(s string) (stack.Layout, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("decode layout: malformed encoding %q", s)
	}
	name := s[:open]
	args := s[open+1 : len(s)-1]
	decode, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("decode layout: unknown layout %q", name)
	}
	return decode(args)
}

// splitArgs splits args on top-level commas, treating "(" and ")" as
// nesting delimiters so a sub-layout's own comma-containing encoding is
// not split.
func splitArgs(args string) []string {
	var out []string
	depth := 0
	start := 0
	for i, c := range args {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, args[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, args[start:])
	return out
}
