package unparser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Transquote converts the body of a quoted literal from one delimiter to
// another: escaped occurrences of current are unescaped, then every
// occurrence of target is escaped.
func Transquote(raw, current, target string) string {
	s := strings.ReplaceAll(raw, `\`+current, current)
	return strings.ReplaceAll(s, target, `\`+target)
}

var simpleEscapes = map[byte]string{
	'\\': `\\`,
	'\n': `\n`,
	'\t': `\t`,
	'\r': `\r`,
	'\f': `\f`,
	'\v': `\v`,
	'\a': `\a`,
	'\b': `\b`,
	0x1b: `\e`,
	0x00: `\0`,
}

// escapeString renders s as the body of a Ruby literal delimited by delim.
// Interpolation sequences are escaped so the literal stays static; bytes
// that are not valid UTF-8 are written as \xNN.
func escapeString(s string, delim byte) string {
	var sb strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == delim:
			sb.WriteByte('\\')
			sb.WriteByte(c)
			i++
			continue
		case c == '#' && i+1 < len(s) && strings.IndexByte("{$@", s[i+1]) >= 0:
			sb.WriteString(`\#`)
			i++
			continue
		}
		if esc, ok := simpleEscapes[c]; ok {
			// \0 followed by a digit would read as an octal escape
			if c == 0 && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '7' {
				sb.WriteString(`\x00`)
			} else {
				sb.WriteString(esc)
			}
			i++
			continue
		}
		if c < 0x20 || c == 0x7f {
			fmt.Fprintf(&sb, `\x%02X`, c)
			i++
			continue
		}
		if c < utf8.RuneSelf {
			sb.WriteByte(c)
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			fmt.Fprintf(&sb, `\x%02X`, c)
			i++
			continue
		}
		sb.WriteString(s[i : i+size])
		i += size
	}
	return sb.String()
}

// escapeInterpolation escapes each # that would start an interpolation in
// s, leaving those already escaped by a backslash.
func escapeInterpolation(s string) string {
	var sb strings.Builder
	backslashes := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '#' && backslashes%2 == 0 && i+1 < len(s) && strings.IndexByte("{$@", s[i+1]) >= 0 {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
		if c == '\\' {
			backslashes++
		} else {
			backslashes = 0
		}
	}
	return sb.String()
}
