package pdfdoc

import "strings"

// escaper is a single left-to-right pass, so a backslash inserted for a
// parenthesis is never seen again. That matches escaping "\" before "(" and ")".
var escaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

// Escape makes line safe to place between the parentheses of a literal string
// operand. Every "\", "(" and ")" is prefixed with a backslash. Nothing is
// wrapped or truncated.
func Escape(line string) string {
	return escaper.Replace(line)
}

// Unescape reverses Escape. A backslash followed by any byte yields that byte;
// a trailing lone backslash is kept.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
