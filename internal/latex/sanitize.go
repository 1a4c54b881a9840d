// Package latex prepares generated text for insertion into a LaTeX document
// and splices it into a named section.
package latex

import "strings"

// punctuation normalizes typographic unicode punctuation to the plain
// equivalents LaTeX expects before any escaping happens.
var punctuation = strings.NewReplacer(
	"–", "--", // en dash
	"—", "---", // em dash
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
)

// Sanitize converts arbitrary generated text into LaTeX-safe text. It
// normalizes typographic punctuation, escapes the reserved characters and
// collapses whitespace runs to a single space.
//
// Sanitize is not idempotent: running it on already-escaped text
// double-escapes. Apply it exactly once, to model output only, never to
// literal CV text.
func Sanitize(text string) string {
	normalized := punctuation.Replace(text)

	var b strings.Builder
	b.Grow(len(normalized) * 2)

	// Every reserved character maps independently, so produced escape
	// sequences are never re-escaped within a single pass.
	for _, r := range normalized {
		switch r {
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '#':
			b.WriteString(`\#`)
		case '$':
			b.WriteString(`\$`)
		case '%':
			b.WriteString(`\%`)
		case '&':
			b.WriteString(`\&`)
		case '_':
			b.WriteString(`\_`)
		case '{':
			b.WriteString(`\{`)
		case '}':
			b.WriteString(`\}`)
		case '^':
			b.WriteString(`\^{}`)
		case '~':
			b.WriteString(`\~{}`)
		default:
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
