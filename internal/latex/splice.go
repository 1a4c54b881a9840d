package latex

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSectionNotFound is returned when the document has no header for the requested section.
	ErrSectionNotFound = errors.New("section not found in document")
	// ErrSpliceVerification is returned when the spliced text is missing from the updated document.
	ErrSpliceVerification = errors.New("spliced text missing from updated document")
)

// section is a parsed \section block: the header line and the body span that
// runs up to the next header or the \end{document} line.
type section struct {
	name        string
	headerStart int // offset of the header line start
	bodyStart   int // offset just past the header line and its newline
	bodyEnd     int // offset of the following boundary line, exclusive
}

const headerPrefix = `\section{`

// ReplaceSection replaces the body of the named section with the provided
// text, leaving the header line and every other byte of the document
// untouched. The new body is framed by a blank line on each side.
func ReplaceSection(doc, name, body string) (string, error) {
	var target *section
	for _, sec := range parse(doc) {
		if sec.name == name {
			target = &sec
			break
		}
	}

	if target == nil {
		return "", fmt.Errorf("%w: %q", ErrSectionNotFound, name)
	}

	updated := doc[:target.bodyStart] + "\n" + body + "\n\n" + doc[target.bodyEnd:]

	// Guards against a splice logic error producing corrupted output.
	if !strings.Contains(updated, body) {
		return "", ErrSpliceVerification
	}

	return updated, nil
}

// SectionNames returns the names of all section headers in document order.
func SectionNames(doc string) []string {
	sections := parse(doc)
	names := make([]string, 0, len(sections))
	for _, sec := range sections {
		names = append(names, sec.name)
	}

	return names
}

// parse scans the document line by line and returns every section block with
// its body span. A body ends at the nearest following section header or
// \end{document} line; the last section without such a boundary runs to the
// end of the document.
func parse(src string) []section {
	var sections []section

	closeLast := func(at int) {
		if n := len(sections); n > 0 && sections[n-1].bodyEnd == -1 {
			sections[n-1].bodyEnd = at
		}
	}

	for start := 0; start < len(src); {
		lineEnd := len(src)
		next := len(src)
		if i := strings.IndexByte(src[start:], '\n'); i >= 0 {
			lineEnd = start + i
			next = lineEnd + 1
		}
		line := src[start:lineEnd]

		switch name, ok := headerName(line); {
		case ok:
			closeLast(start)
			sections = append(sections, section{
				name:        name,
				headerStart: start,
				bodyStart:   next,
				bodyEnd:     -1,
			})
		case isDocumentEnd(line):
			closeLast(start)
		}

		start = next
	}

	closeLast(len(src))

	return sections
}

// headerName reports whether the line is a section header and extracts the
// section name. Nested braces inside the name are balanced explicitly, and
// trailing whitespace after the closing brace is tolerated.
func headerName(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, headerPrefix) {
		return "", false
	}

	rest := trimmed[len(headerPrefix):]
	depth := 1
	for i, r := range rest {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				if strings.TrimSpace(rest[i+1:]) != "" {
					return "", false
				}
				return rest[:i], true
			}
		}
	}

	return "", false
}

func isDocumentEnd(line string) bool {
	return strings.TrimSpace(line) == `\end{document}`
}
