package summary

import "strings"

// EnforceClosing guarantees the summary ends with the closing phrase and
// stays within the word limit, the phrase included. It is a pure function of
// its arguments and idempotent: once the text ends with the phrase and fits
// the limit, it is returned unchanged.
//
// When truncation is needed the earliest body words are kept; the phrase is
// never trimmed. An empty phrase degrades to word-cap enforcement only.
func EnforceClosing(text, phrase string, limit int) string {
	words := strings.Fields(text)
	phraseWords := strings.Fields(phrase)

	if endsWithPhrase(words, phraseWords) {
		if len(words) <= limit {
			return text
		}

		keep := limit - len(phraseWords)
		if keep < 0 {
			keep = 0
		}

		body := words[:len(words)-len(phraseWords)]
		tail := words[len(words)-len(phraseWords):]

		return joinWords(body[:keep], tail)
	}

	phrase = strings.TrimSpace(phrase)

	if len(words)+len(phraseWords) <= limit {
		if len(words) == 0 {
			return phrase
		}
		return strings.TrimRight(text, " \t\r\n") + " " + phrase
	}

	keep := limit - len(phraseWords)
	if keep <= 0 {
		return phrase
	}

	return joinWords(words[:keep], phraseWords)
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// endsWithPhrase reports whether the text's final words match the phrase,
// ignoring case and surrounding whitespace. An empty phrase always matches.
func endsWithPhrase(words, phraseWords []string) bool {
	if len(phraseWords) > len(words) {
		return false
	}

	tail := words[len(words)-len(phraseWords):]
	for i, w := range tail {
		if !strings.EqualFold(w, phraseWords[i]) {
			return false
		}
	}

	return true
}

func joinWords(body, tail []string) string {
	joined := append(append([]string{}, body...), tail...)
	return strings.Join(joined, " ")
}
