package summary

import (
	"strings"
	"testing"
)

const testPhrase = "Visit site for more."

func TestEnforceClosing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		phrase string
		limit  int
		expect string
	}{
		{
			name:   "phrase present and within limit is unchanged",
			text:   "Strong Go engineer. Visit site for more.",
			phrase: testPhrase,
			limit:  90,
			expect: "Strong Go engineer. Visit site for more.",
		},
		{
			name:   "phrase match is case-insensitive",
			text:   "Strong Go engineer. VISIT site FOR more.",
			phrase: testPhrase,
			limit:  90,
			expect: "Strong Go engineer. VISIT site FOR more.",
		},
		{
			name:   "phrase match tolerates trailing whitespace",
			text:   "Strong Go engineer. Visit site for more.  \n",
			phrase: testPhrase,
			limit:  90,
			expect: "Strong Go engineer. Visit site for more.  \n",
		},
		{
			name:   "appends phrase when missing and fits",
			text:   "Strong Go engineer.",
			phrase: testPhrase,
			limit:  90,
			expect: "Strong Go engineer. Visit site for more.",
		},
		{
			name:   "append strips trailing whitespace before the separator",
			text:   "Strong Go engineer.\n",
			phrase: testPhrase,
			limit:  90,
			expect: "Strong Go engineer. Visit site for more.",
		},
		{
			name:   "phrase present but over limit keeps earliest body words",
			text:   "one two three four five six seven eight Visit site for more.",
			phrase: testPhrase,
			limit:  8,
			expect: "one two three four Visit site for more.",
		},
		{
			name:   "phrase missing and appending overflows",
			text:   "one two three four five six seven eight nine ten",
			phrase: testPhrase,
			limit:  6,
			expect: "one two Visit site for more.",
		},
		{
			name:   "limit smaller than phrase yields phrase alone",
			text:   "one two three",
			phrase: testPhrase,
			limit:  3,
			expect: testPhrase,
		},
		{
			name:   "limit equal to phrase yields phrase alone",
			text:   "one two three",
			phrase: testPhrase,
			limit:  4,
			expect: testPhrase,
		},
		{
			name:   "empty text becomes phrase alone",
			text:   "",
			phrase: testPhrase,
			limit:  90,
			expect: testPhrase,
		},
		{
			name:   "empty phrase degrades to word cap",
			text:   "one two three four five",
			phrase: "",
			limit:  3,
			expect: "one two three",
		},
		{
			name:   "empty phrase within limit is unchanged",
			text:   "one two three",
			phrase: "",
			limit:  3,
			expect: "one two three",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := EnforceClosing(tt.text, tt.phrase, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestEnforceClosingInvariants(t *testing.T) {
	t.Parallel()

	texts := []string{
		"",
		"short text",
		"one two three four five six seven eight nine ten eleven twelve",
		"already ends here. Visit site for more.",
		strings.Repeat("word ", 200),
	}

	for _, limit := range []int{4, 5, 10, 90} {
		for _, text := range texts {
			got := EnforceClosing(text, testPhrase, limit)

			if n := WordCount(got); n > limit {
				t.Fatalf("limit %d: result has %d words: %q", limit, n, got)
			}

			if !strings.HasSuffix(strings.ToLower(strings.TrimSpace(got)), strings.ToLower(testPhrase)) {
				t.Fatalf("limit %d: result does not end with phrase: %q", limit, got)
			}
		}
	}
}

func TestEnforceClosingIdempotent(t *testing.T) {
	t.Parallel()

	texts := []string{
		"one two three four five six seven eight nine ten",
		"Strong Go engineer.",
		"already ends here. Visit site for more.",
	}

	for _, text := range texts {
		once := EnforceClosing(text, testPhrase, 8)
		twice := EnforceClosing(once, testPhrase, 8)

		if once != twice {
			t.Fatalf("not idempotent: %q became %q", once, twice)
		}
	}
}
