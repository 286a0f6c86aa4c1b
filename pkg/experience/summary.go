package experience

import (
	"strings"
	"unicode"
)

const summaryMax = 120

// Summary derives a short one-sentence body text from a description, which
// may be plain text or carry markup. Tags are stripped, whitespace
// collapsed, and the result cut at the first sentence boundary.
func Summary(description string) string {
	plain := stripTags(description)
	plain = collapseSpace(plain)
	if plain == "" {
		return ""
	}

	if i := sentenceEnd(plain); i > 0 {
		plain = plain[:i]
	}
	if len(plain) > summaryMax {
		cut := strings.LastIndexFunc(plain[:summaryMax], unicode.IsSpace)
		if cut <= 0 {
			cut = summaryMax
		}
		plain = strings.TrimRight(plain[:cut], " ,;:") + "…"
	}
	return plain
}

func stripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
			b.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// sentenceEnd returns the index just past the first sentence terminator,
// or 0 when there is none.
func sentenceEnd(s string) int {
	for i, r := range s {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// "7.30pm" is not a sentence boundary.
		if r == '.' && i+1 < len(s) && s[i+1] != ' ' {
			continue
		}
		return i + 1
	}
	return 0
}
