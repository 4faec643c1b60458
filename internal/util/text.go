package util

import "strings"

// NormalizePhrase lowercases and trims an utterance. Every store keys its
// entries by this form so lookups are case- and whitespace-insensitive.
func NormalizePhrase(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TrimSentences shortens free text to its first n non-empty sentences,
// re-joined with ". " and a closing period. Used to keep web search answers
// speakable. Returns "" for text with no sentence content.
func TrimSentences(text string, n int) string {
	parts := strings.Split(text, ".")
	sentences := make([]string, 0, n)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		sentences = append(sentences, p)
		if len(sentences) == n {
			break
		}
	}
	if len(sentences) == 0 {
		return ""
	}
	return strings.Join(sentences, ". ") + "."
}
