package ai

import (
	"fmt"
	"strings"

	"akademikform/internal/domain/services"
)

// markdownMarkers are emphasis markers stripped from provider output.
var markdownMarkers = []string{"**", "__", "##"}

// PostProcess normalizes provider output: markdown emphasis markers are
// stripped, whitespace runs collapse to single spaces, and the result is
// trimmed. Markers are removed before the collapse so the function is
// idempotent on its own output.
func PostProcess(text string) string {
	for _, marker := range markdownMarkers {
		text = strings.ReplaceAll(text, marker, "")
	}
	return strings.Join(strings.Fields(text), " ")
}

// CountWords counts whitespace-delimited tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CheckWordLimit checks text against word bounds. A bound of 0 means that
// side is unconstrained. The check is advisory; callers do not block on
// it.
func CheckWordLimit(text string, minWords, maxWords int) services.WordLimitCheck {
	wordCount := CountWords(text)

	if minWords > 0 && wordCount < minWords {
		return services.WordLimitCheck{
			Valid:     false,
			WordCount: wordCount,
			Message:   fmt.Sprintf("Metin çok kısa. En az %d kelime olmalı (şu an: %d)", minWords, wordCount),
		}
	}

	if maxWords > 0 && wordCount > maxWords {
		return services.WordLimitCheck{
			Valid:     false,
			WordCount: wordCount,
			Message:   fmt.Sprintf("Metin çok uzun. En fazla %d kelime olmalı (şu an: %d)", maxWords, wordCount),
		}
	}

	return services.WordLimitCheck{
		Valid:     true,
		WordCount: wordCount,
		Message:   "OK",
	}
}
