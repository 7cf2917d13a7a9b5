package wizard

import (
	"strconv"
	"strings"
	"unicode"
)

// mergeTranscript folds a voice transcript into an existing text field.
// Non-empty fields get the transcript appended with a single space so the
// player can dictate in bursts; empty fields are replaced. The first rune
// of the merged result is capitalized, so an appended utterance stays
// lowercase.
func mergeTranscript(existing, transcript string) (string, bool) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return existing, false
	}

	merged := transcript
	if existing != "" {
		merged = existing + " " + transcript
	}

	runes := []rune(merged)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes), true
}

// extractNumber pulls the digit runes out of a transcript and parses them.
// "I think 75 maybe" yields 75; a transcript with no digits ("fifty") is
// unparseable and gets discarded.
func extractNumber(transcript string) (int32, bool) {
	var digits strings.Builder
	for _, r := range transcript {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(digits.String(), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}
