package sentiment

import "strings"

// emojiWords maps sentiment-bearing emoji to plain words before scoring.
var emojiWords = map[string]string{
	"😊": "happy", "😃": "happy", "😄": "happy", "😁": "happy",
	"😢": "sad", "😭": "crying", "😔": "sad",
	"😠": "angry", "😡": "angry", "🤬": "angry",
	"😨": "fearful", "😰": "anxious", "😱": "scared",
	"❤️": "love", "💔": "heartbroken",
	"👍": "good", "👎": "bad",
	"🔥": "fire", "💯": "perfect",
}

// Normalize prepares raw post text for scoring: emoji become spaced words,
// URLs and @mentions are removed, hashtags keep their word, and whitespace is
// collapsed. Normalizing already-normalized text is a no-op. Empty or
// whitespace-only input normalizes to the empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	for emoji, word := range emojiWords {
		text = strings.ReplaceAll(text, emoji, " "+word+" ")
	}

	fields := strings.Fields(text)
	kept := fields[:0]
	for _, tok := range fields {
		switch {
		case isURL(tok):
			continue
		case strings.HasPrefix(tok, "@") && len(tok) > 1:
			continue
		case strings.HasPrefix(tok, "#") && len(tok) > 1:
			kept = append(kept, tok[1:])
		default:
			kept = append(kept, tok)
		}
	}

	return strings.Join(kept, " ")
}

func isURL(tok string) bool {
	lower := strings.ToLower(tok)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.Contains(lower, "://") ||
		strings.HasPrefix(lower, "www.")
}
