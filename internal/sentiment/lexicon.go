package sentiment

import (
	"math"
	"strings"
)

// Scores are the raw polarity proportions of a text. Positive, Negative and
// Neutral sum to 1; Compound is the normalized signed sum in [-1,1].
type Scores struct {
	Positive float64
	Negative float64
	Neutral  float64
	Compound float64
}

// Scorer turns normalized text into polarity scores. The default is the
// lexicon scorer below; deployments can plug in a real model instead.
type Scorer interface {
	Score(text string) Scores
}

// valences holds per-token sentiment weights on the usual -4..4 scale.
var valences = map[string]float64{
	// positive
	"amazing": 2.8, "awesome": 3.1, "best": 3.2, "excellent": 2.7,
	"excited": 2.3, "fantastic": 2.6, "fire": 1.3, "good": 1.9,
	"great": 3.1, "happy": 2.7, "impressed": 2.2, "impressive": 2.2,
	"incredible": 2.4, "joy": 2.9, "love": 3.2, "outstanding": 2.6,
	"perfect": 2.7, "recommend": 1.5, "revolutionary": 1.9,
	"wonderful": 2.7, "fine": 0.8, "okay": 0.9,
	// negative
	"afraid": -1.9, "angry": -2.3, "anxious": -1.9, "awful": -2.0,
	"bad": -2.5, "crashing": -1.6, "crying": -1.9, "dangerous": -1.9,
	"depressed": -2.3, "disappointed": -2.3, "disappointing": -2.2,
	"disappointment": -2.3, "disgusting": -2.4, "frustrated": -2.1,
	"frustrating": -1.9, "furious": -2.4, "hate": -2.7, "heartbroken": -2.8,
	"horrible": -2.5, "issues": -1.1, "mad": -2.2, "nervous": -1.6,
	"overpriced": -1.6, "poor": -1.9, "problems": -1.1, "regret": -1.9,
	"sad": -2.1, "scared": -1.9, "terrible": -2.1, "terrified": -2.7,
	"unacceptable": -2.0, "unhappy": -1.8, "waste": -1.8, "worried": -1.7,
	"worst": -3.1,
}

// boosters intensify the following sentiment token.
var boosters = map[string]float64{
	"very": 0.293, "really": 0.293, "extremely": 0.293,
	"absolutely": 0.293, "so": 0.293, "totally": 0.293,
}

// negators flip and dampen the following sentiment token.
var negators = map[string]bool{
	"not": true, "never": true, "no": true, "nothing": true,
	"don't": true, "dont": true, "isn't": true, "isnt": true,
	"won't": true, "wont": true, "can't": true, "cant": true,
	"wasn't": true, "wasnt": true,
}

const negationDampening = -0.74

// LexiconScorer is the default fixed-lexicon implementation of Scorer.
type LexiconScorer struct{}

func NewLexiconScorer() LexiconScorer { return LexiconScorer{} }

// Score tokenizes the text, sums lexicon valences with booster and negation
// adjustments, and normalizes the sum into a compound score.
func (LexiconScorer) Score(text string) Scores {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Scores{Neutral: 1}
	}

	var sum float64
	var posTokens, negTokens int
	for i, tok := range tokens {
		valence, ok := valences[tok]
		if !ok {
			continue
		}
		if i > 0 {
			prev := tokens[i-1]
			if negators[prev] {
				valence *= negationDampening
			} else if boost, ok := boosters[prev]; ok {
				valence *= 1 + boost
			}
		}
		sum += valence
		if valence > 0 {
			posTokens++
		} else if valence < 0 {
			negTokens++
		}
	}

	total := float64(len(tokens))
	s := Scores{
		Positive: float64(posTokens) / total,
		Negative: float64(negTokens) / total,
		Compound: sum / math.Sqrt(sum*sum+15),
	}
	s.Neutral = 1 - s.Positive - s.Negative
	return s
}

// tokenize lowercases and splits normalized text, trimming punctuation from
// token edges so "terrible," matches the lexicon.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:\"()[]{}…*")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
