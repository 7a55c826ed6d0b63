package sentiment

import (
	"strings"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
)

// The two strategies predate this service and deliberately disagree: the
// dominant scan and the distribution count were written against slightly
// different keyword lists and fallbacks, and no source of truth says which is
// authoritative. Both are preserved verbatim behind the EmotionStrategy
// selector; a deployment picks one at startup and never mixes them within an
// aggregate.

// EmotionStrategy estimates emotion for one normalized text. Estimate returns
// the single dominant label and, for the distribution strategy, a percentage
// breakdown across the four emotions.
type EmotionStrategy interface {
	Name() string
	Estimate(normalized string, compound float64, class domain.Classification) (domain.Emotion, domain.EmotionDistribution)
}

// Strategy names accepted by config.
const (
	StrategyDominant     = "dominant"
	StrategyDistribution = "distribution"
)

// emotionFallback thresholds map strong compound scores to joy/anger when no
// emotion keyword matches in dominant mode.
const emotionFallbackThreshold = 0.5

// dominant-mode keyword lists, scanned in priority order joy > anger > fear >
// sadness; the first list containing a match wins.
var (
	dominantJoy     = []string{"happy", "excited", "love", "great", "amazing", "wonderful", "fantastic"}
	dominantAnger   = []string{"angry", "hate", "furious", "terrible", "worst", "awful"}
	dominantFear    = []string{"scared", "afraid", "worried", "concerned", "anxious"}
	dominantSadness = []string{"sad", "disappointed", "depressed", "unhappy"}
)

// DominantEmotion returns exactly one emotion label per text.
type DominantEmotion struct{}

func (DominantEmotion) Name() string { return StrategyDominant }

func (DominantEmotion) Estimate(normalized string, compound float64, _ domain.Classification) (domain.Emotion, domain.EmotionDistribution) {
	lower := strings.ToLower(normalized)

	switch {
	case containsAny(lower, dominantJoy):
		return domain.EmotionJoy, domain.EmotionDistribution{}
	case containsAny(lower, dominantAnger):
		return domain.EmotionAnger, domain.EmotionDistribution{}
	case containsAny(lower, dominantFear):
		return domain.EmotionFear, domain.EmotionDistribution{}
	case containsAny(lower, dominantSadness):
		return domain.EmotionSadness, domain.EmotionDistribution{}
	case compound >= emotionFallbackThreshold:
		return domain.EmotionJoy, domain.EmotionDistribution{}
	case compound <= -emotionFallbackThreshold:
		return domain.EmotionAnger, domain.EmotionDistribution{}
	default:
		return domain.EmotionNeutral, domain.EmotionDistribution{}
	}
}

// distribution-mode keyword lists (note the divergence from the dominant
// lists: joy gains "joy"/"awesome"/"excellent" and loses "fantastic", anger
// gains "mad"/"disgusting", fear gains "fearful"/"nervous"/"terrified" and
// loses "concerned", sadness gains "heartbroken"/"crying").
var (
	distJoy     = []string{"happy", "joy", "excited", "love", "great", "awesome", "amazing", "wonderful", "excellent"}
	distAnger   = []string{"angry", "mad", "furious", "hate", "terrible", "awful", "worst", "disgusting"}
	distFear    = []string{"scared", "afraid", "fearful", "worried", "anxious", "nervous", "terrified"}
	distSadness = []string{"sad", "depressed", "unhappy", "disappointed", "heartbroken", "crying"}
)

// EmotionBreakdown returns keyword-count-weighted integer percentages across
// the four emotions. Percentages use truncating division and may not sum to
// exactly 100; that rounding behavior is deliberate and load-bearing for
// downstream consumers, not a bug.
type EmotionBreakdown struct{}

func (EmotionBreakdown) Name() string { return StrategyDistribution }

func (EmotionBreakdown) Estimate(normalized string, _ float64, class domain.Classification) (domain.Emotion, domain.EmotionDistribution) {
	lower := strings.ToLower(normalized)

	joy := countMatches(lower, distJoy)
	anger := countMatches(lower, distAnger)
	fear := countMatches(lower, distFear)
	sadness := countMatches(lower, distSadness)

	total := joy + anger + fear + sadness
	if total == 0 {
		dist := fallbackDistribution(class)
		if class == domain.ClassificationNeutral {
			// The flat 25/25/25/25 fallback has no dominant emotion;
			// dominantOf would tie-break it to joy.
			return domain.EmotionNeutral, dist
		}
		return dominantOf(dist), dist
	}

	dist := domain.EmotionDistribution{
		Joy:     joy * 100 / total,
		Anger:   anger * 100 / total,
		Fear:    fear * 100 / total,
		Sadness: sadness * 100 / total,
	}
	return dominantOf(dist), dist
}

// fallbackDistribution is the fixed breakdown keyed by overall classification
// when no emotion keyword appears.
func fallbackDistribution(class domain.Classification) domain.EmotionDistribution {
	switch class {
	case domain.ClassificationPositive:
		return domain.EmotionDistribution{Joy: 70, Anger: 10, Fear: 10, Sadness: 10}
	case domain.ClassificationNegative:
		return domain.EmotionDistribution{Joy: 10, Anger: 40, Fear: 25, Sadness: 25}
	default:
		return domain.EmotionDistribution{Joy: 25, Anger: 25, Fear: 25, Sadness: 25}
	}
}

// dominantOf picks the label with the highest share, ties broken in
// joy > anger > fear > sadness order.
func dominantOf(d domain.EmotionDistribution) domain.Emotion {
	best, label := d.Joy, domain.EmotionJoy
	if d.Anger > best {
		best, label = d.Anger, domain.EmotionAnger
	}
	if d.Fear > best {
		best, label = d.Fear, domain.EmotionFear
	}
	if d.Sadness > best {
		label = domain.EmotionSadness
	}
	return label
}

// StrategyByName resolves a configured strategy name; unknown names fall back
// to the dominant strategy.
func StrategyByName(name string) EmotionStrategy {
	if name == StrategyDistribution {
		return EmotionBreakdown{}
	}
	return DominantEmotion{}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func countMatches(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}
