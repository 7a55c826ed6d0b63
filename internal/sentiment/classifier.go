package sentiment

import (
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
)

// Classification dead-band: compound scores within ±0.05 are neutral.
// Fixed design constants, not tunable per call.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Classifier scores raw post text. It normalizes, delegates polarity to its
// Scorer and emotion to its EmotionStrategy, and fails closed: degenerate
// input yields the all-neutral zero result, never an error.
type Classifier struct {
	scorer   Scorer
	strategy EmotionStrategy
}

var _ domain.Classifier = (*Classifier)(nil)

func NewClassifier(scorer Scorer, strategy EmotionStrategy) *Classifier {
	return &Classifier{scorer: scorer, strategy: strategy}
}

// Strategy reports the emotion strategy this classifier was built with, so a
// deployment can surface which mode its aggregates use.
func (c *Classifier) Strategy() string { return c.strategy.Name() }

func (c *Classifier) Classify(text string) domain.SentimentResult {
	normalized := Normalize(text)
	if normalized == "" {
		return domain.NeutralResult()
	}

	scores := c.scorer.Score(normalized)

	class := domain.ClassificationNeutral
	switch {
	case scores.Compound >= positiveThreshold:
		class = domain.ClassificationPositive
	case scores.Compound <= negativeThreshold:
		class = domain.ClassificationNegative
	}

	emotion, dist := c.strategy.Estimate(normalized, scores.Compound, class)

	return domain.SentimentResult{
		Classification: class,
		Compound:       scores.Compound,
		Positive:       scores.Positive,
		Negative:       scores.Negative,
		Neutral:        scores.Neutral,
		Emotion:        emotion,
		Emotions:       dist,
	}
}
