package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
)

func newTestClassifier() *Classifier {
	return NewClassifier(NewLexiconScorer(), DominantEmotion{})
}

func TestClassifyEmptyInput(t *testing.T) {
	c := newTestClassifier()

	for _, input := range []string{"", "   ", "@mention http://only.example.com"} {
		result := c.Classify(input)
		assert.Equal(t, domain.ClassificationNeutral, result.Classification, "input %q", input)
		assert.Equal(t, 1.0, result.Neutral)
		assert.Zero(t, result.Positive)
		assert.Zero(t, result.Negative)
		assert.Zero(t, result.Compound)
		assert.Equal(t, domain.EmotionNeutral, result.Emotion)
	}
}

func TestClassifyNegativeWithAnger(t *testing.T) {
	c := newTestClassifier()

	result := c.Classify("Terrible experience, very disappointed 😠")

	assert.Equal(t, domain.ClassificationNegative, result.Classification)
	assert.Equal(t, domain.EmotionAnger, result.Emotion)
	assert.Less(t, result.Compound, -0.05)
}

func TestClassifyPositive(t *testing.T) {
	c := newTestClassifier()

	result := c.Classify("This is absolutely amazing! Love it! 😊")

	assert.Equal(t, domain.ClassificationPositive, result.Classification)
	assert.Equal(t, domain.EmotionJoy, result.Emotion)
	assert.Greater(t, result.Compound, 0.05)
}

func TestClassifyDeadBand(t *testing.T) {
	c := newTestClassifier()

	// No lexicon token at all: compound stays exactly 0.
	result := c.Classify("the report was published yesterday")

	assert.Equal(t, domain.ClassificationNeutral, result.Classification)
	assert.Zero(t, result.Compound)
}

func TestClassifyNegationFlips(t *testing.T) {
	c := newTestClassifier()

	result := c.Classify("not good at all")

	assert.Equal(t, domain.ClassificationNegative, result.Classification)
}

func TestClassifyProportionsSumToOne(t *testing.T) {
	c := newTestClassifier()

	for _, text := range []string{
		"Terrible experience, very disappointed 😠",
		"This is absolutely amazing! Love it!",
		"the report was published yesterday",
		"not good at all",
	} {
		result := c.Classify(text)
		sum := result.Positive + result.Negative + result.Neutral
		require.InDelta(t, 1.0, sum, 1e-9, "proportions for %q", text)
		assert.GreaterOrEqual(t, result.Compound, -1.0)
		assert.LessOrEqual(t, result.Compound, 1.0)
	}
}

func TestClassifierStrategyName(t *testing.T) {
	assert.Equal(t, "dominant", NewClassifier(NewLexiconScorer(), DominantEmotion{}).Strategy())
	assert.Equal(t, "distribution", NewClassifier(NewLexiconScorer(), EmotionBreakdown{}).Strategy())
}
