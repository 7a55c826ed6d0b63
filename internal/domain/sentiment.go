package domain

// Classification is the three-way sentiment label derived from the compound score.
type Classification string

const (
	ClassificationPositive Classification = "positive"
	ClassificationNegative Classification = "negative"
	ClassificationNeutral  Classification = "neutral"
)

// Emotion is the single dominant emotion label of a text.
type Emotion string

const (
	EmotionJoy     Emotion = "joy"
	EmotionAnger   Emotion = "anger"
	EmotionFear    Emotion = "fear"
	EmotionSadness Emotion = "sadness"
	EmotionNeutral Emotion = "neutral"
)

// EmotionDistribution holds integer percentages per emotion. Values come from
// truncating division and therefore need not sum to exactly 100.
type EmotionDistribution struct {
	Joy     int `json:"joy"`
	Anger   int `json:"anger"`
	Fear    int `json:"fear"`
	Sadness int `json:"sadness"`
}

// SentimentResult is the immutable outcome of classifying one post's text.
// Positive, Negative and Neutral are proportions in [0,1] summing to 1;
// Compound is the signed polarity summary in [-1,1].
type SentimentResult struct {
	Classification Classification      `json:"classification"`
	Compound       float64             `json:"compound"`
	Positive       float64             `json:"positive"`
	Negative       float64             `json:"negative"`
	Neutral        float64             `json:"neutral"`
	Emotion        Emotion             `json:"emotion"`
	Emotions       EmotionDistribution `json:"emotions"`
}

// NeutralResult is the fail-closed result for empty or unscorable text.
func NeutralResult() SentimentResult {
	return SentimentResult{
		Classification: ClassificationNeutral,
		Neutral:        1,
		Emotion:        EmotionNeutral,
	}
}

// Classifier scores a raw text into a SentimentResult. Implementations must
// never fail: degenerate input yields NeutralResult.
type Classifier interface {
	Classify(text string) SentimentResult
}
