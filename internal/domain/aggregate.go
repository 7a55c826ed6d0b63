package domain

import "time"

// SentimentCounts is the classification tally over a window.
// Positive + Negative + Neutral always equals Total.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
	Total    int `json:"total"`
}

// NegativeShare returns negative/total, or 0 when the window is empty.
func (c SentimentCounts) NegativeShare() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Negative) / float64(c.Total)
}

// SentimentDistribution is the classification split as percentages of the
// recent window, rounded to one decimal.
type SentimentDistribution struct {
	Positive float64         `json:"positive"`
	Negative float64         `json:"negative"`
	Neutral  float64         `json:"neutral"`
	Counts   SentimentCounts `json:"counts"`
}

// KeywordFrequency is one entry of a trending-keywords ranking.
type KeywordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// AggregateSnapshot is the read view of one keyword's rolling state.
type AggregateSnapshot struct {
	Keyword      string                `json:"keyword"`
	Counts       SentimentCounts       `json:"sentiment"`
	Distribution SentimentDistribution `json:"distribution"`
	Emotions     EmotionDistribution   `json:"emotions"`
	TopKeywords  []KeywordFrequency    `json:"keywords"`
	Timestamp    time.Time             `json:"timestamp"`
}

// ActivityEntry is one line of the rolling activity log.
type ActivityEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Message   string         `json:"message"`
	Sentiment Classification `json:"sentiment"`
}

// Stats is the process-wide view over all tracked keywords.
type Stats struct {
	TotalPosts            int                   `json:"total_posts"`
	SentimentDistribution SentimentDistribution `json:"sentiment_distribution"`
	EmotionDistribution   map[Emotion]int       `json:"emotion_distribution"`
	ActivityLog           []ActivityEntry       `json:"activity_log"`
}
