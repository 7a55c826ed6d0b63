// Package aggregate maintains the rolling per-keyword sentiment state: the
// bounded classification window, full history, analysis snapshots, trending
// keywords and the process-wide stats and activity log.
//
// Writes come from a single streaming loop per keyword; reads come from
// concurrent HTTP stat polls, so state is guarded by an RWMutex and every
// read recomputes its distribution from the window rather than trusting an
// incremental cache. The O(window) recompute is deliberate: windows are
// capped at 1000 entries and correctness beats throughput here.
package aggregate

import (
	"fmt"
	"math"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/sentiment"
)

const (
	// DistributionWindowCap bounds the recency window used for percentages.
	DistributionWindowCap = 100
	// HistoryCap bounds the full per-keyword result history.
	HistoryCap = 1000
	// SnapshotHistoryCap bounds stored analysis snapshots per keyword.
	SnapshotHistoryCap = 50
	// ActivityLogCap bounds the stored activity log; queries return fewer.
	ActivityLogCap = 50
	// activityLogReturn is how many activity entries stats queries return.
	activityLogReturn = 10
)

type keywordState struct {
	window  []domain.SentimentResult // recent, cap DistributionWindowCap
	history []domain.SentimentResult // full, cap HistoryCap
	texts   []string                 // normalized text window for trending
	records []domain.AggregateSnapshot
}

// Aggregator owns all per-keyword state. Keyword entries are created on first
// ingest and live for the process lifetime; their windows bound memory.
type Aggregator struct {
	mu            sync.RWMutex
	clock         clockwork.Clock
	emotionMode   string
	keywords      map[string]*keywordState
	recent        []domain.SentimentResult
	emotionCounts map[domain.Emotion]int
	totalPosts    int
	activity      []domain.ActivityEntry
}

// New creates an empty aggregator. emotionMode names the emotion strategy the
// deployment classifies with (sentiment.StrategyDominant or
// sentiment.StrategyDistribution) and decides how emotion percentages are
// aggregated; the two are never mixed within one aggregate.
func New(clock clockwork.Clock, emotionMode string) *Aggregator {
	return &Aggregator{
		clock:         clock,
		emotionMode:   emotionMode,
		keywords:      make(map[string]*keywordState),
		emotionCounts: make(map[domain.Emotion]int),
	}
}

// Ingest records one classified post for a keyword and returns the updated
// snapshot. It is the single mutation path for keyword state.
func (a *Aggregator) Ingest(keyword string, post domain.Post, result domain.SentimentResult) domain.AggregateSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	state, ok := a.keywords[keyword]
	if !ok {
		state = &keywordState{}
		a.keywords[keyword] = state
	}

	state.window = appendBounded(state.window, result, DistributionWindowCap)
	state.history = appendBounded(state.history, result, HistoryCap)
	state.texts = appendBounded(state.texts, sentiment.Normalize(post.Text), DistributionWindowCap)

	a.recent = appendBounded(a.recent, result, DistributionWindowCap)
	a.emotionCounts[result.Emotion]++
	a.totalPosts++

	a.logActivityLocked(
		fmt.Sprintf("Analyzed post from @%s: %s sentiment", post.Author, result.Classification),
		result.Classification,
	)

	return a.snapshotLocked(keyword, state)
}

// Snapshot returns the current view for a keyword. Unseen keywords yield an
// empty, zero-valued snapshot rather than an error.
func (a *Aggregator) Snapshot(keyword string) domain.AggregateSnapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	state, ok := a.keywords[keyword]
	if !ok {
		return domain.AggregateSnapshot{Keyword: keyword, Timestamp: a.clock.Now()}
	}
	return a.snapshotLocked(keyword, state)
}

// Trending ranks keyword frequencies over the keyword's recent texts.
// Ranking is deterministic: descending count, ties by first appearance.
func (a *Aggregator) Trending(keyword string) []domain.KeywordFrequency {
	a.mu.RLock()
	defer a.mu.RUnlock()

	state, ok := a.keywords[keyword]
	if !ok {
		return nil
	}
	return sentiment.ExtractKeywords(state.texts, sentiment.DefaultTopKeywords)
}

// RecordSnapshot appends an analysis snapshot to the keyword's history,
// evicting the oldest past SnapshotHistoryCap.
func (a *Aggregator) RecordSnapshot(snapshot domain.AggregateSnapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()

	state, ok := a.keywords[snapshot.Keyword]
	if !ok {
		state = &keywordState{}
		a.keywords[snapshot.Keyword] = state
	}
	state.records = appendBounded(state.records, snapshot, SnapshotHistoryCap)
}

// History returns the stored analysis snapshots for a keyword, newest last.
func (a *Aggregator) History(keyword string) []domain.AggregateSnapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	state, ok := a.keywords[keyword]
	if !ok {
		return nil
	}
	out := make([]domain.AggregateSnapshot, len(state.records))
	copy(out, state.records)
	return out
}

// LogActivity appends a free-form entry to the activity log.
func (a *Aggregator) LogActivity(message string, class domain.Classification) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logActivityLocked(message, class)
}

// Stats returns the process-wide view over all keywords.
func (a *Aggregator) Stats() domain.Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	emotions := make(map[domain.Emotion]int, len(a.emotionCounts))
	for k, v := range a.emotionCounts {
		emotions[k] = v
	}

	activity := a.activity
	if len(activity) > activityLogReturn {
		activity = activity[len(activity)-activityLogReturn:]
	}
	log := make([]domain.ActivityEntry, len(activity))
	copy(log, activity)

	return domain.Stats{
		TotalPosts:            a.totalPosts,
		SentimentDistribution: distributionOf(a.recent),
		EmotionDistribution:   emotions,
		ActivityLog:           log,
	}
}

func (a *Aggregator) logActivityLocked(message string, class domain.Classification) {
	entry := domain.ActivityEntry{
		Timestamp: a.clock.Now(),
		Message:   message,
		Sentiment: class,
	}
	a.activity = appendBounded(a.activity, entry, ActivityLogCap)
}

func (a *Aggregator) snapshotLocked(keyword string, state *keywordState) domain.AggregateSnapshot {
	dist := distributionOf(state.window)
	return domain.AggregateSnapshot{
		Keyword:      keyword,
		Counts:       dist.Counts,
		Distribution: dist,
		Emotions:     a.emotionsLocked(state),
		TopKeywords:  sentiment.ExtractKeywords(state.texts, sentiment.DefaultTopKeywords),
		Timestamp:    a.clock.Now(),
	}
}

// emotionsLocked aggregates emotion percentages over the window. In dominant
// mode percentages come from label counts; in distribution mode each result
// already carries a percentage breakdown and the window average is taken.
// Both use truncating division, so results need not sum to exactly 100.
func (a *Aggregator) emotionsLocked(state *keywordState) domain.EmotionDistribution {
	n := len(state.window)
	if n == 0 {
		return domain.EmotionDistribution{}
	}

	if a.emotionMode == sentiment.StrategyDistribution {
		var joy, anger, fear, sadness int
		for _, r := range state.window {
			joy += r.Emotions.Joy
			anger += r.Emotions.Anger
			fear += r.Emotions.Fear
			sadness += r.Emotions.Sadness
		}
		return domain.EmotionDistribution{
			Joy:     joy / n,
			Anger:   anger / n,
			Fear:    fear / n,
			Sadness: sadness / n,
		}
	}

	var joy, anger, fear, sadness int
	for _, r := range state.window {
		switch r.Emotion {
		case domain.EmotionJoy:
			joy++
		case domain.EmotionAnger:
			anger++
		case domain.EmotionFear:
			fear++
		case domain.EmotionSadness:
			sadness++
		}
	}
	return domain.EmotionDistribution{
		Joy:     joy * 100 / n,
		Anger:   anger * 100 / n,
		Fear:    fear * 100 / n,
		Sadness: sadness * 100 / n,
	}
}

// distributionOf computes the classification split over a window. The counts
// invariant positive+negative+neutral == total holds by construction.
func distributionOf(window []domain.SentimentResult) domain.SentimentDistribution {
	counts := domain.SentimentCounts{Total: len(window)}
	for _, r := range window {
		switch r.Classification {
		case domain.ClassificationPositive:
			counts.Positive++
		case domain.ClassificationNegative:
			counts.Negative++
		default:
			counts.Neutral++
		}
	}

	dist := domain.SentimentDistribution{Counts: counts}
	if counts.Total > 0 {
		total := float64(counts.Total)
		dist.Positive = round1(float64(counts.Positive) / total * 100)
		dist.Negative = round1(float64(counts.Negative) / total * 100)
		dist.Neutral = round1(float64(counts.Neutral) / total * 100)
	}
	return dist
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// appendBounded appends to a FIFO slice, evicting the oldest entry once cap
// is exceeded.
func appendBounded[T any](s []T, v T, max int) []T {
	s = append(s, v)
	if len(s) > max {
		s = s[1:]
	}
	return s
}
