package domain

import "time"

// EventType tags messages pushed to stream subscribers.
type EventType string

const (
	EventConnection      EventType = "connection"
	EventSentimentUpdate EventType = "sentiment_update"
	EventCrisisAlert     EventType = "crisis_alert"
)

// PostUpdate is the per-post payload of a sentiment_update event.
type PostUpdate struct {
	Text     string   `json:"text"`
	Author   string   `json:"author"`
	Platform Platform `json:"platform"`
}

// StreamEvent is one message on a keyword's subscription channel.
// Events are delivered in arrival order until the consumer disconnects.
type StreamEvent struct {
	Type      EventType          `json:"type"`
	Keyword   string             `json:"keyword,omitempty"`
	Message   string             `json:"message,omitempty"`
	Severity  Severity           `json:"severity,omitempty"`
	Post      *PostUpdate        `json:"post,omitempty"`
	Analysis  *SentimentResult   `json:"analysis,omitempty"`
	Stats     *Stats             `json:"stats,omitempty"`
	Snapshot  *AggregateSnapshot `json:"snapshot,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}
