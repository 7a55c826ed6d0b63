package domain

import "time"

// Platform identifies where a post was published.
type Platform string

const (
	PlatformTwitter  Platform = "Twitter"
	PlatformReddit   Platform = "Reddit"
	PlatformFacebook Platform = "Facebook"
)

// Post is a single short text post tagged with a tracked keyword.
// Posts are immutable once produced by a Source.
type Post struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
	Platform  Platform  `json:"platform"`
	Keyword   string    `json:"keyword"`
	Likes     int       `json:"likes"`
	Reposts   int       `json:"reposts"`
}

// Excerpt returns the post text truncated for stream payloads.
func (p Post) Excerpt(max int) string {
	runes := []rune(p.Text)
	if max <= 0 || len(runes) <= max {
		return p.Text
	}
	return string(runes[:max]) + "…"
}
