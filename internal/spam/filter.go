// Package spam removes low-value posts before they reach the classifier.
package spam

import (
	"strings"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
)

// denylist phrases mark a post as spam when contained anywhere in the
// lowercased text. A post is dropped entirely or passed entirely.
var denylist = []string{
	"buy now",
	"click here",
	"limited offer",
	"act now",
	"free money",
}

// Filter returns the posts that are not spam, preserving order.
func Filter(posts []domain.Post) []domain.Post {
	kept := make([]domain.Post, 0, len(posts))
	for _, post := range posts {
		if !IsSpam(post.Text) {
			kept = append(kept, post)
		}
	}
	return kept
}

// IsSpam reports whether the text matches any denylist phrase,
// case-insensitively.
func IsSpam(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range denylist {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
