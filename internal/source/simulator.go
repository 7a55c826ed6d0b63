package source

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
)

type samplePool struct {
	positive []string
	negative []string
	neutral  []string
}

var samplePosts = map[string]samplePool{
	"Tesla": {
		positive: []string{
			"Just bought a Tesla Model 3! Best car I've ever owned! #Tesla #ElectricVehicle",
			"Tesla's autopilot is absolutely amazing! The future is here!",
			"Love my Tesla! The acceleration is mind-blowing!",
			"Tesla stock is soaring! Great investment decision!",
			"The new Tesla factory is creating thousands of jobs. Fantastic news!",
			"Tesla's battery technology is revolutionary. Game changer!",
		},
		negative: []string{
			"Tesla quality control is terrible. My car has so many issues.",
			"Tesla service centers are the worst. Waiting months for repairs!",
			"Overpriced and overhyped. Tesla is not worth the money.",
			"Tesla's autopilot is dangerous. Too many accidents!",
			"Tesla stock is crashing. Should have sold earlier.",
			"Tesla's customer service is non-existent. Very disappointed.",
		},
		neutral: []string{
			"Tesla announced new factory in Texas. Production starts next year.",
			"Tesla Model Y specifications released. Check the website for details.",
			"Tesla earnings report coming next week. Analysts predict mixed results.",
			"Tesla charging stations expanding to 50 new locations.",
			"Tesla software update version 11.0 now available for download.",
		},
	},
	"AI": {
		positive: []string{
			"AI is revolutionary for healthcare! Amazing breakthroughs in diagnosis.",
			"AI assistants are incredible! This is the future!",
			"AI-powered tools are making my work so much easier!",
			"Excited about AI advancements in education. Students will benefit greatly!",
		},
		negative: []string{
			"AI is taking our jobs. This is getting scary.",
			"AI-generated content is ruining creative industries.",
			"Worried about AI privacy issues. Our data is not safe.",
			"AI bias is a terrible problem that needs addressing.",
		},
		neutral: []string{
			"New AI research paper published on machine learning algorithms.",
			"AI conference scheduled for next month in San Francisco.",
			"AI market expected to reach $500B by 2028, report says.",
		},
	},
	"default": {
		positive: []string{
			"Great news! This is exactly what we needed!",
			"Absolutely amazing! Love this so much! 😊",
			"Best decision ever! Highly recommend!",
			"Fantastic results! Very impressed! 💯",
		},
		negative: []string{
			"This is terrible. Very disappointed. 😠",
			"Worst experience ever. Not recommended. 👎",
			"Completely unacceptable. Needs improvement.",
			"Very frustrated with this situation.",
		},
		neutral: []string{
			"New update released today. Check it out.",
			"Event scheduled for next week.",
			"Report shows mixed results this quarter.",
			"Announcement coming soon. Stay tuned.",
		},
	},
}

var usernames = []string{
	"TechEnthusiast", "DataScientist", "AIResearcher", "SocialMediaGuru",
	"TrendWatcher", "DigitalNomad", "InnovationHub", "FutureThinker",
	"CodeMaster", "AnalyticsExpert", "MarketAnalyst", "BrandMonitor",
}

var platforms = []domain.Platform{
	domain.PlatformTwitter, domain.PlatformReddit, domain.PlatformFacebook,
}

// CrisisBatchSize is the number of posts injected by a crisis simulation.
const CrisisBatchSize = 10

// Simulator is a domain.Source producing simulated posts with a weighted
// sentiment mix (60% positive, 20% negative, 20% neutral). Safe for
// concurrent use by multiple keyword loops.
type Simulator struct {
	clock clockwork.Clock
	delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
	seq int64
}

var _ domain.Source = (*Simulator)(nil)

// NewSimulator creates a simulator. delay emulates network latency per fetch;
// pass 0 in tests.
func NewSimulator(clock clockwork.Clock, delay time.Duration) *Simulator {
	return &Simulator{
		clock: clock,
		delay: delay,
		rng:   rand.New(rand.NewSource(clock.Now().UnixNano())),
	}
}

// Fetch produces count posts for the keyword. It is idempotent-safe to call
// repeatedly and honours ctx cancellation during the simulated latency.
func (s *Simulator) Fetch(ctx context.Context, keyword string, count int) ([]domain.Post, error) {
	if s.delay > 0 {
		select {
		case <-s.clock.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]domain.Post, 0, count)
	for i := 0; i < count; i++ {
		posts = append(posts, s.makePost(keyword, s.randomSentiment()))
	}
	return posts, nil
}

// CrisisBatch returns a skewed batch (80% negative) used to exercise the
// alerting path.
func (s *Simulator) CrisisBatch(keyword string) []domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]domain.Post, 0, CrisisBatchSize)
	for i := 0; i < 8; i++ {
		posts = append(posts, s.makePost(keyword, "negative"))
	}
	for i := 0; i < 2; i++ {
		bias := "neutral"
		if s.rng.Intn(2) == 0 {
			bias = "positive"
		}
		posts = append(posts, s.makePost(keyword, bias))
	}
	return posts
}

func (s *Simulator) randomSentiment() string {
	switch r := s.rng.Float64(); {
	case r < 0.6:
		return "positive"
	case r < 0.8:
		return "negative"
	default:
		return "neutral"
	}
}

func (s *Simulator) makePost(keyword, sentiment string) domain.Post {
	pool, ok := samplePosts[keyword]
	if !ok {
		pool = samplePosts["default"]
	}

	var texts []string
	switch sentiment {
	case "positive":
		texts = pool.positive
	case "negative":
		texts = pool.negative
	default:
		texts = pool.neutral
	}

	s.seq++
	now := s.clock.Now()
	return domain.Post{
		ID:        fmt.Sprintf("post_%d_%d", now.UnixMilli(), s.seq),
		Text:      texts[s.rng.Intn(len(texts))],
		Author:    usernames[s.rng.Intn(len(usernames))],
		Timestamp: now,
		Platform:  platforms[s.rng.Intn(len(platforms))],
		Keyword:   keyword,
		Likes:     s.rng.Intn(1000),
		Reposts:   s.rng.Intn(500),
	}
}
