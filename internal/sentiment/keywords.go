package sentiment

import (
	"sort"
	"strings"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
)

// DefaultTopKeywords is the ranking length returned when callers pass 0.
const DefaultTopKeywords = 5

const minKeywordLength = 3

var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true,
	"was": true, "are": true, "were": true, "be": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "should": true,
	"could": true, "may": true, "might": true, "must": true, "can": true,
	"this": true, "that": true, "these": true, "those": true, "i": true,
	"you": true, "he": true, "she": true, "it": true, "we": true,
	"they": true,
}

// ExtractKeywords ranks word frequencies across the given texts, normalizing
// each text first. Stopwords and tokens shorter than three characters are
// dropped. The ranking is descending by count with ties broken by first
// appearance, which makes the output deterministic for identical input order.
func ExtractKeywords(texts []string, topN int) []domain.KeywordFrequency {
	if topN <= 0 {
		topN = DefaultTopKeywords
	}
	if len(texts) == 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, text := range texts {
		for _, tok := range tokenize(Normalize(text)) {
			tok = strings.Trim(tok, "'’")
			if len(tok) < minKeywordLength || stopwords[tok] {
				continue
			}
			if _, seen := counts[tok]; !seen {
				firstSeen[tok] = order
				order++
			}
			counts[tok]++
		}
	}

	ranked := make([]domain.KeywordFrequency, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, domain.KeywordFrequency{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Word] < firstSeen[ranked[j].Word]
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
