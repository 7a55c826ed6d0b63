// Package sentiment implements the text normalizer, the lexicon-based
// classifier and the two emotion-estimation strategies.
//
// The classifier delegates raw polarity scoring to a pluggable Scorer so the
// lexicon can be swapped for a real model without touching the pipeline. All
// functions here are pure: given a fixed lexicon the same text always yields
// the same result, and classification never fails (empty text classifies as
// all-neutral).
package sentiment
