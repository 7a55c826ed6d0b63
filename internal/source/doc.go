// Package source provides Post producers. The Simulator generates realistic
// posts for a keyword (the production deployment would swap in real
// social-media API clients behind the same domain.Source contract), and
// Breaker wraps any Source with a circuit breaker so a failing feed degrades
// into skipped batches instead of cascading errors.
package source
