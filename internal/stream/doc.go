// Package stream implements the coordinator that drives the per-keyword
// processing loops and fans results out to WebSocket subscribers.
//
// The Coordinator is a single-goroutine actor: subscriber registration,
// removal and broadcast all flow through a command channel, so the registry
// is never mutated while being iterated and no mutexes are needed. Each
// keyword with at least one subscriber gets its own streaming loop goroutine
// that pulls batches from the post source, pushes them through the
// filter → classifier → aggregator → alert-engine pipeline, and hands the
// resulting events back to the actor for fan-out. Per-connection writer
// goroutines isolate slow or dead subscribers: a full send buffer or a write
// error evicts only that subscriber.
package stream
