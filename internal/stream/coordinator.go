package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/aggregate"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/alert"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/metrics"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/spam"
)

const (
	commandTimeout = 5 * time.Second
	stopTimeout    = 10 * time.Second

	// Simulated batches arrive with 5-15 posts and 3-8 seconds between
	// batches, standing in for a real feed's natural arrival rate.
	minBatchSize  = 5
	maxBatchSize  = 15
	minBatchDelay = 3 * time.Second
	maxBatchDelay = 8 * time.Second

	maxClientsPerKeyword = 50
	excerptLength        = 140
)

// ErrMaxClients is returned when a keyword already has the maximum number of
// subscribers.
var ErrMaxClients = errors.New("max clients per keyword reached")

// CrisisSource produces a skewed batch for crisis simulations.
type CrisisSource interface {
	CrisisBatch(keyword string) []domain.Post
}

// Pipeline bundles the processing stages a keyword loop runs posts through.
type Pipeline struct {
	Source     domain.Source
	Crisis     CrisisSource
	Classifier domain.Classifier
	Aggregator *aggregate.Aggregator
	Alerts     *alert.Engine
}

type keywordClients map[*websocket.Conn]*clientWriter

// --- Command types ---

type coordinatorCmd interface{ isCoordinatorCmd() }

type baseCoordinatorCmd struct{}

func (baseCoordinatorCmd) isCoordinatorCmd() {}

type subscribeCmd struct {
	baseCoordinatorCmd
	keyword string
	conn    *websocket.Conn
	errCh   chan error
}

type unsubscribeCmd struct {
	baseCoordinatorCmd
	keyword string
	conn    *websocket.Conn
}

type broadcastCmd struct {
	baseCoordinatorCmd
	keyword string
	event   domain.StreamEvent
}

type clientCountCmd struct {
	baseCoordinatorCmd
	keyword string
	replyCh chan int
}

type stopCmd struct {
	baseCoordinatorCmd
}

// Coordinator orchestrates keyword loops and subscriber fan-out.
type Coordinator struct {
	cmdCh    chan coordinatorCmd
	clock    clockwork.Clock
	pipeline Pipeline

	// actor-owned state, touched only by run()
	subscribers map[string]keywordClients
	loops       map[string]context.CancelFunc

	done chan struct{}
}

// NewCoordinator creates and starts the coordinator actor. No keyword loop
// runs until its first subscriber arrives.
func NewCoordinator(pipeline Pipeline, clock clockwork.Clock) *Coordinator {
	c := &Coordinator{
		cmdCh:       make(chan coordinatorCmd, 256),
		clock:       clock,
		pipeline:    pipeline,
		subscribers: make(map[string]keywordClients),
		loops:       make(map[string]context.CancelFunc),
		done:        make(chan struct{}),
	}
	go c.run()
	return c
}

// Subscribe registers a connection for a keyword's stream. The subscriber
// immediately receives a connection-acknowledgement event; the keyword's
// streaming loop is started if this is its first subscriber.
func (c *Coordinator) Subscribe(keyword string, conn *websocket.Conn) error {
	errCh := make(chan error, 1)
	c.cmdCh <- subscribeCmd{keyword: keyword, conn: conn, errCh: errCh}

	timer := c.clock.NewTimer(commandTimeout)
	defer timer.Stop()

	select {
	case err := <-errCh:
		return err
	case <-timer.Chan():
		return fmt.Errorf("subscribe command timed out after %v", commandTimeout)
	}
}

// Unsubscribe removes a connection. The keyword's loop is cancelled when the
// last subscriber leaves.
func (c *Coordinator) Unsubscribe(keyword string, conn *websocket.Conn) {
	c.cmdCh <- unsubscribeCmd{keyword: keyword, conn: conn}
}

// ClientCount returns the number of subscribers for a keyword, or -1 if the
// coordinator did not answer in time.
func (c *Coordinator) ClientCount(keyword string) int {
	replyCh := make(chan int, 1)
	c.cmdCh <- clientCountCmd{keyword: keyword, replyCh: replyCh}

	timer := c.clock.NewTimer(commandTimeout)
	defer timer.Stop()

	select {
	case n := <-replyCh:
		return n
	case <-timer.Chan():
		slog.Warn("ClientCount timed out", "keyword", keyword)
		return -1
	}
}

// TriggerCrisis injects a skewed batch through the regular pipeline and
// broadcasts a crisis alert to the keyword's subscribers. Returns the number
// of posts injected.
func (c *Coordinator) TriggerCrisis(ctx context.Context, keyword string) (int, error) {
	if c.pipeline.Crisis == nil {
		return 0, errors.New("no crisis source configured")
	}

	posts := c.pipeline.Crisis.CrisisBatch(keyword)
	prev := c.pipeline.Aggregator.Snapshot(keyword).Counts
	ingested := c.processPosts(ctx, keyword, posts)
	curr := c.pipeline.Aggregator.Snapshot(keyword).Counts

	c.pipeline.Alerts.CheckSpike(ctx, keyword, curr)
	c.pipeline.Alerts.CheckSuddenChange(ctx, keyword, prev, curr)
	c.pipeline.Aggregator.LogActivity("CRISIS ALERT: Negative sentiment spike detected!", domain.ClassificationNegative)

	c.broadcast(keyword, domain.StreamEvent{
		Type:      domain.EventCrisisAlert,
		Keyword:   keyword,
		Message:   "Negative sentiment spike detected",
		Severity:  domain.SeverityHigh,
		Timestamp: c.clock.Now(),
	})

	return ingested, nil
}

// Stop cancels all keyword loops and closes all subscriber connections.
// Blocks until the actor goroutine exits or the stop timeout is reached.
func (c *Coordinator) Stop() {
	c.cmdCh <- stopCmd{}

	timer := c.clock.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case <-c.done:
		slog.Info("Stream coordinator stopped")
	case <-timer.Chan():
		slog.Warn("Stream coordinator stop timeout exceeded", "timeout", stopTimeout)
	}
}

func (c *Coordinator) run() {
	defer close(c.done)

	for cmd := range c.cmdCh {
		switch cm := cmd.(type) {
		case subscribeCmd:
			c.handleSubscribe(cm)
		case unsubscribeCmd:
			c.handleUnsubscribe(cm)
		case broadcastCmd:
			c.handleBroadcast(cm)
		case clientCountCmd:
			cm.replyCh <- len(c.subscribers[cm.keyword])
		case stopCmd:
			c.handleStop()
			return
		default:
			slog.Warn("Coordinator received unknown command", "command_type", fmt.Sprintf("%T", cmd))
		}
	}
}

func (c *Coordinator) handleSubscribe(cmd subscribeCmd) {
	clients, exists := c.subscribers[cmd.keyword]
	if !exists {
		clients = make(keywordClients)
		c.subscribers[cmd.keyword] = clients
	}

	if len(clients) >= maxClientsPerKeyword {
		slog.Warn("Rejecting subscriber: max clients reached", "keyword", cmd.keyword, "max_clients", maxClientsPerKeyword)
		_ = cmd.conn.Close()
		cmd.errCh <- ErrMaxClients
		return
	}

	cw := newClientWriter(cmd.conn, c.clock)
	clients[cmd.conn] = cw
	metrics.StreamSubscribers.Inc()

	ack := domain.StreamEvent{
		Type:      domain.EventConnection,
		Keyword:   cmd.keyword,
		Message:   "Connected to Sentilytics real-time stream",
		Timestamp: c.clock.Now(),
	}
	if data, err := json.Marshal(ack); err == nil {
		cw.trySend(data)
		metrics.EventsBroadcastTotal.WithLabelValues(string(domain.EventConnection)).Inc()
	}

	if !exists {
		ctx, cancel := context.WithCancel(context.Background())
		c.loops[cmd.keyword] = cancel
		metrics.StreamingKeywords.Set(float64(len(c.loops)))
		go c.runLoop(ctx, cmd.keyword)
		slog.Info("Streaming loop started", "keyword", cmd.keyword)
	}

	slog.Debug("Subscriber registered", "keyword", cmd.keyword, "total_clients", len(clients))
	cmd.errCh <- nil
}

func (c *Coordinator) handleUnsubscribe(cmd unsubscribeCmd) {
	clients, exists := c.subscribers[cmd.keyword]
	if !exists {
		return
	}

	cw, exists := clients[cmd.conn]
	if !exists {
		return
	}

	cw.stop()
	delete(clients, cmd.conn)
	metrics.StreamSubscribers.Dec()

	if len(clients) == 0 {
		delete(c.subscribers, cmd.keyword)
		if cancel, ok := c.loops[cmd.keyword]; ok {
			cancel()
			delete(c.loops, cmd.keyword)
		}
		metrics.StreamingKeywords.Set(float64(len(c.loops)))
		slog.Info("Last subscriber disconnected, loop cancelled", "keyword", cmd.keyword)
	}
}

func (c *Coordinator) handleBroadcast(cmd broadcastCmd) {
	clients := c.subscribers[cmd.keyword]
	if len(clients) == 0 {
		return
	}

	data, err := json.Marshal(cmd.event)
	if err != nil {
		slog.Error("Failed to marshal stream event", "error", err)
		return
	}

	// Collect slow clients first, then evict: never mutate while iterating.
	var slow []*websocket.Conn
	for conn, cw := range clients {
		if !cw.trySend(data) {
			slow = append(slow, conn)
		}
	}
	metrics.EventsBroadcastTotal.WithLabelValues(string(cmd.event.Type)).Add(float64(len(clients) - len(slow)))

	for _, conn := range slow {
		slog.Warn("Evicting slow subscriber", "keyword", cmd.keyword)
		metrics.SlowClientsEvicted.Inc()
		c.handleUnsubscribe(unsubscribeCmd{keyword: cmd.keyword, conn: conn})
	}
}

func (c *Coordinator) handleStop() {
	total := 0
	for keyword, clients := range c.subscribers {
		for _, cw := range clients {
			cw.stopGraceful("Server shutting down")
			total++
		}
		delete(c.subscribers, keyword)
	}
	for keyword, cancel := range c.loops {
		cancel()
		delete(c.loops, keyword)
	}
	metrics.StreamSubscribers.Sub(float64(total))
	metrics.StreamingKeywords.Set(0)
	slog.Info("Stream coordinator shutdown complete", "disconnected_clients", total)
}

// broadcast hands an event to the actor for fan-out. Called from loop
// goroutines and TriggerCrisis.
func (c *Coordinator) broadcast(keyword string, event domain.StreamEvent) {
	select {
	case c.cmdCh <- broadcastCmd{keyword: keyword, event: event}:
	case <-c.done:
	}
}

// --- Keyword loop ---

func (c *Coordinator) runLoop(ctx context.Context, keyword string) {
	for {
		c.processBatch(ctx, keyword)

		delay := minBatchDelay + time.Duration(rand.Int63n(int64(maxBatchDelay-minBatchDelay)))
		timer := c.clock.NewTimer(delay)
		select {
		case <-timer.Chan():
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}

func (c *Coordinator) processBatch(ctx context.Context, keyword string) {
	start := c.clock.Now()
	defer func() {
		metrics.BatchProcessingDuration.Observe(c.clock.Since(start).Seconds())
	}()

	count := minBatchSize + rand.Intn(maxBatchSize-minBatchSize+1)
	posts, err := c.pipeline.Source.Fetch(ctx, keyword, count)
	if err != nil {
		if ctx.Err() == nil {
			// Source unavailability is not fatal: retry after the pacing delay.
			slog.Warn("Post source unavailable, retrying after delay", "keyword", keyword, "error", err)
		}
		return
	}

	prev := c.pipeline.Aggregator.Snapshot(keyword).Counts
	c.processPosts(ctx, keyword, posts)
	curr := c.pipeline.Aggregator.Snapshot(keyword).Counts

	if a := c.pipeline.Alerts.CheckSpike(ctx, keyword, curr); a != nil {
		c.broadcastAlert(keyword, a)
	}
	if a := c.pipeline.Alerts.CheckSuddenChange(ctx, keyword, prev, curr); a != nil {
		c.broadcastAlert(keyword, a)
	}
}

// processPosts runs posts through filter → classifier → aggregator and
// broadcasts one sentiment_update per surviving post. Returns how many posts
// were ingested.
func (c *Coordinator) processPosts(ctx context.Context, keyword string, posts []domain.Post) int {
	kept := spam.Filter(posts)
	if dropped := len(posts) - len(kept); dropped > 0 {
		metrics.SpamFilteredTotal.Add(float64(dropped))
	}

	for _, post := range kept {
		if ctx.Err() != nil {
			break
		}

		result := c.pipeline.Classifier.Classify(post.Text)
		snapshot := c.pipeline.Aggregator.Ingest(keyword, post, result)
		metrics.PostsAnalyzedTotal.WithLabelValues(string(result.Classification)).Inc()

		stats := c.pipeline.Aggregator.Stats()
		c.broadcast(keyword, domain.StreamEvent{
			Type:    domain.EventSentimentUpdate,
			Keyword: keyword,
			Post: &domain.PostUpdate{
				Text:     post.Excerpt(excerptLength),
				Author:   post.Author,
				Platform: post.Platform,
			},
			Analysis:  &result,
			Snapshot:  &snapshot,
			Stats:     &stats,
			Timestamp: c.clock.Now(),
		})
	}
	return len(kept)
}

func (c *Coordinator) broadcastAlert(keyword string, a *domain.Alert) {
	c.broadcast(keyword, domain.StreamEvent{
		Type:      domain.EventCrisisAlert,
		Keyword:   keyword,
		Message:   a.Message,
		Severity:  a.Severity,
		Timestamp: a.Timestamp,
	})
}
