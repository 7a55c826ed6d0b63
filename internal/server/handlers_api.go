package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
	apperrors "github.com/sairaalvidatascientist-tech/Sentilytics/internal/errors"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/metrics"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/spam"
)

// analyzeBatchSize is how many posts an on-demand analysis pulls at once.
const analyzeBatchSize = 100

type analyzeResponse struct {
	domain.AggregateSnapshot
	Alert *domain.Alert `json:"alert,omitempty"`
}

// handleAnalyze runs one on-demand batch for a keyword: fetch, filter,
// classify, aggregate. The resulting snapshot joins the keyword's history.
func (s *Server) handleAnalyze(c echo.Context) error {
	keyword, err := requiredKeyword(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	start := s.clock.Now()
	posts, err := s.source.Fetch(ctx, keyword, analyzeBatchSize)
	if err != nil {
		return apperrors.ExternalError("failed to fetch posts", err).WithContext("keyword", keyword)
	}

	prev := s.aggregator.Snapshot(keyword).Counts
	kept := spam.Filter(posts)
	if dropped := len(posts) - len(kept); dropped > 0 {
		metrics.SpamFilteredTotal.Add(float64(dropped))
	}

	for _, post := range kept {
		result := s.classifier.Classify(post.Text)
		s.aggregator.Ingest(keyword, post, result)
		metrics.PostsAnalyzedTotal.WithLabelValues(string(result.Classification)).Inc()
	}
	metrics.BatchProcessingDuration.Observe(s.clock.Since(start).Seconds())

	snapshot := s.aggregator.Snapshot(keyword)
	s.aggregator.RecordSnapshot(snapshot)

	resp := analyzeResponse{AggregateSnapshot: snapshot}
	if a := s.alerts.CheckSpike(ctx, keyword, snapshot.Counts); a != nil {
		resp.Alert = a
	}
	if a := s.alerts.CheckSuddenChange(ctx, keyword, prev, snapshot.Counts); a != nil {
		resp.Alert = a
	}

	return c.JSON(http.StatusOK, resp)
}

// handleHistory returns the stored analysis snapshots for a keyword, newest
// last. Unseen keywords yield an empty list.
func (s *Server) handleHistory(c echo.Context) error {
	keyword, err := requiredKeyword(c)
	if err != nil {
		return err
	}

	history := s.aggregator.History(keyword)
	if history == nil {
		history = []domain.AggregateSnapshot{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"keyword": keyword,
		"history": history,
	})
}

func (s *Server) handleAlerts(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return apperrors.ValidationError("limit must be a non-negative integer").WithContext("limit", raw)
		}
		limit = v
	}

	alerts, err := s.alerts.Recent(c.Request().Context(), limit)
	if err != nil {
		return apperrors.InternalError("failed to load alert history", err)
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}
	return c.JSON(http.StatusOK, map[string]any{"alerts": alerts})
}

func (s *Server) handleStats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.aggregator.Stats())
}

func (s *Server) handleTrending(c echo.Context) error {
	keyword, err := requiredKeyword(c)
	if err != nil {
		return err
	}

	trending := s.aggregator.Trending(keyword)
	if trending == nil {
		trending = []domain.KeywordFrequency{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"keyword":  keyword,
		"trending": trending,
	})
}

type analyzeTextRequest struct {
	Text string `json:"text"`
}

// handleAnalyzeText classifies a caller-supplied text directly, bypassing the
// post source and the spam filter.
func (s *Server) handleAnalyzeText(c echo.Context) error {
	var req analyzeTextRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("request body must be JSON")
	}
	if req.Text == "" {
		return apperrors.ValidationError("text is required").WithContext("field", "text")
	}

	result := s.classifier.Classify(req.Text)
	metrics.PostsAnalyzedTotal.WithLabelValues(string(result.Classification)).Inc()

	return c.JSON(http.StatusOK, map[string]any{
		"text":     req.Text,
		"analysis": result,
	})
}

func (s *Server) handleCrisisSimulation(c echo.Context) error {
	keyword, err := requiredKeyword(c)
	if err != nil {
		return err
	}

	injected, err := s.coordinator.TriggerCrisis(c.Request().Context(), keyword)
	if err != nil {
		return apperrors.InternalError("failed to run crisis simulation", err).WithContext("keyword", keyword)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"keyword":  keyword,
		"injected": injected,
		"snapshot": s.aggregator.Snapshot(keyword),
	})
}

func requiredKeyword(c echo.Context) (string, error) {
	keyword := c.QueryParam("keyword")
	if keyword == "" {
		return "", apperrors.ValidationError("keyword query parameter is required").WithContext("field", "keyword")
	}
	return keyword, nil
}
