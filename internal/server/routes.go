package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Analysis API
	s.echo.GET("/api/analyze", s.handleAnalyze)
	s.echo.GET("/api/history", s.handleHistory)
	s.echo.GET("/api/alerts", s.handleAlerts)
	s.echo.GET("/api/stats", s.handleStats)
	s.echo.GET("/api/trending", s.handleTrending)
	s.echo.POST("/api/analyze-text", s.handleAnalyzeText)
	s.echo.POST("/api/crisis-simulation", s.handleCrisisSimulation)

	// Real-time stream
	s.echo.GET("/ws", s.handleWebSocket)
}
