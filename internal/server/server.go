package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/aggregate"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/alert"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/config"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
	apperrors "github.com/sairaalvidatascientist-tech/Sentilytics/internal/errors"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/stream"
)

type Server struct {
	echo        *echo.Echo
	config      *config.Config
	classifier  domain.Classifier
	source      domain.Source
	aggregator  *aggregate.Aggregator
	alerts      *alert.Engine
	coordinator *stream.Coordinator
	redisClient *goredis.Client
	clock       clockwork.Clock
	startTime   time.Time
}

// Deps bundles the wired components the server exposes over HTTP.
// RedisClient is nil when alert history runs in memory.
type Deps struct {
	Classifier  domain.Classifier
	Source      domain.Source
	Aggregator  *aggregate.Aggregator
	Alerts      *alert.Engine
	Coordinator *stream.Coordinator
	RedisClient *goredis.Client
	Clock       clockwork.Clock
}

func NewServer(cfg *config.Config, deps Deps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:        e,
		config:      cfg,
		classifier:  deps.Classifier,
		source:      deps.Source,
		aggregator:  deps.Aggregator,
		alerts:      deps.Alerts,
		coordinator: deps.Coordinator,
		redisClient: deps.RedisClient,
		clock:       deps.Clock,
		startTime:   deps.Clock.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
