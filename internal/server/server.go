package server

import (
	"context"
	"fmt"

	"github.com/clustereddata/fx-deal-warehouse/internal/config"
	"github.com/clustereddata/fx-deal-warehouse/internal/handler"
	"github.com/clustereddata/fx-deal-warehouse/internal/middleware"
	"github.com/clustereddata/fx-deal-warehouse/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo          *echo.Echo
	cfg           *config.Config
	logger        *logger.Logger
	dealHandler   *handler.DealHandler
	healthHandler *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	dealHandler *handler.DealHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:          e,
		cfg:           cfg,
		logger:        log,
		dealHandler:   dealHandler,
		healthHandler: healthHandler,
	}
}

func (s *Server) Start() error {
	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	api := s.echo.Group("/api/v1")
	api.POST("/deals/import", s.dealHandler.Import)
	api.GET("/deals", s.dealHandler.ListDeals)
	api.GET("/deals/:id", s.dealHandler.GetDealByID)
	api.GET("/imports/:id", s.dealHandler.GetImport)
	api.GET("/imports/:id/rows", s.dealHandler.GetImportRows)
}

func (s *Server) Handler() *echo.Echo {
	s.setupMiddleware()
	s.setupRoutes()
	return s.echo
}
