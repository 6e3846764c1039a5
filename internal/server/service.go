package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ekaraca/cardscan/internal/export"
	"github.com/ekaraca/cardscan/internal/pipeline"
	"github.com/ekaraca/cardscan/internal/repository"
)

// Server wires the scan pipeline and repositories behind the HTTP API.
type Server struct {
	logger    *slog.Logger
	processor *pipeline.Processor
	contacts  repository.ContactRepository
	jobs      repository.ScanJobRepository
	exporter  *export.Service
	pool      *pgxpool.Pool
}

func New(
	logger *slog.Logger,
	processor *pipeline.Processor,
	contacts repository.ContactRepository,
	jobs repository.ScanJobRepository,
	exporter *export.Service,
	pool *pgxpool.Pool,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		logger:    logger,
		processor: processor,
		contacts:  contacts,
		jobs:      jobs,
		exporter:  exporter,
		pool:      pool,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/v1")
	v1.POST("/scans", s.handleScan)
	v1.POST("/scans/parse", s.handleParse)
	v1.POST("/contacts", s.handleCreateContact)
	v1.GET("/contacts", s.handleListContacts)
	v1.GET("/contacts/export", s.handleExportContacts)
	v1.GET("/contacts/:id", s.handleGetContact)

	r.GET("/healthz", s.handleHealth)
	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := repository.HealthCheck(c.Request.Context(), s.pool, 2*time.Second); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "db": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
}
