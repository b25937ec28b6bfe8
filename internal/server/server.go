package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/pompabon/internal/bitmap"
	"github.com/smallbiznis/pompabon/internal/config"
	"github.com/smallbiznis/pompabon/internal/draft"
	draftdomain "github.com/smallbiznis/pompabon/internal/draft/domain"
	"github.com/smallbiznis/pompabon/internal/observability"
	obslogger "github.com/smallbiznis/pompabon/internal/observability/logger"
	obstracing "github.com/smallbiznis/pompabon/internal/observability/tracing"
	"github.com/smallbiznis/pompabon/internal/printer"
	"github.com/smallbiznis/pompabon/internal/printjob"
	printjobdomain "github.com/smallbiznis/pompabon/internal/printjob/domain"
	"github.com/smallbiznis/pompabon/internal/providers/pdf"
	"github.com/smallbiznis/pompabon/internal/receipt"
	receiptdomain "github.com/smallbiznis/pompabon/internal/receipt/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	config.Module,
	fx.Provide(registerGin),
	bitmap.Module,
	printer.Module,
	draft.Module,
	printjob.Module,
	pdf.Module,
	receipt.Module,
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config) *gin.Engine {
	return NewEngine(obsCfg)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	prices     *config.PriceTableHolder
	receiptSvc receiptdomain.Service
	draftSvc   draftdomain.Service
	jobSvc     printjobdomain.Service
	pdfSvc     pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	Prices     *config.PriceTableHolder
	ReceiptSvc receiptdomain.Service
	DraftSvc   draftdomain.Service
	JobSvc     printjobdomain.Service
	PDFSvc     pdf.Provider
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		prices:     p.Prices,
		receiptSvc: p.ReceiptSvc,
		draftSvc:   p.DraftSvc,
		jobSvc:     p.JobSvc,
		pdfSvc:     p.PDFSvc,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterRoutes() {
	v1 := s.engine.Group("/v1")

	v1.POST("/receipts/print", s.PrintReceipt)
	v1.POST("/receipts/preview", s.PreviewReceipt)

	v1.GET("/draft", s.GetDraft)
	v1.PUT("/draft", s.SaveDraft)

	v1.GET("/prices", s.GetPrices)

	v1.GET("/print-jobs", s.ListPrintJobs)
	v1.GET("/print-jobs/:id/pdf", s.PrintJobPDF)
}
