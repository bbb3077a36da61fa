package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/freightdesk/tariff/internal/config"
	"github.com/freightdesk/tariff/internal/identity"
	"github.com/freightdesk/tariff/internal/pricing"
	pricingdomain "github.com/freightdesk/tariff/internal/pricing/domain"
	"github.com/freightdesk/tariff/internal/quote"
	quotedomain "github.com/freightdesk/tariff/internal/quote/domain"
	"github.com/freightdesk/tariff/internal/template"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/freightdesk/tariff/pkg/telemetry"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	template.Module,
	quote.Module,
	pricing.Module,
	fx.Provide(telemetry.NewMetrics),
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, metrics *telemetry.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CorrelationMiddleware())
	r.Use(RequestLogger(log))
	r.Use(MetricsMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, metrics *telemetry.Metrics) *gin.Engine {
	return NewEngine(log, metrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
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
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	genID       *snowflake.Node
	templateSvc templatedomain.Service
	pricingSvc  pricingdomain.Service
	quotes      quotedomain.Repository
	metrics     *telemetry.Metrics
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	GenID       *snowflake.Node
	TemplateSvc templatedomain.Service
	PricingSvc  pricingdomain.Service
	Quotes      quotedomain.Repository
	Metrics     *telemetry.Metrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		genID:       p.GenID,
		templateSvc: p.TemplateSvc,
		pricingSvc:  p.PricingSvc,
		quotes:      p.Quotes,
		metrics:     p.Metrics,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")
	api.Use(s.ActorContext())

	// -------- Templates --------
	api.GET("/templates", s.ListTemplates)
	api.GET("/templates/:code", s.GetTemplate)

	// -------- Quotes --------
	api.POST("/quotes", s.RequireRole(identity.RoleStaff, identity.RoleAdmin), s.CreateQuote)
	api.GET("/quotes", s.RequireRole(identity.RoleStaff, identity.RoleAdmin), s.ListQuotes)
	api.GET("/quotes/:id", s.GetQuote)

	// -------- Pricing --------
	staff := s.RequireRole(identity.RoleStaff, identity.RoleAdmin)
	sheet := api.Group("/quotes/:id/pricing")
	{
		sheet.POST("", staff, s.InitializePricing)
		sheet.GET("", staff, s.GetPricing)
		sheet.GET("/ops-totals", staff, s.GetOpsTotals)

		sheet.GET("/blocks", staff, s.ListContainerBlocks)
		sheet.POST("/blocks", staff, s.AddContainerBlock)

		sheet.GET("/addons", staff, s.ListAddonCandidates)
		sheet.POST("/lines", staff, s.AddLine)
		sheet.DELETE("/lines/:chargeId", staff, s.RemoveLine)
		sheet.PATCH("/charges/:chargeId", staff, s.UpdateCharge)

		sheet.POST("/transfer-ownership", staff, s.AttachTransferOwnership)

		sheet.GET("/lock", staff, s.GetLockState)
		sheet.POST("/lock", staff, s.LockPricing)
		sheet.POST("/unlock", s.RequireRole(identity.RoleAdmin), s.UnlockPricing)

		sheet.POST("/snapshot", staff, s.SnapshotPricing)

		sheet.GET("/customer-view", s.GetCustomerView)
		sheet.GET("/customer-view/preview", staff, s.PreviewCustomerView)
	}
}
