package routes

import (
	"context"
	"fmt"
	"net/http"
	_ "property_quote/docs"
	"property_quote/internal/adapter/http/handlers"
	"property_quote/internal/infrastructure/config"
	"property_quote/internal/infrastructure/datasource"
	"property_quote/internal/infrastructure/documents"
	"property_quote/internal/infrastructure/logging"
	"property_quote/internal/usecase"
	"property_quote/internal/usecase/interfaces"
	"property_quote/pkg"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const preloadTimeout = 30 * time.Second

var errNotFound = pkg.NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)

// Run loads the configuration, preloads the quote data and serves HTTP until
// the listener fails.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), preloadTimeout)
	defer cancel()

	repos, err := datasource.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open data source: %w", err)
	}
	defer repos.Close()

	zips, tiers, err := repos.Preload(ctx)
	if err != nil {
		log.Error("[quote][startup] failed to load quote data", zap.String("source", repos.Source), zap.Error(err))
		return err
	}
	log.Info("[quote][startup] quote data loaded",
		zap.String("source", repos.Source),
		zap.Int("zip_codes", zips),
		zap.Int("coverage_tiers", tiers),
	)

	quoteUseCase := usecase.NewQuoteUseCase(repos.Risks, repos.Rates, log)
	router := NewRouter(quoteUseCase, documents.NewPDFRenderer(), log)

	addr := ":" + strconv.Itoa(cfg.Port)
	log.Info("[quote][startup] listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter wires middlewares, swagger, health and the quote API.
func NewRouter(quoteUseCase usecase.IQuoteUseCase, renderer interfaces.IQuoteRenderer, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	health := handlers.NewHealthHandler()
	router.GET(PathHealth, health.Health)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, renderer, log)
	api := router.Group(PathAPI)
	addQuoteRoutes(api, quoteHandler)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(errNotFound.HTTPStatus, errNotFound.ToHTTPError())
	})

	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("[quote][http] recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Warn("[quote][http] request", fields...)
			return
		}
		log.Info("[quote][http] request", fields...)
	}
}
