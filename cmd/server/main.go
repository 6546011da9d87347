package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"propdir/internal/audit"
	"propdir/internal/auth"
	"propdir/internal/config"
	"propdir/internal/db"
	"propdir/internal/handler"
	"propdir/internal/logger"
	"propdir/internal/models"
	gormrepository "propdir/internal/repository/gorm"
	"propdir/internal/service"

	_ "propdir/docs"
)

func main() {
	cfgPath := os.Getenv("PD_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("PD_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer dbConn.Close()

	if err := dbConn.SetTimezone(cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	detailSvc := service.NewFirmDetailService(store)
	dashboardSvc := service.NewDashboardService(store)

	if cfg.App.Production() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins))
	engine.Use(handler.ErrorReporting(logger, !cfg.App.Production()))

	healthHandler := &handler.HealthHandler{DB: dbConn}
	healthHandler.Register(engine)

	authenticate := auth.Authenticate(issuer, store, cfg.Auth.CookieName)

	authHandler := &handler.AuthHandler{
		Repo:       store,
		Issuer:     issuer,
		CookieName: cfg.Auth.CookieName,
		Secure:     cfg.App.Production(),
	}
	authHandler.Register(engine, authenticate)

	publicFirms := &handler.PublicFirmHandler{Repo: store, Detail: detailSvc}
	publicFirms.Register(engine)

	// Admin surface: any active operator may edit content; user and
	// dashboard management is restricted to admins.
	admin := engine.Group("/api/v1/admin",
		authenticate,
		auth.RequireRoles(models.RoleAdmin, models.RoleEditor),
		audit.WriteAuditMiddleware(store, logger),
	)
	(&handler.FirmHandler{Repo: store, Detail: detailSvc}).Register(admin)
	(&handler.PlatformHandler{Repo: store}).Register(admin)
	(&handler.BrokerHandler{Repo: store}).Register(admin)
	(&handler.PayoutMethodHandler{Repo: store}).Register(admin)
	(&handler.PaymentMethodHandler{Repo: store}).Register(admin)
	(&handler.CountryHandler{Repo: store}).Register(admin)
	(&handler.PropHandler{Repo: store}).Register(admin)
	(&handler.FuturesHandler{Repo: store}).Register(admin)
	(&handler.RuleHandler{Repo: store}).Register(admin)
	(&handler.CommissionHandler{Repo: store}).Register(admin)
	(&handler.CouponHandler{Repo: store}).Register(admin)

	adminOnly := admin.Group("", auth.RequireRoles(models.RoleAdmin))
	(&handler.UserHandler{Repo: store}).Register(adminOnly)
	(&handler.DashboardHandler{Stats: dashboardSvc}).Register(adminOnly)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
