package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "social_feed/docs"
	_ "social_feed/internal/domain/auth"
	_ "social_feed/internal/domain/common"
	_ "social_feed/internal/domain/feed"
	_ "social_feed/internal/domain/follow"
	_ "social_feed/internal/domain/profile"
	"social_feed/internal/pkg/authctx"
	"social_feed/internal/pkg/config"
	"social_feed/internal/pkg/middleware"
	"social_feed/internal/pkg/registry"
	"social_feed/pkg/cache"
	"social_feed/pkg/database"
	"social_feed/pkg/logger"
	"social_feed/pkg/metrics"
	"social_feed/pkg/response"
	"social_feed/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// @title Social Feed API
// @version 1.0
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 初始化配置
	config.LoadConfig()
	cfg := config.GlobalConfig

	// 初始化日志
	if err := logger.Init(cfg.Log.Level, cfg.App.Debug); err != nil {
		panic(err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.Server.Mode)

	// 数据库 & Redis
	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		logger.Log.Fatal("database init failed", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Fatal("database handle failed", zap.Error(err))
	}
	defer sqlDB.Close()

	rdb, err := database.InitRedis(cfg.Redis)
	if err != nil {
		logger.Log.Fatal("redis init failed", zap.Error(err))
	}
	defer rdb.Close()

	// 认证与指标
	tokens := utils.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.Expire)*time.Hour)
	blacklist := cache.NewRedisBlacklist(rdb, cfg.App.Env)
	auth := middleware.NewAuthenticator(tokens, blacklist)

	collector := metrics.NewMetricsCollector(nil)
	if err := collector.WatchDB(sqlDB, cfg.Database.DBName); err != nil {
		logger.Log.Warn("db stats collector not registered", zap.Error(err))
	}

	limiter := middleware.NewClientLimiter(rate.Limit(cfg.RateLimit.QPS), cfg.RateLimit.Burst, time.Duration(cfg.RateLimit.IdleTTL)*time.Second)
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go limiter.Run(sweepCtx, time.Minute)

	r := newRouter(cfg, collector, limiter)
	r.GET("/healthz", healthz(db))

	ctx := &registry.ModuleContext{
		Config:     &cfg,
		DB:         db,
		Redis:      rdb,
		Procedures: database.NewProcedures(sqlDB),
		Router:     r,
		Guard:      authctx.NewGuard(),
		Auth:       auth,
		Tokens:     tokens,
		Blacklist:  blacklist,
		Metrics:    collector,
	}
	if err := registry.InitModules(ctx); err != nil {
		logger.Log.Fatal("module init failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("forced shutdown", zap.Error(err))
	}
}

func newRouter(cfg config.Config, collector *metrics.MetricsCollector, limiter *middleware.ClientLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.RateLimitMiddleware(limiter))
	r.Use(middleware.MetricsMiddleware(collector))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.Server.Mode == gin.DebugMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, response.ErrServerInternal, "database unavailable")
			return
		}
		response.Success(c, gin.H{"status": "ok"})
	}
}
