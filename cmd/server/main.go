package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kwon0144/HarborHub/config"
	"github.com/kwon0144/HarborHub/internal/api/handler"
	"github.com/kwon0144/HarborHub/internal/api/router"
	"github.com/kwon0144/HarborHub/internal/repository"
	"github.com/kwon0144/HarborHub/internal/service"
	"github.com/kwon0144/HarborHub/pkg/database"
	"github.com/kwon0144/HarborHub/pkg/gcal"
	"github.com/kwon0144/HarborHub/pkg/logger"
	"github.com/kwon0144/HarborHub/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 2. Initialize logger
	zlog, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Connect database and run migrations
	db, err := database.NewDB(&cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("connect database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zlog.Fatal("unwrap sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zlog); err != nil {
		zlog.Fatal("run migrations", zap.Error(err))
	}

	// 4. Connect Redis (optional: rate limiting degrades without it)
	rdb, err := redis.NewClient(&cfg.Redis, zlog)
	if err != nil {
		zlog.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// 5. Build calendar client (optional: booking endpoints return 503
	//    when credentials are absent)
	var calendarAPI service.CalendarAPI
	if cfg.Calendar.Configured() {
		client, err := gcal.NewClient(context.Background(), &cfg.Calendar)
		if err != nil {
			zlog.Warn("calendar client unavailable", zap.Error(err))
		} else {
			calendarAPI = client
		}
	} else {
		zlog.Warn("calendar credentials not configured, booking disabled")
	}

	// 6. Wire repositories, services, handlers
	repos := repository.NewRepositories(db)
	notifier := service.NewNotifier(&cfg.Mail, zlog)
	svc := service.NewService(cfg, repos, calendarAPI, notifier, zlog)
	handlers := handler.NewHandlers(svc)

	// 7. Build router and start serving
	engine := router.Setup(cfg, handlers, rdb, zlog)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}
