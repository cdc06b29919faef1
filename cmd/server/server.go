package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/turi333-pixel/MoodFlow/config"
	"github.com/turi333-pixel/MoodFlow/internal/middleware"
	"github.com/turi333-pixel/MoodFlow/internal/router"
	"github.com/turi333-pixel/MoodFlow/internal/schedule"
	"github.com/turi333-pixel/MoodFlow/pkg/genai"
	"github.com/turi333-pixel/MoodFlow/pkg/logger"
	"github.com/turi333-pixel/MoodFlow/pkg/metrics"
	"github.com/turi333-pixel/MoodFlow/pkg/notify"
	otelpkg "github.com/turi333-pixel/MoodFlow/pkg/otel"
	"github.com/turi333-pixel/MoodFlow/pkg/snowflake"
	"github.com/turi333-pixel/MoodFlow/storage"
	redisstore "github.com/turi333-pixel/MoodFlow/storage/redis"
)

func main() {
	// 日志部分
	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	// 初始化存储层，记得关闭外部连接
	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	defer storage.Close()

	if err := snowflake.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	if err := genai.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize genai client", zap.Error(err))
	}

	notify.Init()

	// 链路追踪与指标，关闭时只跑纯业务
	if config.Cfg.TracingEnabled {
		shutdown, err := otelpkg.InitOpenTelemetry(ctx, otelpkg.Config{
			ServiceName:    config.Cfg.ServiceName,
			ServiceVersion: "1.0.0",
			Environment:    config.Cfg.Environment,
			OTLPEndpoint:   config.Cfg.OTLPEndpoint,
			SampleRatio:    config.Cfg.TracingSampler,
		})
		if err != nil {
			logger.Logger.Warn("Failed to initialize OpenTelemetry, continuing without tracing", zap.Error(err))
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					logger.Logger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
				}
			}()

			if err := metrics.InitMetrics(); err != nil {
				logger.Logger.Warn("Failed to initialize business metrics", zap.Error(err))
			}
			if err := middleware.InitMetrics(otel.Meter("moodflow-http")); err != nil {
				logger.Logger.Warn("Failed to initialize HTTP metrics", zap.Error(err))
			}
			if config.Cfg.StorageBackend == "redis" {
				if err := redisstore.InitRedisMetrics(otel.Meter("moodflow-redis")); err != nil {
					logger.Logger.Warn("Failed to initialize Redis metrics", zap.Error(err))
				}
			}
		}
	}

	// 提醒调度器随服务启停
	scheduler := schedule.GetScheduler()
	scheduler.Start(ctx)

	logger.Logger.Info("Server starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("port", config.Cfg.ServerPort),
		zap.String("environment", config.Cfg.Environment),
		zap.String("storage_backend", config.Cfg.StorageBackend),
	)

	addr := net.JoinHostPort(config.Cfg.ServerHost, config.Cfg.ServerPort)

	serverOpts := []hertzconfig.Option{server.WithHostPorts(addr)}
	var tracingMiddleware app.HandlerFunc
	if config.Cfg.TracingEnabled {
		tracerOpt, mw := middleware.NewServerTracerConfig()
		serverOpts = append(serverOpts, tracerOpt)
		tracingMiddleware = mw
	}

	h := server.Default(serverOpts...)

	router.Register(h, tracingMiddleware)

	// 优雅关闭：在单独的 goroutine 中监听关闭信号并调用 Shutdown
	go func() {
		<-ctx.Done()
		logger.Logger.Info("Initiating graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		}
	}()

	logger.Logger.Info("HTTP server listening", zap.String("addr", addr))

	h.Spin()

	scheduler.Stop()

	logger.Logger.Info("Server shutting down gracefully")
}
