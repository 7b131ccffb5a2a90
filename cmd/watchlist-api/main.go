package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "weather-watchlist/configs"
	_ "weather-watchlist/docs"
	"weather-watchlist/internal/application/controller"
	"weather-watchlist/internal/application/middleware"
	"weather-watchlist/internal/application/processor"
	"weather-watchlist/internal/application/schedule"
	"weather-watchlist/internal/domain/gateway/api"
	"weather-watchlist/internal/domain/gateway/cache"
	"weather-watchlist/internal/domain/gateway/db"
	"weather-watchlist/internal/domain/gateway/queue"
	"weather-watchlist/internal/domain/usecase/health"
	"weather-watchlist/internal/domain/usecase/location"
	"weather-watchlist/internal/domain/usecase/weather"
	"weather-watchlist/internal/infra/aws"
	infracache "weather-watchlist/internal/infra/cache"
	"weather-watchlist/internal/infra/database/gorm"
	"weather-watchlist/internal/infra/database/sqlc"
	pkghttp "weather-watchlist/pkg/http"
	"weather-watchlist/pkg/log"
	"weather-watchlist/pkg/msg"
	"weather-watchlist/pkg/redis"
	"weather-watchlist/pkg/resource"
	"weather-watchlist/pkg/sqs"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title Weather Watchlist API
// @version 1.0
// @description Tracked cities with their latest weather snapshot and a 5-day forecast.
// @BasePath /api
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	gormDB, err := gorm.Connect()
	if err != nil {
		log.Fatal("Fail to connect database", zap.Error(err))
	}

	var dbHealthGateway db.HealthDBGateway = db.NewGormHealthDBGateway(gormDB)
	if rawDB, err := sqlc.Connect(); err != nil {
		log.Warn("Raw database probe unavailable, using the ORM pool for health", zap.Error(err))
	} else {
		defer func() { _ = rawDB.Close() }()
		dbHealthGateway = db.NewSQLCHealthDBGateway(rawDB)
	}

	var forecastCache cache.ForecastCache = cache.NoopForecastCache{}
	var locker gocron.Locker
	if resource.GetBool("app.redis.enabled") {
		redisClient, err := infracache.NewRedisClient(ctx)
		if err != nil {
			log.Fatal("Fail to connect redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		forecastCache = cache.NewRedisForecastCache(redisClient)
		locker = redis.NewLocker(redisClient, resource.GetDuration("app.sync.lock-ttl"), "schedules")
	}

	// Init Gateways
	openWeatherGateway := api.NewOpenWeatherGateway(api.OpenWeatherConfig{
		BaseURL: resource.GetString("app.openweather.base-url"),
		APIKey:  resource.GetString("app.openweather.api-key"),
		Units:   resource.GetString("app.openweather.units"),
	}, pkghttp.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.openweather.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.openweather.read-timeout"),
	})
	locationGateway := db.NewGormLocationGateway(gormDB)
	queueHealthGateway := queue.NewQueueHealthGateway()

	// Init UseCase
	weatherOptions := weather.Options{Retention: resource.GetDuration("app.snapshot.retention")}
	queueName := resource.GetString("app.cloud.sync-queue")
	var sqsClient *awssqs.Client
	if queueName != "" {
		awsConfig, err := aws.LoadConfig(ctx)
		if err != nil {
			log.Fatal("Fail to load AWS configuration", zap.Error(err))
		}
		sqsClient = aws.NewSqsClient(awsConfig)
		weatherOptions.QueueName = queueName
		weatherOptions.QueueSender = aws.NewSQSSenderAdapter(sqsClient)
	}

	weatherUseCase := weather.NewWeatherUseCase(openWeatherGateway, locationGateway, forecastCache, weatherOptions)
	locationUseCase := location.NewLocationUseCase(openWeatherGateway, locationGateway, weatherUseCase, resource.GetInt("app.openweather.search-limit"))
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, forecastCache, queueHealthGateway)

	// Init Controller
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = resource.GetDuration("app.server.read-timeout")
	e.Server.WriteTimeout = resource.GetDuration("app.server.write-timeout")
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	group := e.Group(contextPath)
	controller.NewHealthController(group, healthUseCase).InitHealthRoutes()
	controller.NewLocationController(group, locationUseCase).InitLocationRoutes()
	controller.NewWeatherController(group, weatherUseCase).InitWeatherRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Queue Worker
	if sqsClient != nil {
		worker, err := sqs.NewWorker(ctx, sqsClient, queueName, processor.NewSyncProcessor(weatherUseCase), &sqs.WorkerConfig{
			PoolSize: resource.GetInt("app.cloud.worker-pool-size"),
		})
		if err != nil {
			log.Fatal("Fail to create sync queue worker", zap.Error(err))
		}
		queueHealthGateway.RegisterWorker("sync", worker)
		go worker.Start(ctx)
	}

	// Init Schedule
	retentionScheduler := schedule.NewRetentionScheduler(weatherUseCase)
	if err := retentionScheduler.InitRetentionScheduleTasks(resource.GetString("app.snapshot.cleanup-cron")); err != nil {
		log.Fatal("Fail to schedule snapshot cleanup", zap.Error(err))
	}
	defer retentionScheduler.Stop()

	if resource.GetBool("app.sync.enabled") {
		syncScheduler, err := schedule.NewSyncScheduler(weatherUseCase, schedule.SyncSchedulerConfig{
			Interval: resource.GetDuration("app.sync.interval"),
			Locker:   locker,
		})
		if err != nil {
			log.Fatal("Fail to create sync scheduler", zap.Error(err))
		}
		if err := syncScheduler.InitSyncScheduleTasks(); err != nil {
			log.Fatal("Fail to schedule weather sync", zap.Error(err))
		}
		defer func() { _ = syncScheduler.Stop() }()
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped"))
}
