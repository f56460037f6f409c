package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "inventory-sync/api/swagger" // swagger docs
	"inventory-sync/config"
	"inventory-sync/internal/broker"
	"inventory-sync/internal/cache"
	"inventory-sync/internal/database"
	"inventory-sync/internal/handler"
	"inventory-sync/internal/middleware"
	"inventory-sync/internal/repository"
	"inventory-sync/internal/service"
	"inventory-sync/internal/websocket"
	"inventory-sync/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and websocket push",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, opts.cfg, opts.log, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run schema migration before serving")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger, migrate bool) error {
	middleware.InitAuth(cfg.JWT.SecretKey)

	db, err := database.NewConnection(cfg.Database, log)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	log.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
	if migrate {
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	sqlxDB, err := database.NewSQLX(db, cfg.Database.Driver)
	if err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	audit := zap.NewNop()
	if cfg.Audit.LogFile != "" {
		audit, err = logger.NewFileLogger(cfg.Audit.LogFile)
		if err != nil {
			return fmt.Errorf("open audit log: %w", err)
		}
		defer func() { _ = audit.Sync() }()
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log)
	publishers := []service.EventPublisher{wsHub}
	var kafkaQueue *service.AsyncPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := broker.NewKafkaPublisher(cfg.Kafka)
		defer kafkaPublisher.Close()
		kafkaQueue = service.NewAsyncPublisher(kafkaPublisher, cfg.Kafka.QueueSize, 0, log)
		publishers = append(publishers, kafkaQueue)
		log.Info("Publishing change events to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	// Set up dependencies (Repository -> Service -> Handler)
	itemRepo := repository.NewItemRepository(db)
	stockRepo := repository.NewStockRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	logRepo := repository.NewInventoryLogRepository(db)
	txOpts, err := database.TxOptions(cfg.Database)
	if err != nil {
		return err
	}
	txManager := repository.NewTransactionManagerWithOptions(db, txOpts)

	var deduper service.NotificationDeduper = service.NewDBDeduper(repository.NewNotificationRepository(db))
	if rdb != nil {
		deduper = cache.NewRedisDeduper(rdb)
	}

	changeLog := service.NewChangeLogService(repository.NewChangeLogRepository(db), stockRepo, txManager, log, publishers...)
	alerts := service.NewAlertService(repository.NewAlertRepository(db), itemRepo, stockRepo, txManager,
		service.NewLogNotifier(log), deduper, service.AlertOptions{
			Recipients:     cfg.Alerts.Recipients,
			Window:         time.Duration(cfg.Alerts.CooldownMinutes) * time.Minute,
			NotifySupplier: cfg.Alerts.NotifySupplier,
		}, log)
	calculator := service.NewStockCalculator(repository.NewAvailabilityRepository(sqlxDB))
	syncService := service.NewSyncService(itemRepo, stockRepo, orderRepo, logRepo, txManager, changeLog, alerts,
		service.SyncOptions{DedupeCorrelationIDs: cfg.Sync.DedupeCorrelationIDs}, log, audit)
	itemService := service.NewItemService(itemRepo, stockRepo, logRepo, txManager, changeLog, alerts, calculator, log)

	writeLimit, err := middleware.RateLimit(cfg.RateLimit.WriteRate, rdb)
	if err != nil {
		return err
	}

	if cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "ws_clients": wsHub.Clients()})
	})
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	api := router.Group("")
	api.Use(middleware.WritesOnly(writeLimit))
	handler.NewInventoryHandler(syncService, itemService, calculator, alerts, log).RegisterRoutes(api)
	handler.NewItemHandler(itemService, log).RegisterRoutes(api)
	handler.NewOrderHandler(syncService, service.NewOrderService(orderRepo), log).RegisterRoutes(api)
	handler.NewChangeFeedHandler(changeLog, log).RegisterRoutes(api)
	handler.NewAlertHandler(alerts, log).RegisterRoutes(api)
	handler.NewInventoryLogHandler(service.NewInventoryLogService(logRepo), log).RegisterRoutes(api)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		wsHub.Run(gctx)
		return nil
	})
	if kafkaQueue != nil {
		g.Go(func() error {
			kafkaQueue.Run(gctx)
			return nil
		})
	}
	g.Go(func() error {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("Shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
