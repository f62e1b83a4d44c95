package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/Guyuepp/feed-engagement/internal/messaging/rabbitmq"
	"github.com/Guyuepp/feed-engagement/internal/repository"
	mysqlRepo "github.com/Guyuepp/feed-engagement/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/feed-engagement/internal/repository/redis"
	"github.com/Guyuepp/feed-engagement/internal/rest"
	"github.com/Guyuepp/feed-engagement/internal/rest/middleware"
	"github.com/Guyuepp/feed-engagement/internal/usecase/comment"
	"github.com/Guyuepp/feed-engagement/internal/usecase/like"
	"github.com/Guyuepp/feed-engagement/internal/usecase/notification"
	"github.com/Guyuepp/feed-engagement/internal/usecase/post"
	"github.com/Guyuepp/feed-engagement/internal/usecase/user"
	"github.com/Guyuepp/feed-engagement/internal/usecase/view"
	"github.com/Guyuepp/feed-engagement/internal/workers"
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file, reading configuration from the environment")
	}
}

func openDB(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			} else if err = sqlDB.Ping(); err == nil {
				return db, nil
			} else {
				logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				_ = sqlDB.Close()
			}
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	return nil, err
}

func newSender(url string) (domain.NotificationSender, func()) {
	if url == "" {
		logrus.Info("RABBITMQ_URL not set, notifications are only logged")
		return notification.LogSender{}, func() {}
	}
	conn, err := amqp091.Dial(url)
	if err != nil {
		logrus.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	sender, err := rabbitmq.NewSender(conn)
	if err != nil {
		_ = conn.Close()
		logrus.Fatalf("failed to create notification sender: %v", err)
	}
	return sender, func() {
		_ = sender.Close()
		_ = conn.Close()
	}
}

func main() {
	cfg := loadConfig()
	logrus.SetLevel(cfg.LogLevel)
	if cfg.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.Infof("starting with %s", cfg)

	//prepare database
	db, err := openDB(cfg.dsn())
	if err != nil {
		logrus.Fatalf("could not connect to database after retries: %v", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Errorf("got error when getting sql.DB from gorm.DB: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("got error when closing the DB connection: %v", err)
		}
	}()
	if cfg.AutoMigrate {
		if err := mysqlRepo.AutoMigrate(db); err != nil {
			logrus.Fatalf("auto migrate failed: %v", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr,
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()
	if err := client.Ping(context.Background()).Err(); err != nil {
		// the entity cache degrades to direct loads, keep serving
		logrus.Errorf("failed to open connection to cache: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Prepare Repository
	postRepo := mysqlRepo.NewPostRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	entityCache := repository.NewEntityCache(myRedisCache.NewCacheStore(client, cfg.CacheTTL))
	userRepo := repository.NewCachedUserRepository(mysqlRepo.NewUserRepository(db), entityCache)
	ownerResolver := repository.NewOwnerResolver(postRepo, commentRepo)
	bloomRepo := myRedisCache.NewBloomFilter(client, cfg.BloomBitSize, cfg.BloomHashes)

	// Notifications
	sender, closeSender := newSender(cfg.RabbitMQURL)
	defer closeSender()
	var notifier domain.LikeNotifier = notification.NewTrigger(sender)
	workerDone := make(chan struct{})
	if cfg.NotifyAsync {
		notifyWorker := workers.NewNotifyWorker(notifier, cfg.NotifyQueue)
		go func() {
			defer close(workerDone)
			notifyWorker.Start(ctx)
		}()
		notifier = notifyWorker
	} else {
		close(workerDone)
	}

	// Build service Layer
	likeSvc := like.NewService(likeRepo, ownerResolver, notifier, bloomRepo)
	postSvc := post.NewService(postRepo, commentRepo, bloomRepo)
	commentSvc := comment.NewService(commentRepo, postRepo, bloomRepo)
	userSvc := user.NewService(userRepo)
	views := view.NewAssembler(likeSvc, userRepo, postRepo, commentRepo)

	// Prepare bloom filter
	if err := postSvc.InitBloomFilter(ctx); err != nil {
		logrus.Fatalf("failed to init bloom filter: %v", err)
	}

	// prepare gin
	if err := rest.RegisterValidators(); err != nil {
		logrus.Fatalf("failed to register validators: %v", err)
	}
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))
	rest.RegisterRoutes(route, rest.Handlers{
		Like:    rest.NewLikeHandler(likeSvc, views),
		Post:    rest.NewPostHandler(postSvc, views),
		Comment: rest.NewCommentHandler(commentSvc, views),
		User:    rest.NewUserHandler(userSvc),
	})

	// Start Server
	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Waiting for notify worker to flush...")
	<-workerDone

	logrus.Info("Server exiting")
}
