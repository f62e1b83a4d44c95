package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultCacheTTLSec  = 24 * 60 * 60
	defaultBloomBitSize = 10000000
	defaultQueueSize    = 1024
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

type config struct {
	DB             mysqldrv.Config
	AutoMigrate    bool
	CacheAddr      string
	CachePass      string
	CacheDB        int
	CacheTTL       time.Duration
	ContextTimeout time.Duration
	Address        string
	BloomBitSize   uint64
	BloomHashes    int
	RabbitMQURL    string
	NotifyAsync    bool
	NotifyQueue    int
	LogLevel       logrus.Level
	LogJSON        bool
}

// loadConfig reads the environment; every malformed value falls back to its default.
func loadConfig() config {
	cfg := config{
		AutoMigrate:    envBool("DB_AUTO_MIGRATE", false),
		CacheAddr:      os.Getenv("CACHE_HOST") + ":" + os.Getenv("CACHE_PORT"),
		CachePass:      os.Getenv("CACHE_PASS"),
		CacheDB:        envInt("CACHE_DB", defaultCacheDB),
		CacheTTL:       time.Duration(envInt("CACHE_TTL_SEC", defaultCacheTTLSec)) * time.Second,
		ContextTimeout: time.Duration(envInt("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second,
		Address:        os.Getenv("SERVER_ADDRESS"),
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		NotifyAsync:    envBool("NOTIFY_ASYNC", true),
		NotifyQueue:    envInt("NOTIFY_QUEUE_SIZE", defaultQueueSize),
		BloomHashes:    envInt("BLOOM_HASHES", 0),
		LogJSON:        os.Getenv("LOG_FORMAT") == "json",
	}
	if cfg.Address == "" {
		cfg.Address = defaultAddress
	}

	bloomBitSize, err := strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
	if err != nil || bloomBitSize == 0 {
		logrus.Info("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	cfg.BloomBitSize = bloomBitSize

	cfg.LogLevel, err = logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		cfg.LogLevel = logrus.InfoLevel
	}

	cfg.DB = *mysqldrv.NewConfig()
	cfg.DB.Net = "tcp"
	cfg.DB.Addr = os.Getenv("DATABASE_HOST") + ":" + os.Getenv("DATABASE_PORT")
	cfg.DB.User = os.Getenv("DATABASE_USER")
	cfg.DB.Passwd = os.Getenv("DATABASE_PASS")
	cfg.DB.DBName = os.Getenv("DATABASE_NAME")
	cfg.DB.ParseTime = true
	cfg.DB.Loc = time.UTC
	return cfg
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		if os.Getenv(key) != "" {
			logrus.Warnf("failed to parse %s, using default %d", key, def)
		}
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func (c config) dsn() string {
	return c.DB.FormatDSN()
}

func (c config) String() string {
	u := url.URL{Scheme: "mysql", User: url.User(c.DB.User), Host: c.DB.Addr, Path: c.DB.DBName}
	return fmt.Sprintf("db=%s cache=%s addr=%s async_notify=%v", u.String(), c.CacheAddr, c.Address, c.NotifyAsync)
}
