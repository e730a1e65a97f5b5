// Command lrmap-demo runs a long-lived process that owns one lrmap
// instance, feeds it from a Redis change feed, exposes it over an admin
// HTTP surface, and records its activity to Prometheus. It exists to
// exercise lrmap.Writer end-to-end the way a real service would, and is
// structured after the teacher's cmd/rls-http/main.go: flag-parsed config
// path, context cancelled on SIGINT/SIGTERM, goroutines for background
// work, graceful Shutdown with a bounded timeout.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nanjiek/leftright-kv/internal/adminhttp"
	"github.com/nanjiek/leftright-kv/internal/changefeed"
	"github.com/nanjiek/leftright-kv/internal/democonfig"
	"github.com/nanjiek/leftright-kv/internal/metrics"
	"github.com/nanjiek/leftright-kv/lrmap"
)

func main() {
	confPath := flag.String("c", "configs/lrmap-demo.yaml", "path to config file")
	flag.Parse()

	cfg, err := democonfig.Load(*confPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	rootCtx, cancelRoot := context.WithCancel(context.Background())
	defer cancelRoot()

	rf, writer := lrmap.New[string, string]()
	rec := metrics.New(cfg.Instance)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	feed := changefeed.New(rdb, cfg.Redis.Channel, writer,
		changefeed.WithLogger(slog.Default()),
		changefeed.WithMetrics(rec),
	)
	go feed.Run(rootCtx)

	admin := adminhttp.New(adminhttp.Config{
		HTTPAddr:        cfg.Server.HTTPAddr,
		RefreshQPSLimit: cfg.Server.RefreshQPSLimit,
	}, rf, writer, rec)

	go func() {
		log.Printf("admin server is running on %s (PID: %d)", cfg.Server.HTTPAddr, os.Getpid())
		if err := admin.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("admin server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	cancelRoot()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := admin.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("admin server shutdown failed: %v", err)
	}
	log.Println("exited properly")
}
