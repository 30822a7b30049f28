package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusrec/RoomBookingService/internal/config"
	"github.com/campusrec/RoomBookingService/internal/domain"
	snapshotStore "github.com/campusrec/RoomBookingService/internal/infra/cache/snapshot"
	roomServiceClient "github.com/campusrec/RoomBookingService/internal/integrations/roomservice"
	"github.com/campusrec/RoomBookingService/internal/roomsync"
	"github.com/campusrec/RoomBookingService/pkg/logger"
)

// syncwatch поддерживает локальное зеркало снапшота комнат в актуальном
// состоянии и печатает сводку занятости площадок при каждом изменении.
// При недоступности сервера продолжает работать от зеркала.
func main() {
	var (
		memberID = flag.String("member", "", "member id to sync rooms for")
		interval = flag.Duration("interval", 30*time.Second, "periodic refresh interval")
	)
	flag.Parse()

	if *memberID == "" {
		fmt.Println("Usage: syncwatch -member <memberId> [-interval 30s]")
		os.Exit(1)
	}

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting syncwatch for member=%s...", *memberID)

	// Локальное зеркало живет в Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	log.Info("Connected to redis at %s", cfg.Redis.Addr)

	store := snapshotStore.NewStore(redisClient, log)
	remote := roomServiceClient.NewClient(
		cfg.RoomService.URL,
		time.Duration(cfg.RoomService.Timeout)*time.Second,
		log,
	)

	syncer := roomsync.NewSyncer(remote, store, log)
	defer syncer.Close()

	changes := syncer.Subscribe()

	// Первое обновление: либо свежий снапшот с сервера,
	// либо последнее сохраненное зеркало
	syncer.Refresh(context.Background(), *memberID)
	printSummary(log, syncer)

	// Периодическое обновление с джиттером, чтобы парк клиентов
	// не ходил к серверу синхронно
	jitter := time.Duration(rand.Int63n(int64(*interval / 10)))
	ticker := time.NewTicker(*interval + jitter)
	defer ticker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			syncer.Refresh(context.Background(), *memberID)
			printSummary(log, syncer)

		case <-changes:
			printSummary(log, syncer)

		case <-quit:
			log.Info("Shutting down syncwatch...")
			return
		}
	}
}

// printSummary печатает сводку занятости по площадкам для текущего снапшота
func printSummary(log *logger.Logger, syncer *roomsync.Syncer) {
	snapshot := syncer.Snapshot()
	rooms := snapshot.Rooms()

	source := syncer.Source()
	if lastErr := syncer.LastError(); lastErr != nil {
		log.Warn("Snapshot degraded to %s source: %v", source, lastErr)
	}

	log.Info("Snapshot: %d rooms (source=%s)", len(rooms), source)

	load := domain.SummarizeLocationLoad(rooms)
	for _, location := range domain.AllLocations() {
		key := domain.NormalizeLocation(location)
		stats, ok := load[key]
		if !ok {
			continue
		}
		log.Info("  %s: %d rooms, %d/%d seats open",
			location, stats.ReservationCount, stats.TotalOpenSeats, stats.TotalCapacity)
	}
}
