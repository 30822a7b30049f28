package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createRoomHandler "github.com/campusrec/RoomBookingService/internal/api/handlers/create_room"
	deleteRoomHandler "github.com/campusrec/RoomBookingService/internal/api/handlers/delete_room"
	getAvailableDatesHandler "github.com/campusrec/RoomBookingService/internal/api/handlers/get_available_dates"
	getAvailableTimesHandler "github.com/campusrec/RoomBookingService/internal/api/handlers/get_available_times"
	getProfileHandler "github.com/campusrec/RoomBookingService/internal/api/handlers/get_profile"
	getRoomHandler "github.com/campusrec/RoomBookingService/internal/api/handlers/get_room"
	getRoomsHandler "github.com/campusrec/RoomBookingService/internal/api/handlers/get_rooms"
	healthHandler "github.com/campusrec/RoomBookingService/internal/api/handlers/health"
	privateAccessHandler "github.com/campusrec/RoomBookingService/internal/api/handlers/private_access"
	updateAttendanceHandler "github.com/campusrec/RoomBookingService/internal/api/handlers/update_attendance"
	"github.com/campusrec/RoomBookingService/internal/api/middleware"
	"github.com/campusrec/RoomBookingService/internal/config"
	reservationRepo "github.com/campusrec/RoomBookingService/internal/infra/storage/reservation"
	roomsService "github.com/campusrec/RoomBookingService/internal/service/rooms"
	createRoomUC "github.com/campusrec/RoomBookingService/internal/usecase/create_room"
	getAvailableDatesUC "github.com/campusrec/RoomBookingService/internal/usecase/get_available_dates"
	getAvailableTimesUC "github.com/campusrec/RoomBookingService/internal/usecase/get_available_times"
	"github.com/campusrec/RoomBookingService/pkg/logger"
	"github.com/campusrec/RoomBookingService/pkg/metrics"
	"github.com/campusrec/RoomBookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting RoomBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBPoolStats(db, 10*time.Second, stopMetricsCh)
		log.Info("Database pool metrics collection started")
	}

	// Инициализируем репозиторий и transaction manager
	reservationRepository := reservationRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	roomsSvc := roomsService.NewService(
		reservationRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createRoomUseCase := createRoomUC.NewUseCase(
		reservationRepository,
		txMgr,
		log,
	)
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		reservationRepository,
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		reservationRepository,
		log,
	)

	// Инициализируем handlers
	createRoom := createRoomHandler.NewHandler(createRoomUseCase, log)
	getRooms := getRoomsHandler.NewHandler(roomsSvc, cfg.Booking.LookaheadDays, log)
	getRoom := getRoomHandler.NewHandler(roomsSvc, log)
	updateAttendance := updateAttendanceHandler.NewHandler(roomsSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomsSvc, log)
	privateAccess := privateAccessHandler.NewHandler(roomsSvc, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getProfile := getProfileHandler.NewHandler(roomsSvc, cfg.Booking.LookaheadDays, log)
	health := healthHandler.NewHandler(db)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// --- Комнаты ---
	// Поиск приватной комнаты по коду регистрируется раньше /rooms/{id},
	// иначе mux сопоставит private-access как id
	api.HandleFunc("/rooms/private-access", privateAccess.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", deleteRoom.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/rooms/{id}/attendees", updateAttendance.Handle).Methods(http.MethodPost)

	// --- Доступность ---
	api.HandleFunc("/availability/times", getAvailableTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// --- Профиль участника ---
	api.HandleFunc("/profile/{memberId}", getProfile.Handle).Methods(http.MethodGet)

	// --- Служебное ---
	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
