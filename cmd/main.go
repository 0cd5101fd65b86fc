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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	getAlternativesHandler "github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers/get_alternatives"
	getAvailableRoomsHandler "github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers/get_available_rooms"
	getUserSubmissionsHandler "github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers/get_user_submissions"
	listRoomsHandler "github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers/list_rooms"
	submitBookingHandler "github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers/submit_booking"
	validateBookingHandler "github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers/validate_booking"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/config"
	roomCache "github.com/m04kA/SMC-RoomBookingGateway/internal/infra/cache/rooms"
	submissionRepo "github.com/m04kA/SMC-RoomBookingGateway/internal/infra/storage/submission"
	bookingGatewayClient "github.com/m04kA/SMC-RoomBookingGateway/internal/integrations/bookinggateway"
	roomDirectoryClient "github.com/m04kA/SMC-RoomBookingGateway/internal/integrations/roomdirectory"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/service/bookingrequest"
	roomsService "github.com/m04kA/SMC-RoomBookingGateway/internal/service/rooms"
	submissionsService "github.com/m04kA/SMC-RoomBookingGateway/internal/service/submissions"
	"github.com/m04kA/SMC-RoomBookingGateway/pkg/inflight"
	"github.com/m04kA/SMC-RoomBookingGateway/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingGateway/pkg/metrics"
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

	log.Info("Starting SMC-RoomBookingGateway...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load booking timezone: %v", err)
	}
	log.Info("Booking dates are interpreted in %s", location)

	// Необязательные зависимости передаются как nil-интерфейсы, а не типизированные nil-указатели
	var (
		metricsCollector *metrics.Metrics
		submitMetrics    bookingrequest.MetricsRecorder
		cacheMetrics     roomsService.CacheMetrics
		roomsCache       roomsService.RoomCache
		journal          bookingrequest.SubmissionRepository
	)

	// Инициализируем метрики (если включены)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		submitMetrics = metricsCollector
		cacheMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к redis (если кеш включен)
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кеш не обязателен: сервис работает и без него, ошибки кеша только логируются
			log.Warn("Redis is not reachable at %s: %v", cfg.Cache.Addr, err)
		}
		cancel()

		roomsCache = roomCache.NewCache(redisClient, cfg.Cache.TTL())
		log.Info("Room cache enabled (addr=%s, ttl=%s)", cfg.Cache.Addr, cfg.Cache.TTL())
	}

	// Подключаемся к базе данных (если журнал включен)
	var submissionRepository *submissionRepo.Repository
	if cfg.Journal.Enabled {
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

		submissionRepository = submissionRepo.NewRepository(db)
		journal = submissionRepository
	}

	// Инициализируем интеграционных клиентов
	directoryClient := roomDirectoryClient.NewClient(
		cfg.RoomDirectory.URL,
		cfg.RoomDirectory.TimeoutDuration(),
		log,
	)
	gatewayClient := bookingGatewayClient.NewClient(
		cfg.BookingGateway.URL,
		cfg.BookingGateway.TimeoutDuration(),
		log,
	)
	log.Info("Integration clients initialized (RoomDirectory=%s timeout=%ds, BookingGateway=%s timeout=%ds)",
		cfg.RoomDirectory.URL, cfg.RoomDirectory.Timeout, cfg.BookingGateway.URL, cfg.BookingGateway.Timeout)

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(directoryClient, roomsCache, cacheMetrics, log)
	validator := bookingrequest.NewValidator(
		directoryClient,
		gatewayClient,
		journal,
		submitMetrics,
		location,
		log,
	)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(roomSvc, log)
	getAlternatives := getAlternativesHandler.NewHandler(validator, log)
	validateBooking := validateBookingHandler.NewHandler(validator, log)
	submitBooking := submitBookingHandler.NewHandler(validator, inflight.NewGuard(), log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %d req/min, burst %d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник аудиторий
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/alternatives", getAlternatives.Handle).Methods(http.MethodGet)

	// Проверка формы без отправки
	api.HandleFunc("/booking-requests/validate", validateBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Отправка черновика бронирования
	protected.HandleFunc("/booking-requests", submitBooking.Handle).Methods(http.MethodPost)

	// Журнал попыток пользователя
	if submissionRepository != nil {
		getUserSubmissions := getUserSubmissionsHandler.NewHandler(
			submissionsService.NewService(submissionRepository, log),
			log,
		)
		protected.HandleFunc("/users/{userId}/booking-requests", getUserSubmissions.Handle).Methods(http.MethodGet)
	}

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
