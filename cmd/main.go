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
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/StayFinder-BookingService/internal/api/handlers"
	cancelBookingHandler "github.com/m04kA/StayFinder-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/StayFinder-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/StayFinder-BookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/StayFinder-BookingService/internal/api/handlers/get_calendar"
	getQuoteHandler "github.com/m04kA/StayFinder-BookingService/internal/api/handlers/get_quote"
	"github.com/m04kA/StayFinder-BookingService/internal/api/middleware"
	"github.com/m04kA/StayFinder-BookingService/internal/availability"
	"github.com/m04kA/StayFinder-BookingService/internal/config"
	propertyCache "github.com/m04kA/StayFinder-BookingService/internal/infra/cache/property"
	calendarRepo "github.com/m04kA/StayFinder-BookingService/internal/infra/storage/calendar"
	stayAPIClient "github.com/m04kA/StayFinder-BookingService/internal/integrations/stayapi"
	bookingsService "github.com/m04kA/StayFinder-BookingService/internal/service/bookings"
	createBookingUC "github.com/m04kA/StayFinder-BookingService/internal/usecase/create_booking"
	getCalendarUC "github.com/m04kA/StayFinder-BookingService/internal/usecase/get_calendar"
	getQuoteUC "github.com/m04kA/StayFinder-BookingService/internal/usecase/get_quote"
	"github.com/m04kA/StayFinder-BookingService/pkg/dbmetrics"
	"github.com/m04kA/StayFinder-BookingService/pkg/logger"
	"github.com/m04kA/StayFinder-BookingService/pkg/metrics"
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

	log.Info("Starting StayFinder-BookingService...")

	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid picker timezone: %v", err)
	}
	weekStart, err := cfg.WeekStartDay()
	if err != nil {
		log.Fatal("Invalid picker week start: %v", err)
	}

	engine := availability.NewEngine(cfg.MalformedRangePolicy())
	log.Info("Availability engine initialized (malformed_ranges=%s, timezone=%s, week_start=%s)",
		engine.Policy(), location, weekStart)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент StayFinder API нужен всегда: через него создаются бронирования
	stayClient := stayAPIClient.NewClient(
		cfg.StayAPI.URL,
		time.Duration(cfg.StayAPI.Timeout)*time.Second,
		stayAPIClient.BreakerSettings{
			MaxRequests:  cfg.StayAPI.BreakerMaxRequests,
			Interval:     time.Duration(cfg.StayAPI.BreakerInterval) * time.Second,
			Timeout:      time.Duration(cfg.StayAPI.BreakerTimeout) * time.Second,
			FailureRatio: cfg.StayAPI.BreakerFailureRatio,
			MinRequests:  cfg.StayAPI.BreakerMinRequests,
		},
		metricsCollector,
		log,
	)
	log.Info("StayFinder API client initialized (url=%s, timeout=%ds)", cfg.StayAPI.URL, cfg.StayAPI.Timeout)

	// Выбираем источник объектов размещения
	var source propertyCache.Source = stayClient

	if cfg.Availability.Source == config.SourcePostgres {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			source = calendarRepo.NewRepository(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			source = calendarRepo.NewRepository(db)
		}
	}

	// Кэш объектов поверх выбранного источника (если включен)
	var invalidator createBookingUC.CacheInvalidator
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кэш не обязателен: при ошибках Redis чтение идет в источник
			log.Warn("Redis ping failed, cache will fall back to source: %v", err)
		}
		cancel()

		cache := propertyCache.NewCache(redisClient, source, cfg.Redis.TTL(), metricsCollector, log)
		source = cache
		invalidator = cache
		log.Info("Property cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
	}

	log.Info("Property source: %s", cfg.Availability.Source)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(stayClient, invalidator, log)

	// Инициализируем use cases
	getQuoteUseCase := getQuoteUC.NewUseCase(source, engine, location, metricsCollector, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(source, engine, location, weekStart, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		source,
		stayClient,
		invalidator,
		engine,
		location,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчет ночей, стоимости и доступности диапазона
	api.HandleFunc("/properties/{propertyId}/quote", getQuote.Handle).Methods(http.MethodGet)

	// Сетка месяца для полей заезда и выезда
	api.HandleFunc("/properties/{propertyId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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
	close(stopMetricsCh)

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
