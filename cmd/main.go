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

	createVehicleHandler "github.com/m04kA/SMC-VehicleRegistry/internal/api/handlers/create_vehicle"
	deleteVehicleHandler "github.com/m04kA/SMC-VehicleRegistry/internal/api/handlers/delete_vehicle"
	getVehicleHandler "github.com/m04kA/SMC-VehicleRegistry/internal/api/handlers/get_vehicle"
	listVehiclesHandler "github.com/m04kA/SMC-VehicleRegistry/internal/api/handlers/list_vehicles"
	loginHandler "github.com/m04kA/SMC-VehicleRegistry/internal/api/handlers/login"
	registerHandler "github.com/m04kA/SMC-VehicleRegistry/internal/api/handlers/register"
	updateVehicleHandler "github.com/m04kA/SMC-VehicleRegistry/internal/api/handlers/update_vehicle"
	"github.com/m04kA/SMC-VehicleRegistry/internal/api/middleware"
	"github.com/m04kA/SMC-VehicleRegistry/internal/auth"
	"github.com/m04kA/SMC-VehicleRegistry/internal/config"
	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
	adminRepo "github.com/m04kA/SMC-VehicleRegistry/internal/infra/storage/administrator"
	vehicleRepo "github.com/m04kA/SMC-VehicleRegistry/internal/infra/storage/vehicle"
	vehiclesService "github.com/m04kA/SMC-VehicleRegistry/internal/service/vehicles"
	authenticateUC "github.com/m04kA/SMC-VehicleRegistry/internal/usecase/authenticate"
	registerUC "github.com/m04kA/SMC-VehicleRegistry/internal/usecase/register"
	"github.com/m04kA/SMC-VehicleRegistry/pkg/dbmetrics"
	"github.com/m04kA/SMC-VehicleRegistry/pkg/logger"
	"github.com/m04kA/SMC-VehicleRegistry/pkg/metrics"
)

const poolStatsInterval = 15 * time.Second

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

	log.Info("Starting SMC-VehicleRegistry...")
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

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithPoolStats(db, metricsCollector, poolStatsInterval, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	vehicleRepository := vehicleRepo.NewRepository(executor)
	adminRepository := adminRepo.NewRepository(executor)

	// Инициализируем менеджер токенов
	tokenManager := auth.NewManager(cfg.JWT)

	// Инициализируем сервисы и use cases
	vehicleSvc := vehiclesService.NewService(vehicleRepository, log)
	authenticateUseCase := authenticateUC.NewUseCase(adminRepository, tokenManager, log)
	registerUseCase := registerUC.NewUseCase(adminRepository, log)

	// Создаем стартового администратора, если таблица пуста
	if cfg.AdminSeed.Enabled {
		if err := seedAdministrator(context.Background(), cfg.AdminSeed, adminRepository, registerUseCase, log); err != nil {
			log.Fatal("Failed to seed administrator: %v", err)
		}
	}

	// Инициализируем handlers
	login := loginHandler.NewHandler(authenticateUseCase, log)
	registerAdmin := registerHandler.NewHandler(registerUseCase, log)
	listVehicles := listVehiclesHandler.NewHandler(vehicleSvc, log)
	getVehicle := getVehicleHandler.NewHandler(vehicleSvc, log)
	createVehicle := createVehicleHandler.NewHandler(vehicleSvc, log)
	updateVehicle := updateVehicleHandler.NewHandler(vehicleSvc, log)
	deleteVehicle := deleteVehicleHandler.NewHandler(vehicleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// CORS для разрешенных origin
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	authMw := middleware.Auth(tokenManager, log)
	adminOnly := middleware.RequireProfile(domain.ProfileAdmin, log)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	r.HandleFunc("/login", login.Handle).Methods(http.MethodPost)
	r.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)
	r.HandleFunc("/vehicles/{id}", getVehicle.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют валидный bearer токен)
	// ============================================================

	// Регистрация доступна только профилю admin
	r.Handle("/register", authMw(adminOnly(http.HandlerFunc(registerAdmin.Handle)))).Methods(http.MethodPost)

	// Изменяющие операции с автомобилями доступны любому аутентифицированному администратору
	r.Handle("/vehicles", authMw(http.HandlerFunc(createVehicle.Handle))).Methods(http.MethodPost)
	r.Handle("/vehicles/{id}", authMw(http.HandlerFunc(updateVehicle.Handle))).Methods(http.MethodPut)
	r.Handle("/vehicles/{id}", authMw(http.HandlerFunc(deleteVehicle.Handle))).Methods(http.MethodDelete)

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

// seedAdministrator создает стартового администратора из конфигурации,
// только если таблица администраторов пуста
func seedAdministrator(
	ctx context.Context,
	seed config.AdminSeedConfig,
	repo *adminRepo.Repository,
	uc *registerUC.UseCase,
	log *logger.Logger,
) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count administrators: %w", err)
	}
	if count > 0 {
		log.Info("Administrator seed skipped: %d account(s) already exist", count)
		return nil
	}

	profile := seed.Profile
	if profile == "" {
		profile = string(domain.ProfileAdmin)
	}

	created, err := uc.Execute(ctx, &registerUC.Request{
		Email:    seed.Email,
		Password: seed.Password,
		Profile:  profile,
	})
	if err != nil {
		return fmt.Errorf("create seed administrator: %w", err)
	}

	log.Info("Seed administrator created: id=%d, email=%s", created.ID, created.Email)
	return nil
}
