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

	createCitaHandler "github.com/vetacasa/VetACasa-BookingService/internal/api/handlers/create_cita"
	deleteSlotHandler "github.com/vetacasa/VetACasa-BookingService/internal/api/handlers/delete_slot"
	finalizeCitaHandler "github.com/vetacasa/VetACasa-BookingService/internal/api/handlers/finalize_cita"
	generateSlotsHandler "github.com/vetacasa/VetACasa-BookingService/internal/api/handlers/generate_slots"
	getCitaHandler "github.com/vetacasa/VetACasa-BookingService/internal/api/handlers/get_cita"
	listCitasHandler "github.com/vetacasa/VetACasa-BookingService/internal/api/handlers/list_citas"
	listSlotsHandler "github.com/vetacasa/VetACasa-BookingService/internal/api/handlers/list_slots"
	updateSlotAvailabilityHandler "github.com/vetacasa/VetACasa-BookingService/internal/api/handlers/update_slot_availability"
	updateSlotComunasHandler "github.com/vetacasa/VetACasa-BookingService/internal/api/handlers/update_slot_comunas"
	"github.com/vetacasa/VetACasa-BookingService/internal/api/middleware"
	"github.com/vetacasa/VetACasa-BookingService/internal/config"
	citaRepo "github.com/vetacasa/VetACasa-BookingService/internal/infra/storage/cita"
	slotRepo "github.com/vetacasa/VetACasa-BookingService/internal/infra/storage/slot"
	catalogServiceClient "github.com/vetacasa/VetACasa-BookingService/internal/integrations/catalogsvc"
	identServiceClient "github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
	citasService "github.com/vetacasa/VetACasa-BookingService/internal/service/citas"
	slotsService "github.com/vetacasa/VetACasa-BookingService/internal/service/slots"
	createCitaUC "github.com/vetacasa/VetACasa-BookingService/internal/usecase/create_cita"
	finalizeCitaUC "github.com/vetacasa/VetACasa-BookingService/internal/usecase/finalize_cita"
	generateSlotsUC "github.com/vetacasa/VetACasa-BookingService/internal/usecase/generate_slots"
	"github.com/vetacasa/VetACasa-BookingService/pkg/dbmetrics"
	"github.com/vetacasa/VetACasa-BookingService/pkg/logger"
	"github.com/vetacasa/VetACasa-BookingService/pkg/metrics"
	"github.com/vetacasa/VetACasa-BookingService/pkg/simpletxmanager"
	"github.com/vetacasa/VetACasa-BookingService/pkg/txmanager"
)

func main() {
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

	log.Info("Starting VetACasa-BookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	identClient := identServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds, CatalogService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout, cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	var (
		slotRepository *slotRepo.Repository
		citaRepository *citaRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		citaRepository = citaRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		citaRepository = citaRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	slotsSvc := slotsService.NewService(slotRepository, log)
	citasSvc := citasService.NewService(citaRepository, log)

	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		slotRepository,
		identClient,
		txMgr,
		log,
	)

	createCitaUseCase := createCitaUC.NewUseCase(
		slotRepository,
		citaRepository,
		catalogClient,
		txMgr,
		cfg.Pricing.PrecioBase,
		cfg.Pricing.PrecioBaseVet,
		log,
	)

	finalizeCitaUseCase := finalizeCitaUC.NewUseCase(
		citaRepository,
		txMgr,
		log,
	)

	listSlots := listSlotsHandler.NewHandler(slotsSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	updateSlotAvailability := updateSlotAvailabilityHandler.NewHandler(slotsSvc, log)
	updateSlotComunas := updateSlotComunasHandler.NewHandler(slotsSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotsSvc, log)
	createCita := createCitaHandler.NewHandler(createCitaUseCase, log)
	getCita := getCitaHandler.NewHandler(citasSvc, log)
	listCitas := listCitasHandler.NewHandler(citasSvc, log)
	finalizeCita := finalizeCitaHandler.NewHandler(finalizeCitaUseCase, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// Protected routes, session resolved via the identity service.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(identClient, log))

	protected.HandleFunc("/slots/generate", generateSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/availability", updateSlotAvailability.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/slots/{slotId}/comunas", updateSlotComunas.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/citas", createCita.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/citas", listCitas.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/citas/{citaId}", getCita.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/citas/{citaId}/finalize", finalizeCita.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
