package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/infrastructure/config"
	"touristar-consumer/internal/infrastructure/persistence"
	"touristar-consumer/internal/infrastructure/queue"
	"touristar-consumer/internal/interface/airline"
	"touristar-consumer/internal/interface/extractor"
	"touristar-consumer/internal/interface/flightstats"
	"touristar-consumer/internal/interface/geocode"
	"touristar-consumer/internal/interface/push"
	storeRepo "touristar-consumer/internal/interface/repository"
	"touristar-consumer/internal/usecase"
	"touristar-consumer/pkg/logger"
	"touristar-consumer/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Touristar Consumer")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up MongoDB connection for the failure journal
	log.Info("Connecting to MongoDB")
	mongoClient, mongoDB, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up repositories
	uow := storeRepo.NewGormFactory(gormDB)
	failureRepo := storeRepo.NewMongoFailureRepository(mongoDB)
	extractorRepo := extractor.NewOpenAIExtractorRepository(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, log)
	geoRepo := geocode.NewRadarGeoRepository(cfg.RadarBaseURL, cfg.RadarAPIKey)
	logoRepo := airline.NewHTTPLogoRepository(cfg.AirlineLogoBaseURL)
	statusRepo := flightstats.NewCiriumStatusRepository(cfg.CiriumBaseURL, cfg.CiriumAppID, cfg.CiriumAppKey)

	messagingRepo, err := push.NewFCMMessagingRepository(ctx, cfg.FCMCredentialsFile, cfg.FCMProjectID, log)
	if err != nil {
		log.Fatal("Failed to create messaging repository", "error", err)
	}

	// Set up processors
	m := metrics.NewMetrics("touristar_consumer")
	operatorResolver := usecase.NewOperatorResolver(logoRepo, log)
	locationResolver := usecase.NewLocationResolver(geoRepo, log)
	ticketProcessor := usecase.NewTicketProcessor(uow, extractorRepo, operatorResolver, locationResolver, messagingRepo, m, log)
	statusProcessor := usecase.NewStatusProcessor(uow, statusRepo, m, log)

	// Set up queue consumers
	conn, err := queue.NewConnection(cfg.RabbitHost, cfg.RabbitPort, cfg.RabbitUser, cfg.RabbitPassword)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ", "error", err)
	}

	emailConsumer, err := queue.NewConsumer(conn, entity.EmailProcessingQueue, ticketProcessor.HandleMessage, failureRepo, m, log, queue.Options{})
	if err != nil {
		log.Fatal("Failed to create email consumer", "error", err)
	}
	statusConsumer, err := queue.NewConsumer(conn, entity.FlightStatusQueue, statusProcessor.HandleMessage, failureRepo, m, log, queue.Options{})
	if err != nil {
		log.Fatal("Failed to create status consumer", "error", err)
	}

	// Start consumers in goroutines
	go func() {
		if err := emailConsumer.Start(ctx); err != nil {
			log.Error("Email consumer stopped", "error", err)
		}
	}()
	go func() {
		if err := statusConsumer.Start(ctx); err != nil {
			log.Error("Status consumer stopped", "error", err)
		}
	}()

	// Set up HTTP server for metrics and operational queries
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	mux.HandleFunc("/failures", func(w http.ResponseWriter, r *http.Request) {
		queueName := r.URL.Query().Get("queue")
		if queueName == "" {
			queueName = entity.EmailProcessingQueue
		}
		limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
		if err != nil || limit <= 0 {
			limit = 20
		}

		failures, err := failureRepo.RecentFailures(r.Context(), queueName, limit)
		if err != nil {
			log.Error("Failed to list processing failures", "queue", queueName, "error", err)
			http.Error(w, "failed to list failures", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(failures)
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop consumer loops

	if err := emailConsumer.Close(); err != nil {
		log.Error("Email consumer close error", "error", err)
	}
	if err := statusConsumer.Close(); err != nil {
		log.Error("Status consumer close error", "error", err)
	}
	if err := conn.Close(); err != nil {
		log.Error("RabbitMQ connection close error", "error", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Touristar Consumer stopped")
}
