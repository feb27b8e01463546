package main

import (
	"context"

	"innkeep/internal/reservations/handler"
	"innkeep/internal/reservations/repository"
	"innkeep/internal/reservations/service"
	"innkeep/internal/reservations/validator"
	"innkeep/pkg/app"
	"innkeep/pkg/client"
	"innkeep/pkg/config"
	"innkeep/pkg/kafka"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Reservations service")

	reservationService, cleanup := initServices(cfg)
	defer cleanup()

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewReservationHandler(reservationService, cfg.Log),
		handler.NewHealthHandler(cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.ReservationService, func()) {
	catalog, err := repository.NewRoomCatalogFromFile(cfg.RoomCatalogFile)
	if err != nil {
		cfg.Log.Fatal("Failed to load room catalog", "error", err)
	}

	var ledger repository.BookingRepository
	var mongoClient *client.MongoClient
	switch cfg.LedgerBackend {
	case config.BackendMongo:
		mongoClient = client.NewMongoClient(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
		ledger = repository.NewMongoBookingRepository(cfg, mongoClient.Client)
	default:
		ledger = repository.NewMemoryBookingRepository()
	}

	var events kafka.Publisher = kafka.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.Log, cfg.KafkaBrokers, cfg.KafkaBookingTopic, ServiceName)
		if err != nil {
			cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
		}
		events = producer
	}

	bookingValidator := validator.NewBookingValidator(cfg.Log)
	reservationService := service.NewReservationService(catalog, ledger, bookingValidator, events, cfg)

	cfg.Log.Info("Reservation service initialized",
		"ledger_backend", cfg.LedgerBackend,
		"rooms", len(catalog.All()),
		"events_enabled", len(cfg.KafkaBrokers) > 0,
	)

	cleanup := func() {
		if err := events.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
		if mongoClient != nil {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				cfg.Log.Error("Failed to disconnect from MongoDB", "error", err)
			}
		}
	}
	return reservationService, cleanup
}
