package main

import (
	bookinghandler "flightbooker/internal/bookings/handler"
	bookingrepository "flightbooker/internal/bookings/repository"
	bookingservice "flightbooker/internal/bookings/service"
	bookingvalidator "flightbooker/internal/bookings/validator"
	flighthandler "flightbooker/internal/flights/handler"
	"flightbooker/internal/flights/generator"
	flightservice "flightbooker/internal/flights/service"
	"flightbooker/internal/flights/status"
	flightvalidator "flightbooker/internal/flights/validator"
	systemhandler "flightbooker/internal/system/handler"
	"flightbooker/pkg/app"
	"flightbooker/pkg/config"
	"flightbooker/pkg/kafka"
	"flightbooker/pkg/random"
)

const ServiceName = "flightbooker"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	producer := initProducer(cfg)
	if producer != nil {
		defer producer.Close()
	}

	flightSvc, bookingSvc := initServices(cfg, producer)

	serverApp := app.NewApplication(cfg)
	systemH := systemhandler.NewSystemHandler(cfg.Client.Mongo, cfg.MongoDatabase, cfg.Log)
	serverApp.SetApp(systemH,
		systemH,
		flighthandler.NewFlightHandler(flightSvc, cfg.Log),
		bookinghandler.NewBookingHandler(bookingSvc, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, producer *kafka.Producer) (flightservice.FlightService, bookingservice.BookingService) {
	rng := random.New()

	flightSvc := flightservice.NewFlightService(
		generator.New(rng, cfg.Log),
		status.NewSimulator(nil, rng, cfg.StatusFlipOdds, cfg.Log),
		flightvalidator.NewSearchValidator(cfg.Log),
		cfg,
	)

	var publisher bookingservice.Publisher
	if producer != nil {
		publisher = producer
	}
	bookingSvc := bookingservice.NewBookingService(
		bookingrepository.NewMongoBookingRepository(cfg),
		bookingvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabase)
	return flightSvc, bookingSvc
}

func initProducer(cfg *config.Config) *kafka.Producer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaBookingTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.KafkaBookingTopic)
	return producer
}
