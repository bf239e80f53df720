package main

import (
	"github.com/Rad0130/event-planner-server/internal/audit"
	bookinghandler "github.com/Rad0130/event-planner-server/internal/bookings/handler"
	bookingrepo "github.com/Rad0130/event-planner-server/internal/bookings/repository"
	bookingservice "github.com/Rad0130/event-planner-server/internal/bookings/service"
	eventhandler "github.com/Rad0130/event-planner-server/internal/events/handler"
	eventrepo "github.com/Rad0130/event-planner-server/internal/events/repository"
	eventservice "github.com/Rad0130/event-planner-server/internal/events/service"
	messagehandler "github.com/Rad0130/event-planner-server/internal/messages/handler"
	messagerepo "github.com/Rad0130/event-planner-server/internal/messages/repository"
	messageservice "github.com/Rad0130/event-planner-server/internal/messages/service"
	userhandler "github.com/Rad0130/event-planner-server/internal/users/handler"
	userrepo "github.com/Rad0130/event-planner-server/internal/users/repository"
	userservice "github.com/Rad0130/event-planner-server/internal/users/service"
	"github.com/Rad0130/event-planner-server/pkg/app"
	"github.com/Rad0130/event-planner-server/pkg/config"
	"github.com/Rad0130/event-planner-server/pkg/identity"
	"github.com/Rad0130/event-planner-server/pkg/kafka"
	kafka_config "github.com/Rad0130/event-planner-server/pkg/kafka/config"
)

const serviceName = "event-planner-server"

func main() {
	cfg := config.Load(serviceName)
	cfg.SetMongo()

	recorder := buildAuditRecorder(cfg)
	ids := identity.NewValidator()

	eventService := eventservice.NewEventService(eventrepo.NewMongoEventRepository(cfg), ids, recorder, cfg)
	bookingService := bookingservice.NewBookingService(bookingrepo.NewMongoBookingRepository(cfg), ids, recorder, cfg)
	messageService := messageservice.NewMessageService(messagerepo.NewMongoMessageRepository(cfg), ids, recorder, cfg)
	userService := userservice.NewUserService(userrepo.NewMongoUserRepository(cfg), recorder, cfg)

	application := app.NewApplication(cfg, recorder)
	application.SetApp(
		eventhandler.NewEventHandler(eventService, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
		messagehandler.NewMessageHandler(messageService, cfg.Log),
		userhandler.NewUserHandler(userService, cfg.Log),
	)
	application.Run()
}

func buildAuditRecorder(cfg *config.Config) audit.Recorder {
	if !cfg.AuditEnabled {
		cfg.Log.Info("Audit trail disabled, mutations will not be published")
		return audit.NewNoopRecorder()
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	producer, err := kafka.NewProducer(kafkaCfg, cfg.AuditTopic)
	if err != nil {
		cfg.Log.Fatal("Could not create Kafka producer", "error", err)
	}
	cfg.Log.Info("Audit trail enabled", "topic", cfg.AuditTopic, "brokers", kafkaCfg.Brokers)
	return audit.NewKafkaRecorder(producer, serviceName, cfg.Log)
}
