package main

import (
	"context"
	"log"
	"medconnect-service/internal/app/config"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/app/delivery/http/controllers"
	"medconnect-service/internal/app/delivery/http/middlewares"
	"medconnect-service/internal/app/delivery/http/routers"
	"medconnect-service/internal/app/drivers/database"
	"medconnect-service/internal/app/drivers/logger"
	"medconnect-service/internal/app/drivers/messaging"
	minioDriver "medconnect-service/internal/app/drivers/storage"
	"medconnect-service/internal/app/services/core/appointments"
	"medconnect-service/internal/app/services/core/assistant"
	"medconnect-service/internal/app/services/core/calendar"
	"medconnect-service/internal/app/services/core/consultations"
	"medconnect-service/internal/app/services/core/doctors"
	"medconnect-service/internal/app/services/core/profiles"
	"medconnect-service/internal/app/services/shared/clock"
	"medconnect-service/internal/app/services/shared/locker"
	"medconnect-service/internal/app/services/shared/media"
	"medconnect-service/internal/app/services/shared/notifier"
	"medconnect-service/internal/app/services/shared/ratelimiter"
	"medconnect-service/internal/app/services/shared/redis"
	"medconnect-service/internal/app/services/shared/storage"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/metrics"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.Catalog.Source == constvars.CatalogSourceMongo {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error while bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    ":" + internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Printf("Server running on port: %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error while shutting down dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	serviceMetrics := metrics.NewServiceMetrics(prometheus.DefaultRegisterer)
	systemClock := clock.NewSystemClock()
	capabilityProvider := media.NewStaticCapabilityProvider(internalConfig.Media)

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)

	// Doctors
	var doctorRepository contracts.DoctorRepository = doctors.NewDoctorStaticRepository()
	if bootstrap.MongoDB != nil {
		doctorRepository = doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	}
	doctorUsecase, err := doctors.NewDoctorUsecase(doctorRepository, redisRepository, serviceMetrics, internalConfig.Catalog.CacheTTL, log)
	if err != nil {
		return err
	}

	// Calendar
	calendarUsecase := calendar.NewCalendarUsecase(redisRepository, systemClock, internalConfig.Calendar, log)
	calendarWorker := calendar.NewWorker(log, internalConfig.Calendar.WorkerCronSpec, lockerService, calendarUsecase)
	calendarWorker.Start(context.Background())
	bootstrap.WorkerStop = calendarWorker.Stop

	// Appointments
	var appointmentNotifier contracts.AppointmentNotifier
	if bootstrap.RabbitMQ != nil {
		appointmentNotifier, err = notifier.NewAppointmentNotifier(bootstrap.RabbitMQ, internalConfig.RabbitMQ.NotificationQueue, log)
		if err != nil {
			return err
		}
	}
	appointmentUsecase := appointments.NewAppointmentUsecase(
		doctorUsecase,
		calendarUsecase,
		appointmentNotifier,
		systemClock,
		serviceMetrics,
		internalConfig.App.SimulatedLatency,
		log,
	)

	// Assistant
	assistantUsecase := assistant.NewAssistantUsecase(
		assistant.NewConversationRedisRepository(redisRepository),
		capabilityProvider,
		resourceLimiter,
		systemClock,
		serviceMetrics,
		internalConfig.Assistant,
		log,
	)

	// Consultations
	consultationUsecase, err := consultations.NewConsultationUsecase(
		consultations.NewConsultationRedisRepository(redisRepository),
		capabilityProvider,
		systemClock,
		serviceMetrics,
		internalConfig.Consultation,
		log,
	)
	if err != nil {
		return err
	}

	// Profile
	var avatarStorage contracts.Storage
	if bootstrap.DriverConfig.Minio.Enabled {
		minioClient := minioDriver.NewMinio(bootstrap.DriverConfig, internalConfig.Minio.BucketName)
		avatarStorage = storage.NewMinioStorage(minioClient)
	}
	profileUsecase := profiles.NewProfileUsecase(avatarStorage, systemClock, internalConfig.Minio, log)

	middlewares := middlewares.NewMiddlewares(log, internalConfig, serviceMetrics)
	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, &routers.Controllers{
		Doctor:       controllers.NewDoctorController(log, doctorUsecase),
		Calendar:     controllers.NewCalendarController(log, calendarUsecase),
		Appointment:  controllers.NewAppointmentController(log, appointmentUsecase),
		Assistant:    controllers.NewAssistantController(log, assistantUsecase, internalConfig.App.RequestBodyLimitInMegabyte),
		Consultation: controllers.NewConsultationController(log, consultationUsecase),
		Profile:      controllers.NewProfileController(log, profileUsecase, internalConfig.Minio.ProfilePictureMaxUploadSizeInMB),
	}, prometheus.DefaultGatherer)

	log.Info("Application bootstrapped",
		zap.String("catalog_source", internalConfig.Catalog.Source),
		zap.Bool("notifier_enabled", appointmentNotifier != nil),
		zap.Bool("avatar_storage_enabled", avatarStorage != nil),
	)
	return nil
}
