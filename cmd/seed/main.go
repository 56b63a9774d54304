package main

import (
	"context"
	"medconnect-service/internal/app/config"
	"medconnect-service/internal/app/drivers/database"
	"medconnect-service/internal/app/drivers/logger"
	"medconnect-service/internal/app/services/core/doctors"
	"time"

	"github.com/sirupsen/logrus"
)

// seed loads the built-in doctor directory into MongoDB so the service can
// run with CATALOG_SOURCE=mongo.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("Failed to disconnect from mongo")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	catalog := doctors.StaticCatalog()
	repository := doctors.NewDoctorMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	upserted, err := repository.UpsertMany(ctx, catalog)
	if err != nil {
		log.WithError(err).Fatal("Failed to seed doctor directory")
	}

	log.WithFields(logrus.Fields{
		"database": driverConfig.MongoDB.DbName,
		"doctors":  len(catalog),
		"upserted": upserted,
	}).Info("Doctor directory seeded")
}
