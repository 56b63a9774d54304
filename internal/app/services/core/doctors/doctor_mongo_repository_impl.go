package doctors

import (
	"context"
	"medconnect-service/internal/app/models"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) *DoctorMongoRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

// FindAll returns the catalog in catalog id order. Ids are strings in the
// collection, so the ordering is applied after decoding.
func (repo *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &doctors)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	SortByCatalogID(doctors)
	return doctors, nil
}

func (repo *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := repo.Collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

// UpsertMany replaces every given doctor by id, inserting the missing ones.
func (repo *DoctorMongoRepository) UpsertMany(ctx context.Context, doctors []models.Doctor) (int64, error) {
	if len(doctors) == 0 {
		return 0, nil
	}
	writes := make([]mongo.WriteModel, 0, len(doctors))
	for _, doctor := range doctors {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": doctor.ID}).
			SetReplacement(doctor).
			SetUpsert(true))
	}
	result, err := repo.Collection.BulkWrite(ctx, writes)
	if err != nil {
		return 0, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.UpsertedCount + result.ModifiedCount, nil
}
