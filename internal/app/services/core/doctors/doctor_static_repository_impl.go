package doctors

import (
	"context"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/app/models"
)

type DoctorStaticRepository struct {
	records []models.Doctor
}

func NewDoctorStaticRepository() contracts.DoctorRepository {
	return &DoctorStaticRepository{records: StaticCatalog()}
}

func (repo *DoctorStaticRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return append([]models.Doctor(nil), repo.records...), nil
}

func (repo *DoctorStaticRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	for _, doctor := range repo.records {
		if doctor.ID == doctorID {
			found := doctor
			return &found, nil
		}
	}
	return nil, nil
}
