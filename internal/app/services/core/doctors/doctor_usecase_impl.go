package doctors

import (
	"context"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/app/models"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/dto/responses"
	"medconnect-service/internal/pkg/exceptions"
	"medconnect-service/internal/pkg/metrics"
	"medconnect-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	RedisRepository  contracts.RedisRepository
	Metrics          *metrics.ServiceMetrics
	CacheTTL         time.Duration
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	serviceMetrics *metrics.ServiceMetrics,
	cacheTTL time.Duration,
	logger *zap.Logger,
) (contracts.DoctorUsecase, error) {
	instance := &doctorUsecase{
		DoctorRepository: doctorRepository,
		RedisRepository:  redisRepository,
		Metrics:          serviceMetrics,
		CacheTTL:         cacheTTL,
		Log:              logger,
	}

	err := instance.initializeData(context.Background())
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func (uc *doctorUsecase) FindAll(ctx context.Context, request *requests.FindDoctors) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchKey, request.Search),
		zap.String(constvars.LoggingSpecialtyKey, request.Specialty),
		zap.String(constvars.LoggingLocationKey, request.Location),
		zap.String(constvars.LoggingSortKey, request.Sort),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindAll error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	catalog, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	query := DefaultQuery()
	query.Search = request.Search
	if request.Specialty != "" {
		query.Specialty = request.Specialty
	}
	if request.Location != "" {
		query.Location = request.Location
	}
	if request.Sort != "" {
		query.SortKey = SortKey(request.Sort)
	}

	controller := NewQueryController(catalog)
	controller.SetQuery(query)
	visible := controller.VisibleResults()

	response := make([]responses.Doctor, len(visible))
	for i, eachDoctor := range visible {
		response[i] = eachDoctor.ConvertIntoResponse()
	}
	uc.Metrics.ObserveDoctorSearch(string(query.SortKey), len(response))

	uc.Log.Info("doctorUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(response)),
	)
	return response, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.FindModelByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	response := doctor.ConvertIntoResponse()
	return &response, nil
}

func (uc *doctorUsecase) FindModelByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindModelByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	catalog, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	for _, eachDoctor := range catalog {
		if eachDoctor.ID == doctorID {
			found := eachDoctor
			return &found, nil
		}
	}

	// the cached catalog may predate a seed run
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindModelByID error from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor != nil {
		return doctor, nil
	}

	uc.Log.Info("doctorUsecase.FindModelByID doctor not found",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
}

func (uc *doctorUsecase) FindFacets(ctx context.Context) (*responses.DoctorFacets, error) {
	catalog, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	specialties, locations := FacetOptions(catalog)
	sortKeys := make([]string, len(SortKeys))
	for i, key := range SortKeys {
		sortKeys[i] = string(key)
	}
	return &responses.DoctorFacets{
		Specialties: specialties,
		Locations:   locations,
		SortKeys:    sortKeys,
	}, nil
}

// loadCatalog reads the catalog through the Redis cache, falling back to the repository.
func (uc *doctorUsecase) loadCatalog(ctx context.Context) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyDoctorCatalog)
	if err != nil {
		uc.Log.Error("doctorUsecase.loadCatalog error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if cached != "" {
		var doctors []models.Doctor
		err = json.Unmarshal([]byte(cached), &doctors)
		if err != nil {
			uc.Log.Error("doctorUsecase.loadCatalog error parsing JSON from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return doctors, nil
	}

	uc.Log.Info("doctorUsecase.loadCatalog no data found in Redis, fetching from repository",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.loadCatalog error fetching data from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyDoctorCatalog, doctors, uc.CacheTTL)
	if err != nil {
		uc.Log.Error("doctorUsecase.loadCatalog error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return doctors, nil
}

func (uc *doctorUsecase) initializeData(ctx context.Context) error {
	uc.Log.Info("doctorUsecase.initializeData called")

	err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyDoctorCatalog)
	if err != nil {
		return err
	}

	doctors, err := uc.loadCatalog(ctx)
	if err != nil {
		return err
	}

	uc.Log.Info("doctorUsecase.initializeData succeeded",
		zap.Int(constvars.LoggingDoctorCountKey, len(doctors)),
	)
	return nil
}
