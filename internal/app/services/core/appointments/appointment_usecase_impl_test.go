package appointments

import (
	"context"
	"errors"
	"medconnect-service/internal/app/config"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/app/models"
	"medconnect-service/internal/app/services/core/calendar"
	"medconnect-service/internal/app/services/core/doctors"
	"medconnect-service/internal/app/services/shared/clock"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/dto/responses"
	"medconnect-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Wednesday 10 January 2024, so the first bookable date is the 11th.
var now = time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) PublishAppointmentBooked(ctx context.Context, notification *requests.AppointmentNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type stubDoctorUsecase struct {
	contracts.DoctorUsecase
	catalog []models.Doctor
}

func (s *stubDoctorUsecase) FindModelByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	for _, doctor := range s.catalog {
		if doctor.ID == doctorID {
			return &doctor, nil
		}
	}
	return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
}

func newTestUsecase(notifier contracts.AppointmentNotifier) contracts.AppointmentUsecase {
	calendarUsecase := calendar.NewCalendarUsecase(nil, clock.Fixed(now), config.AppCalendar{
		HorizonDays:     14,
		ExcludedWeekday: time.Sunday,
	}, zap.NewNop())
	return NewAppointmentUsecase(
		&stubDoctorUsecase{catalog: doctors.StaticCatalog()},
		calendarUsecase,
		notifier,
		clock.Fixed(now),
		nil,
		0,
		zap.NewNop(),
	)
}

func validRequest() *requests.BookAppointment {
	return &requests.BookAppointment{
		DoctorID:         "1",
		FirstName:        "John",
		LastName:         "Doe",
		Email:            "john.doe@email.com",
		Phone:            "+1 (555) 123-4567",
		Reason:           "Chest pain",
		Date:             "2024-01-11",
		Time:             "09:00",
		ConsentPrivacy:   true,
		ConsentTreatment: true,
	}
}

func requireStatus(t *testing.T, err error, status int) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, status, customErr.StatusCode)
	return customErr
}

func TestBookSucceeds(t *testing.T) {
	notifier := new(mockNotifier)
	notifier.On("PublishAppointmentBooked", mock.Anything, mock.MatchedBy(func(n *requests.AppointmentNotification) bool {
		return n.DoctorName == "Dr. Sarah Johnson" && n.PatientName == "John Doe" && n.Date == "2024-01-11"
	})).Return(nil).Once()

	confirmation, err := newTestUsecase(notifier).Book(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, confirmation.ID)
	assert.Equal(t, StatusConfirmed, confirmation.Status)
	assert.Equal(t, "John Doe", confirmation.PatientName)
	assert.Equal(t, &responses.DoctorSummary{
		ID:        "1",
		Name:      "Dr. Sarah Johnson",
		Specialty: "Cardiologist",
		Location:  "Downtown Medical Center",
		Price:     150,
	}, confirmation.Doctor)
	assert.Equal(t, now, confirmation.BookedAt)
	notifier.AssertExpectations(t)
}

func TestBookSurvivesNotifierFailure(t *testing.T) {
	notifier := new(mockNotifier)
	notifier.On("PublishAppointmentBooked", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	confirmation, err := newTestUsecase(notifier).Book(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, confirmation.Status)
}

func TestBookWithoutDoctorOrNotifier(t *testing.T) {
	request := validRequest()
	request.DoctorID = ""

	confirmation, err := newTestUsecase(nil).Book(context.Background(), request)
	require.NoError(t, err)
	assert.Nil(t, confirmation.Doctor)
}

func TestBookValidationOrder(t *testing.T) {
	uc := newTestUsecase(nil)
	ctx := context.Background()

	t.Run("missing information is reported before date and consent", func(t *testing.T) {
		request := &requests.BookAppointment{FirstName: "John"}
		_, err := uc.Book(ctx, request)
		customErr := requireStatus(t, err, constvars.StatusBadRequest)
		require.NotNil(t, customErr.Notice)
		assert.Equal(t, constvars.NoticeTitleMissingInformation, customErr.Notice.Title)
		assert.Equal(t, constvars.NoticeVariantDestructive, customErr.Notice.Variant)
	})

	t.Run("date and time", func(t *testing.T) {
		request := validRequest()
		request.Time = ""
		request.ConsentPrivacy = false
		_, err := uc.Book(ctx, request)
		customErr := requireStatus(t, err, constvars.StatusBadRequest)
		assert.Equal(t, constvars.NoticeTitleSelectDateAndTime, customErr.Notice.Title)
	})

	t.Run("consent", func(t *testing.T) {
		request := validRequest()
		request.ConsentTreatment = false
		_, err := uc.Book(ctx, request)
		customErr := requireStatus(t, err, constvars.StatusBadRequest)
		assert.Equal(t, constvars.NoticeTitleConsentRequired, customErr.Notice.Title)
	})

	t.Run("field formats", func(t *testing.T) {
		request := validRequest()
		request.Email = "not-an-email"
		_, err := uc.Book(ctx, request)
		requireStatus(t, err, constvars.StatusBadRequest)
	})
}

func TestBookSlotAvailability(t *testing.T) {
	uc := newTestUsecase(nil)
	ctx := context.Background()

	cases := map[string]struct {
		date  string
		clock string
	}{
		"unavailable template slot": {date: "2024-01-11", clock: "10:00"},
		"excluded sunday":           {date: "2024-01-14", clock: "09:00"},
		"today":                     {date: "2024-01-10", clock: "09:00"},
		"beyond horizon":            {date: "2024-01-25", clock: "09:00"},
		"unknown clock":             {date: "2024-01-11", clock: "12:00"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			request := validRequest()
			request.Date = tc.date
			request.Time = tc.clock
			_, err := uc.Book(ctx, request)
			customErr := requireStatus(t, err, constvars.StatusConflict)
			assert.Equal(t, constvars.NoticeTitleSlotUnavailable, customErr.Notice.Title)
		})
	}
}

func TestBookUnknownDoctor(t *testing.T) {
	request := validRequest()
	request.DoctorID = "99"

	_, err := newTestUsecase(nil).Book(context.Background(), request)
	requireStatus(t, err, constvars.StatusNotFound)
}
