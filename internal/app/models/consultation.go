package models

import (
	"medconnect-service/internal/pkg/dto/responses"
	"time"
)

type ConsultationStatus string

const (
	ConsultationStatusUpcoming   ConsultationStatus = "upcoming"
	ConsultationStatusInProgress ConsultationStatus = "in-progress"
	ConsultationStatusCompleted  ConsultationStatus = "completed"
)

var consultationTransitions = map[ConsultationStatus]ConsultationStatus{
	ConsultationStatusUpcoming:   ConsultationStatusInProgress,
	ConsultationStatusInProgress: ConsultationStatusCompleted,
}

type MediaDevice string

const (
	MediaDeviceVideo  MediaDevice = "video"
	MediaDeviceAudio  MediaDevice = "audio"
	MediaDeviceScreen MediaDevice = "screen"
)

func (d MediaDevice) Valid() bool {
	switch d {
	case MediaDeviceVideo, MediaDeviceAudio, MediaDeviceScreen:
		return true
	}
	return false
}

type MediaState struct {
	VideoOn       bool `json:"video_on"`
	AudioOn       bool `json:"audio_on"`
	ScreenSharing bool `json:"screen_sharing"`
}

func (m *MediaState) Set(device MediaDevice, on bool) {
	switch device {
	case MediaDeviceVideo:
		m.VideoOn = on
	case MediaDeviceAudio:
		m.AudioOn = on
	case MediaDeviceScreen:
		m.ScreenSharing = on
	}
}

type PreConsultationForm struct {
	ChiefComplaint     string    `json:"chief_complaint"`
	SymptomsDuration   string    `json:"symptoms_duration"`
	PainScale          *int      `json:"pain_scale,omitempty"`
	MedicalHistory     string    `json:"medical_history,omitempty"`
	CurrentMedications string    `json:"current_medications,omitempty"`
	Allergies          string    `json:"allergies,omitempty"`
	RecentTests        string    `json:"recent_tests,omitempty"`
	AdditionalNotes    string    `json:"additional_notes,omitempty"`
	SubmittedAt        time.Time `json:"submitted_at"`
}

type ConsultationSession struct {
	ID              string               `json:"id"`
	DoctorName      string               `json:"doctor_name"`
	Specialty       string               `json:"specialty"`
	ScheduledAt     string               `json:"scheduled_at"`
	DurationMinutes int                  `json:"duration_minutes"`
	MeetingLink     string               `json:"meeting_link"`
	Status          ConsultationStatus   `json:"status"`
	PreConsultation *PreConsultationForm `json:"pre_consultation,omitempty"`
	Media           MediaState           `json:"media"`
	StartedAt       *time.Time           `json:"started_at,omitempty"`
	EndedAt         *time.Time           `json:"ended_at,omitempty"`
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
func (s ConsultationSession) CanTransitionTo(next ConsultationStatus) bool {
	allowed, ok := consultationTransitions[s.Status]
	return ok && allowed == next
}

func (s ConsultationSession) ConvertIntoResponse() responses.Consultation {
	response := responses.Consultation{
		ID:              s.ID,
		DoctorName:      s.DoctorName,
		Specialty:       s.Specialty,
		ScheduledAt:     s.ScheduledAt,
		DurationMinutes: s.DurationMinutes,
		MeetingLink:     s.MeetingLink,
		Status:          string(s.Status),
		PreFormDone:     s.PreConsultation != nil,
		Media: responses.MediaState{
			VideoOn:       s.Media.VideoOn,
			AudioOn:       s.Media.AudioOn,
			ScreenSharing: s.Media.ScreenSharing,
		},
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	}
	if s.PreConsultation != nil {
		response.ChiefComplaint = s.PreConsultation.ChiefComplaint
	}
	return response
}
