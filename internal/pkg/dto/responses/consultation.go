package responses

import "time"

type MediaState struct {
	VideoOn       bool `json:"video_on"`
	AudioOn       bool `json:"audio_on"`
	ScreenSharing bool `json:"screen_sharing"`
}

type Consultation struct {
	ID              string     `json:"id"`
	DoctorName      string     `json:"doctor_name"`
	Specialty       string     `json:"specialty"`
	ScheduledAt     string     `json:"scheduled_at"`
	DurationMinutes int        `json:"duration_minutes"`
	MeetingLink     string     `json:"meeting_link"`
	JoinToken       string     `json:"join_token,omitempty"`
	Status          string     `json:"status"`
	PreFormDone     bool       `json:"pre_consultation_submitted"`
	ChiefComplaint  string     `json:"chief_complaint,omitempty"`
	Media           MediaState `json:"media"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
}
