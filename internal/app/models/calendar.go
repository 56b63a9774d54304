package models

import "medconnect-service/internal/pkg/dto/responses"

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func (s TimeSlot) ConvertIntoResponse() responses.TimeSlot {
	return responses.TimeSlot{
		Time:      s.Time,
		Available: s.Available,
	}
}
