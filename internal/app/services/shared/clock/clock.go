package clock

import (
	"medconnect-service/internal/app/contracts"
	"time"
)

type systemClock struct{}

func NewSystemClock() contracts.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
