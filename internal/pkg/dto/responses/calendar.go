package responses

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type Calendar struct {
	Dates     []string   `json:"dates"`
	TimeSlots []TimeSlot `json:"time_slots"`
}
