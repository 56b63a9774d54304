package requests

type FindDoctors struct {
	Search    string `json:"search" validate:"max=100"`
	Specialty string `json:"specialty"`
	Location  string `json:"location"`
	Sort      string `json:"sort" validate:"omitempty,oneof=rating price experience"`
}
