package responses

type Doctor struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Specialty         string   `json:"specialty"`
	Rating            float64  `json:"rating"`
	Reviews           int      `json:"reviews"`
	Location          string   `json:"location"`
	Experience        string   `json:"experience"`
	Image             string   `json:"image"`
	Availability      string   `json:"availability"`
	AvailableToday    bool     `json:"available_today"`
	Price             int      `json:"price"`
	Languages         []string `json:"languages"`
	DisplayLanguages  []string `json:"display_languages"`
	LanguagesOverflow int      `json:"languages_overflow"`
}

type DoctorSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Location  string `json:"location"`
	Price     int    `json:"price"`
}

type DoctorFacets struct {
	Specialties []string `json:"specialties"`
	Locations   []string `json:"locations"`
	SortKeys    []string `json:"sort_keys"`
}
